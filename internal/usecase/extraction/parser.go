package extraction

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/onboardhq/task-extractor/internal/domain/entities"
)

// Parser handles parsing and normalization of gateway tool-call payloads
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Defensive caps on upstream strings. The gateway output is untrusted input.
const (
	maxTitleLength       = 500
	maxDescriptionLength = 2000
	maxFieldLength       = 200
)

// ParseTaskPayload parses raw tool-call arguments into TaskExtractionPayload
func (p *Parser) ParseTaskPayload(raw json.RawMessage) (*entities.TaskExtractionPayload, error) {
	// Some gateways wrap arguments in markdown code blocks
	jsonString := extractJSON(string(raw))

	var payload entities.TaskExtractionPayload
	if err := json.Unmarshal([]byte(jsonString), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse tool arguments: %w", err)
	}

	if payload.Tasks == nil {
		payload.Tasks = make([]entities.TaskPayloadItem, 0)
	}

	return &payload, nil
}

// NormalizeTasks applies the validation rules to an untrusted payload:
// entries with blank titles are dropped, confidence is clamped into [0,1],
// strings are trimmed and capped. Relative order of survivors is preserved.
func (p *Parser) NormalizeTasks(items []entities.TaskPayloadItem) []entities.TaskPayloadItem {
	normalized := make([]entities.TaskPayloadItem, 0, len(items))

	for _, item := range items {
		title := truncate(strings.TrimSpace(item.Title), maxTitleLength)
		if title == "" {
			continue
		}

		normalized = append(normalized, entities.TaskPayloadItem{
			Title:             title,
			Description:       truncate(strings.TrimSpace(item.Description), maxDescriptionLength),
			SuggestedAssignee: truncate(strings.TrimSpace(item.SuggestedAssignee), maxFieldLength),
			SuggestedDueDate:  truncate(strings.TrimSpace(item.SuggestedDueDate), maxFieldLength),
			Confidence:        clampConfidence(item.Confidence),
		})
	}

	return normalized
}

// AssignTaskIDs converts normalized payload items into ExtractedTask entities.
// IDs are unique within one batch via position plus a shared timestamp; they
// are not meant to be stable across separate extraction calls.
func (p *Parser) AssignTaskIDs(meetingID string, items []entities.TaskPayloadItem) []entities.ExtractedTask {
	now := time.Now().UnixMilli()

	tasks := make([]entities.ExtractedTask, 0, len(items))
	for i, item := range items {
		tasks = append(tasks, entities.ExtractedTask{
			ID:                fmt.Sprintf("extracted-%s-%d-%d", meetingID, i, now),
			Title:             item.Title,
			Description:       item.Description,
			SuggestedAssignee: item.SuggestedAssignee,
			SuggestedDueDate:  item.SuggestedDueDate,
			Confidence:        item.Confidence,
		})
	}

	return tasks
}

// clampConfidence forces confidence into [0,1]. Out-of-range values are
// clamped rather than rejected so one non-compliant score does not fail the
// whole batch.
func clampConfidence(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// truncate caps a string at max runes
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
