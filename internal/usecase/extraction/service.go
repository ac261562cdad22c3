package extraction

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/onboardhq/task-extractor/errors"
	"github.com/onboardhq/task-extractor/internal/domain/entities"
	pkgai "github.com/onboardhq/task-extractor/pkg/ai"
	"github.com/onboardhq/task-extractor/pkg/metrics"

	"github.com/google/uuid"
)

// Generator is the outbound text-generation capability used for extraction
type Generator interface {
	CallTool(ctx context.Context, system, user string, tool pkgai.Tool) (json.RawMessage, error)
}

// Service defines the task extraction contract
type Service interface {
	// Extract turns meeting notes into a validated, ordered list of candidate
	// tasks. An empty task list is a legitimate success, not an error.
	Extract(ctx context.Context, req *entities.ExtractionRequest) (*entities.ExtractionResult, error)
}

type extractionService struct {
	gen     Generator
	parser  *Parser
	timeout time.Duration
	logger  *zap.Logger
}

// NewService constructs the extraction service
func NewService(gen Generator, timeout time.Duration, logger *zap.Logger) Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &extractionService{
		gen:     gen,
		parser:  NewParser(),
		timeout: timeout,
		logger:  logger,
	}
}

// Extract runs the full pipeline: validate, prompt, constrained generation,
// parse, normalize, assign IDs. Stateless; exactly one gateway call per
// invocation and no internal retries.
func (s *extractionService) Extract(ctx context.Context, req *entities.ExtractionRequest) (*entities.ExtractionResult, error) {
	if req == nil || strings.TrimSpace(req.NotesContent) == "" {
		// Fail fast before any gateway call is made
		metrics.IncrementExtraction(errors.ErrorCode_INVALID_ARGUMENT.String())
		return nil, errors.ErrNotesRequired()
	}

	extractionID := uuid.NewString()
	system := BuildSystemPrompt(req)
	user := BuildUserPrompt(req.NotesContent)

	// Bounded wait on the single suspension point; the gateway can hang
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.gen.CallTool(callCtx, system, user, ExtractTasksTool())
	elapsed := time.Since(start)
	if err != nil {
		appErr := s.mapGatewayError(err)
		metrics.RecordGatewayCall("error", elapsed)
		metrics.IncrementExtraction(appErr.Code.String())
		if s.logger != nil {
			s.logger.Error("task extraction failed",
				zap.String("extraction_id", extractionID),
				zap.String("meeting_id", req.MeetingID),
				zap.String("code", appErr.Code.String()),
				zap.Duration("gateway_latency", elapsed),
				zap.Error(err),
			)
		}
		return nil, appErr
	}
	metrics.RecordGatewayCall("ok", elapsed)

	if s.logger != nil {
		s.logger.Debug("gateway tool payload",
			zap.String("extraction_id", extractionID),
			zap.String("raw", truncate(string(raw), 2048)),
		)
	}

	payload, perr := s.parser.ParseTaskPayload(raw)
	if perr != nil {
		metrics.IncrementExtraction(errors.ErrorCode_AI_MALFORMED_RESPONSE.String())
		if s.logger != nil {
			s.logger.Error("failed to parse gateway payload",
				zap.String("extraction_id", extractionID),
				zap.String("meeting_id", req.MeetingID),
				zap.Error(perr),
			)
		}
		return nil, errors.ErrAIMalformedResponse(perr)
	}

	normalized := s.parser.NormalizeTasks(payload.Tasks)
	tasks := s.parser.AssignTaskIDs(req.MeetingID, normalized)

	metrics.IncrementExtraction("success")
	metrics.AddExtractedTasks(len(tasks))
	if s.logger != nil {
		s.logger.Info("task extraction completed",
			zap.String("extraction_id", extractionID),
			zap.String("meeting_id", req.MeetingID),
			zap.Int("task_count", len(tasks)),
			zap.Int("dropped_count", len(payload.Tasks)-len(normalized)),
			zap.Duration("gateway_latency", elapsed),
		)
	}

	return &entities.ExtractionResult{
		ExtractedTasks: tasks,
		MeetingID:      req.MeetingID,
		MeetingTitle:   req.MeetingTitle,
	}, nil
}

// mapGatewayError translates gateway sentinels into the caller-visible
// taxonomy. Nothing is silently swallowed; anything unanticipated becomes an
// internal error with the cause attached.
func (s *extractionService) mapGatewayError(err error) errors.AppError {
	switch {
	case stdErrors.Is(err, pkgai.ErrNotConfigured):
		return errors.ErrAINotConfigured()
	case stdErrors.Is(err, pkgai.ErrRateLimited):
		return errors.ErrAIRateLimited()
	case stdErrors.Is(err, pkgai.ErrQuotaExhausted):
		return errors.ErrAIQuotaExceeded()
	case stdErrors.Is(err, pkgai.ErrMalformedResponse):
		return errors.ErrAIMalformedResponse(err)
	case stdErrors.Is(err, pkgai.ErrUnavailable),
		stdErrors.Is(err, context.DeadlineExceeded):
		return errors.ErrAIUnavailable(err)
	default:
		return errors.ErrInternal(err)
	}
}
