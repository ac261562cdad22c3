package extraction

import (
	"github.com/onboardhq/task-extractor/internal/domain/entities"
)

// ExtractTasksResponse is the success body for POST /extract-tasks. The
// consuming review UI renders extractedTasks with per-item checkboxes
// defaulting to selected; that flag is a downstream annotation, not set here.
type ExtractTasksResponse struct {
	ExtractedTasks []entities.ExtractedTask `json:"extractedTasks"`
	MeetingID      string                   `json:"meetingId"`
	MeetingTitle   string                   `json:"meetingTitle"`
}

// FromResult maps the domain result onto the wire response
func FromResult(res *entities.ExtractionResult) *ExtractTasksResponse {
	tasks := res.ExtractedTasks
	if tasks == nil {
		tasks = make([]entities.ExtractedTask, 0)
	}
	return &ExtractTasksResponse{
		ExtractedTasks: tasks,
		MeetingID:      res.MeetingID,
		MeetingTitle:   res.MeetingTitle,
	}
}
