package extraction

import (
	"github.com/onboardhq/task-extractor/internal/domain/entities"
)

// ExtractTasksRequest is the inbound payload for POST /extract-tasks.
// meetingId namespaces generated task IDs and is never validated for
// existence; title, date and attendees only feed prompt context.
type ExtractTasksRequest struct {
	MeetingID    string   `json:"meetingId"`
	MeetingTitle string   `json:"meetingTitle"`
	MeetingDate  string   `json:"meetingDate"`
	Attendees    []string `json:"attendees"`
	NotesContent string   `json:"notesContent" validate:"required"`
}

// ToEntity converts the wire request into the domain request
func (r *ExtractTasksRequest) ToEntity() *entities.ExtractionRequest {
	return &entities.ExtractionRequest{
		MeetingID:    r.MeetingID,
		MeetingTitle: r.MeetingTitle,
		MeetingDate:  r.MeetingDate,
		Attendees:    r.Attendees,
		NotesContent: r.NotesContent,
	}
}
