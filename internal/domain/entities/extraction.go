package entities

// ExtractionRequest carries the meeting metadata and raw notes for one
// extraction call. Only NotesContent is required; the other fields provide
// prompt context and ID namespacing.
type ExtractionRequest struct {
	MeetingID    string   `json:"meetingId"`
	MeetingTitle string   `json:"meetingTitle,omitempty"`
	MeetingDate  string   `json:"meetingDate,omitempty"`
	Attendees    []string `json:"attendees,omitempty"`
	NotesContent string   `json:"notesContent"`
}

// ExtractedTask is one candidate action item detected in the notes.
type ExtractedTask struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Description       string  `json:"description,omitempty"`
	SuggestedAssignee string  `json:"suggestedAssignee,omitempty"`
	SuggestedDueDate  string  `json:"suggestedDueDate,omitempty"`
	Confidence        float64 `json:"confidence"`
}

// ExtractionResult is the ordered batch of tasks produced by one call.
// Order matches the narrative position in the notes; no re-sorting happens
// downstream of the generation step.
type ExtractionResult struct {
	ExtractedTasks []ExtractedTask `json:"extractedTasks"`
	MeetingID      string          `json:"meetingId"`
	MeetingTitle   string          `json:"meetingTitle"`
}

// TaskExtractionPayload is the structured output shape the extract_tasks tool
// call must return. Treated as untrusted input and normalized before use.
type TaskExtractionPayload struct {
	Tasks []TaskPayloadItem `json:"tasks"`
}

// TaskPayloadItem mirrors one entry of the tool-call tasks array.
type TaskPayloadItem struct {
	Title             string  `json:"title"`
	Description       string  `json:"description,omitempty"`
	SuggestedAssignee string  `json:"suggestedAssignee,omitempty"`
	SuggestedDueDate  string  `json:"suggestedDueDate,omitempty"`
	Confidence        float64 `json:"confidence"`
}
