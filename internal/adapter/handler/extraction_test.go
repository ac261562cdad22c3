package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/onboardhq/task-extractor/errors"
	"github.com/onboardhq/task-extractor/internal/domain/entities"
	pkgvalidator "github.com/onboardhq/task-extractor/pkg/validator"
)

// stubService plays back a canned result or error
type stubService struct {
	result *entities.ExtractionResult
	err    error
	calls  int
}

func (s *stubService) Extract(ctx context.Context, req *entities.ExtractionRequest) (*entities.ExtractionResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/extract-tasks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractTasks_Success(t *testing.T) {
	svc := &stubService{
		result: &entities.ExtractionResult{
			ExtractedTasks: []entities.ExtractedTask{
				{ID: "extracted-m1-0-1", Title: "Send the deck", SuggestedAssignee: "Bob", Confidence: 0.9},
			},
			MeetingID:    "m1",
			MeetingTitle: "Standup",
		},
	}
	h := NewExtractionHandler(svc, nil)

	c, rec := newTestContext(t, `{"meetingId":"m1","meetingTitle":"Standup","notesContent":"Action: Bob will send the deck by Friday"}`)
	if err := h.ExtractTasks(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		ExtractedTasks []entities.ExtractedTask `json:"extractedTasks"`
		MeetingID      string                   `json:"meetingId"`
		MeetingTitle   string                   `json:"meetingTitle"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.ExtractedTasks) != 1 || body.ExtractedTasks[0].Title != "Send the deck" {
		t.Fatalf("unexpected tasks: %+v", body.ExtractedTasks)
	}
	if body.MeetingID != "m1" || body.MeetingTitle != "Standup" {
		t.Fatalf("metadata not echoed: %+v", body)
	}
}

func TestExtractTasks_MissingNotes(t *testing.T) {
	svc := &stubService{}
	h := NewExtractionHandler(svc, nil)

	c, rec := newTestContext(t, `{"meetingId":"m1"}`)
	if err := h.ExtractTasks(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("service called %d times for invalid request", svc.calls)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["error"] != "Notes content is required" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestExtractTasks_MalformedJSON(t *testing.T) {
	h := NewExtractionHandler(&stubService{}, nil)

	c, rec := newTestContext(t, `{not json`)
	if err := h.ExtractTasks(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExtractTasks_ErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"rate limited", errors.ErrAIRateLimited(), http.StatusTooManyRequests},
		{"quota exhausted", errors.ErrAIQuotaExceeded(), http.StatusPaymentRequired},
		{"not configured", errors.ErrAINotConfigured(), http.StatusInternalServerError},
		{"malformed upstream", errors.ErrAIMalformedResponse(nil), http.StatusBadGateway},
		{"unavailable", errors.ErrAIUnavailable(nil), http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewExtractionHandler(&stubService{err: tc.err}, nil)

			c, rec := newTestContext(t, `{"meetingId":"m1","notesContent":"notes"}`)
			if err := h.ExtractTasks(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("missing error message")
			}
		})
	}
}
