package extraction

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/onboardhq/task-extractor/errors"
	"github.com/onboardhq/task-extractor/internal/domain/entities"
	pkgai "github.com/onboardhq/task-extractor/pkg/ai"
)

// stubGenerator records calls and plays back a canned payload or error
type stubGenerator struct {
	calls        int
	lastSystem   string
	lastUser     string
	lastToolName string
	payload      json.RawMessage
	err          error
}

func (s *stubGenerator) CallTool(ctx context.Context, system, user string, tool pkgai.Tool) (json.RawMessage, error) {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	s.lastToolName = tool.Function.Name
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

func appCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestExtract_EmptyNotes_NoGatewayCall(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewService(gen, time.Second, nil)

	for _, notes := range []string{"", "   ", "\n\t"} {
		_, err := svc.Extract(context.Background(), &entities.ExtractionRequest{
			MeetingID:    "m1",
			NotesContent: notes,
		})
		if err == nil {
			t.Fatalf("notes %q: expected error", notes)
		}
		if code := appCode(t, err); code != errors.ErrorCode_INVALID_ARGUMENT {
			t.Fatalf("notes %q: unexpected code %s", notes, code)
		}
	}

	if gen.calls != 0 {
		t.Fatalf("gateway called %d times for invalid input", gen.calls)
	}
}

func TestExtract_MarkerScenario(t *testing.T) {
	gen := &stubGenerator{
		payload: json.RawMessage(`{"tasks":[{"title":"Send the deck","description":"Prepare and share the final deck","suggestedAssignee":"Bob","suggestedDueDate":"Friday","confidence":0.95}]}`),
	}
	svc := NewService(gen, time.Second, nil)

	res, err := svc.Extract(context.Background(), &entities.ExtractionRequest{
		MeetingID:    "m1",
		MeetingTitle: "Standup",
		NotesContent: "Action: Bob will send the deck by Friday",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.calls != 1 {
		t.Fatalf("expected exactly one gateway call, got %d", gen.calls)
	}
	if gen.lastToolName != "extract_tasks" {
		t.Fatalf("unexpected tool %q", gen.lastToolName)
	}
	if !strings.Contains(gen.lastUser, "Bob will send the deck by Friday") {
		t.Fatal("notes content missing from user prompt")
	}
	if !strings.Contains(gen.lastSystem, "Meeting Title: Standup") {
		t.Fatal("meeting title missing from system prompt")
	}

	if len(res.ExtractedTasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(res.ExtractedTasks))
	}
	task := res.ExtractedTasks[0]
	if task.Title != "Send the deck" {
		t.Fatalf("unexpected title %q", task.Title)
	}
	if task.SuggestedAssignee != "Bob" {
		t.Fatalf("unexpected assignee %q", task.SuggestedAssignee)
	}
	if task.SuggestedDueDate != "Friday" {
		t.Fatalf("unexpected due date %q", task.SuggestedDueDate)
	}
	if !strings.HasPrefix(task.ID, "extracted-m1-0-") {
		t.Fatalf("unexpected id %q", task.ID)
	}
	if res.MeetingID != "m1" || res.MeetingTitle != "Standup" {
		t.Fatalf("metadata not echoed: %+v", res)
	}
}

func TestExtract_EmptyTaskListIsSuccess(t *testing.T) {
	gen := &stubGenerator{payload: json.RawMessage(`{"tasks":[]}`)}
	svc := NewService(gen, time.Second, nil)

	res, err := svc.Extract(context.Background(), &entities.ExtractionRequest{
		MeetingID:    "m1",
		NotesContent: "We discussed the quarterly roadmap and general market trends.",
	})
	if err != nil {
		t.Fatalf("empty task list must be a success, got %v", err)
	}
	if len(res.ExtractedTasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(res.ExtractedTasks))
	}
}

func TestExtract_OrderPreserved(t *testing.T) {
	gen := &stubGenerator{
		payload: json.RawMessage(`{"tasks":[
			{"title":"Zebra task","confidence":0.2},
			{"title":"Alpha task","confidence":0.9},
			{"title":"Mid task","confidence":0.5}
		]}`),
	}
	svc := NewService(gen, time.Second, nil)

	res, err := svc.Extract(context.Background(), &entities.ExtractionRequest{
		MeetingID:    "m1",
		NotesContent: "notes",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Zebra task", "Alpha task", "Mid task"}
	for i, task := range res.ExtractedTasks {
		if task.Title != want[i] {
			t.Fatalf("position %d: got %q, want %q (no re-sorting allowed)", i, task.Title, want[i])
		}
	}
}

func TestExtract_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code errors.ErrorCode
	}{
		{"not configured", pkgai.ErrNotConfigured, errors.ErrorCode_AI_NOT_CONFIGURED},
		{"rate limited", pkgai.ErrRateLimited, errors.ErrorCode_AI_RATE_LIMITED},
		{"quota exhausted", pkgai.ErrQuotaExhausted, errors.ErrorCode_AI_QUOTA_EXCEEDED},
		{"malformed", pkgai.ErrMalformedResponse, errors.ErrorCode_AI_MALFORMED_RESPONSE},
		{"unavailable", pkgai.ErrUnavailable, errors.ErrorCode_AI_UNAVAILABLE},
		{"timeout", context.DeadlineExceeded, errors.ErrorCode_AI_UNAVAILABLE},
		{"unexpected", stdErrors.New("boom"), errors.ErrorCode_INTERNAL},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerator{err: tc.err}
			svc := NewService(gen, time.Second, nil)

			_, err := svc.Extract(context.Background(), &entities.ExtractionRequest{
				MeetingID:    "m1",
				NotesContent: "some notes",
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if code := appCode(t, err); code != tc.code {
				t.Fatalf("got code %s, want %s", code, tc.code)
			}
			if gen.calls != 1 {
				t.Fatalf("expected exactly one attempt, got %d", gen.calls)
			}
		})
	}
}

func TestExtract_UnparsablePayload(t *testing.T) {
	gen := &stubGenerator{payload: json.RawMessage("definitely not json")}
	svc := NewService(gen, time.Second, nil)

	_, err := svc.Extract(context.Background(), &entities.ExtractionRequest{
		MeetingID:    "m1",
		NotesContent: "notes",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if code := appCode(t, err); code != errors.ErrorCode_AI_MALFORMED_RESPONSE {
		t.Fatalf("unexpected code %s", code)
	}
}
