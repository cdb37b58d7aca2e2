package evaluation

import (
	"errors"
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "review", "approved", "rejected"} {
		got, err := ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q", s, got)
		}
	}
	if _, err := ParseStatus("archived"); err == nil {
		t.Error("expected error for unknown status")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Error("expected error for empty status")
	}
}

func TestTransition_ReviewRequiresComment(t *testing.T) {
	now := time.Now().UTC()
	ev := Evaluation{EvaluationID: "EVAL_1", Status: StatusPending}

	if err := ev.Transition(StatusReview, "", now); !errors.Is(err, ErrCommentRequired) {
		t.Fatalf("expected ErrCommentRequired, got %v", err)
	}
	if ev.Status != StatusPending {
		t.Errorf("failed transition must not change state, got %s", ev.Status)
	}

	if err := ev.Transition(StatusReview, "needs another look", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Status != StatusReview || ev.Comment != "needs another look" {
		t.Errorf("got %s %q", ev.Status, ev.Comment)
	}
	if !ev.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt not stamped")
	}
}

func TestTransition_RejectRequiresReason(t *testing.T) {
	now := time.Now().UTC()
	ev := Evaluation{Status: StatusReview}
	if err := ev.Transition(StatusRejected, "", now); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
	if err := ev.Transition(StatusRejected, "scores inconsistent", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Reason != "scores inconsistent" {
		t.Errorf("reason = %q", ev.Reason)
	}
}

func TestTransition_ApproveStampsTime(t *testing.T) {
	now := time.Now().UTC()
	ev := Evaluation{Status: StatusPending}
	if err := ev.Transition(StatusApproved, "", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.ApprovedAt == nil || !ev.ApprovedAt.Equal(now) {
		t.Errorf("ApprovedAt = %v, want %v", ev.ApprovedAt, now)
	}
}

func TestTransition_NoTerminalStates(t *testing.T) {
	now := time.Now().UTC()
	ev := Evaluation{Status: StatusApproved}
	if err := ev.Transition(StatusReview, "re-opened for audit", now); err != nil {
		t.Fatalf("approved records must be re-openable: %v", err)
	}
	if err := ev.Transition(StatusPending, "", now.Add(time.Minute)); err != nil {
		t.Fatalf("any state to any state: %v", err)
	}
	if ev.Status != StatusPending {
		t.Errorf("status = %s", ev.Status)
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	ev := Evaluation{Status: StatusPending}
	if err := ev.Transition(Status("archived"), "", time.Now()); err == nil {
		t.Error("expected error for unknown target status")
	}
}
