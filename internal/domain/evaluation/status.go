// Package evaluation models employee evaluation reports and their review
// lifecycle.
//
// Status graph: every state may move to every other state, so evaluations
// can be re-opened after approval or rejection. Entering REVIEW requires a
// comment, entering REJECTED requires a reason, and entering APPROVED stamps
// the approval time.
package evaluation

import "fmt"

type Status string

const (
	StatusPending  Status = "pending"
	StatusReview   Status = "review"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusReview, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown evaluation status %q", s)
}

// RequiresNote reports whether entering the status needs an accompanying
// note (a comment for review, a reason for rejection).
func RequiresNote(to Status) bool {
	return to == StatusReview || to == StatusRejected
}
