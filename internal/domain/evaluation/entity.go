package evaluation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCommentRequired = errors.New("comment is required to enter review")
	ErrReasonRequired  = errors.New("reason is required to reject")
)

// Evaluation is one stored evaluation record for an employee.
type Evaluation struct {
	EvaluationID string              `json:"evaluation_id"`
	EmployeeID   string              `json:"employee_id"`
	Status       Status              `json:"status"`
	Comment      string              `json:"comment,omitempty"`
	Reason       string              `json:"reason,omitempty"`
	Quantitative *QuantitativeReport `json:"quantitative,omitempty"`
	Qualitative  *QualitativeReport  `json:"qualitative,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	ApprovedAt   *time.Time          `json:"approved_at,omitempty"`
}

// Transition moves the record to a new status, enforcing entry requirements.
// Any state may re-enter any other state. The note carries the review
// comment or the rejection reason depending on the target.
func (e *Evaluation) Transition(to Status, note string, now time.Time) error {
	if _, err := ParseStatus(string(to)); err != nil {
		return err
	}
	note = strings.TrimSpace(note)

	switch to {
	case StatusReview:
		if note == "" {
			return ErrCommentRequired
		}
		e.Comment = note
	case StatusRejected:
		if note == "" {
			return ErrReasonRequired
		}
		e.Reason = note
	case StatusApproved:
		t := now
		e.ApprovedAt = &t
	}

	e.Status = to
	e.UpdatedAt = now
	return nil
}
