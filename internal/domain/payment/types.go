package payment

import (
	"fmt"

	"hotel-booking/internal/pkg/errs"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusClaimRefund Status = "claim_refund"
	StatusRefunded    Status = "refunded"
	StatusCancelled   Status = "cancelled"
)

var transitions = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusCompleted:   {},
		StatusFailed:      {},
		StatusCancelled:   {},
		StatusClaimRefund: {},
	},
	StatusCompleted: {
		StatusClaimRefund: {},
	},
	StatusClaimRefund: {
		StatusRefunded: {},
	},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusClaimRefund, StatusRefunded, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(to Status) bool {
	_, ok := transitions[s][to]
	return ok
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "%q", s)
	}
	return status, nil
}

type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("payment status is '%s', so cannot move to '%s'", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
