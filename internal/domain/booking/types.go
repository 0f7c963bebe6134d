package booking

import (
	"fmt"

	"hotel-booking/internal/pkg/errs"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusBooked         Status = "booked"
	StatusInitiateCancel Status = "initiate_cancel"
	StatusCancelled      Status = "cancelled"
	StatusFailed         Status = "failed"
)

// allowed (from, to) pairs; anything missing is rejected
var transitions = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusBooked: {},
		StatusFailed: {},
	},
	StatusBooked: {
		StatusInitiateCancel: {},
		StatusCancelled:      {},
	},
	StatusInitiateCancel: {
		StatusCancelled: {},
	},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusBooked, StatusInitiateCancel, StatusCancelled, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

// HoldsInventory reports whether a booking in this status blocks its rooms.
func (s Status) HoldsInventory() bool {
	return s == StatusPending || s == StatusBooked
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

func InventoryStatuses() []Status {
	return []Status{StatusPending, StatusBooked}
}

// TransitionError carries the current status so callers can report it.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking status is '%s', so cannot %s", e.From, verbFor(e.To))
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

func verbFor(to Status) string {
	switch to {
	case StatusBooked:
		return "confirm"
	case StatusFailed:
		return "mark as failed"
	case StatusInitiateCancel:
		return "request cancellation"
	case StatusCancelled:
		return "cancel"
	default:
		return "move to " + string(to)
	}
}
