package domain

import (
	"errors"
	"fmt"
)

// Status is the tri-state progress marker of a course. The integer values
// are the wire format used by plan JSON files (the "estado" field).
type Status int

const (
	StatusNotStarted Status = 0
	StatusInProgress Status = 1
	StatusCompleted  Status = 2
)

// ErrInvalidStatus is returned when a value outside {0,1,2} is pushed
// through Course.SetStatus.
var ErrInvalidStatus = errors.New("invalid status: use 0 (not started), 1 (in progress) or 2 (completed)")

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusInProgress:
		return "in progress"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
