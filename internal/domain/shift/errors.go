package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrNotShiftOwner     = errors.New("shift is assigned to another employee")
	ErrOutsideGeofence   = errors.New("reported position is outside the site geofence")
	ErrIllegalTransition = errors.New("action is not allowed in the current shift status")
)

// ConflictError is a recoverable labor-rule violation (overlap, absence
// block, hour ceiling). Its message is shown to the caller verbatim.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) *ConflictError {
	return &ConflictError{Msg: msg}
}
