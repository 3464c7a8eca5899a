package measure

import "errors"

// None of these are fatal to a host application; every failed operation
// leaves prior state intact and skips the requested update.
var(
	ErrNotFound           = errors.New("group or point not found")
	ErrInvalidInput       = errors.New("coordinate is missing or non-finite")
	ErrIndexOutOfRange    = errors.New("point index out of range")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrNotPending         = errors.New("group is not pending")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrNothingToSubmit    = errors.New("nothing new to submit")
)
