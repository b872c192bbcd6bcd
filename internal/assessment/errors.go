package assessment

import "errors"

var (
	// ErrNoActiveSession is returned by operations that need a session
	// before Start has been called (or after Reset).
	ErrNoActiveSession = errors.New("no active session")

	// ErrNotCompleted is returned by Result before Complete.
	ErrNotCompleted = errors.New("session not completed")

	// ErrSessionCompleted is returned when answering or navigating a
	// completed session.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrUnknownQuestion is returned when an answer names a question id
	// that is not in the catalog.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrInvalidValue is returned when an answer is outside the
	// question's accepted range.
	ErrInvalidValue = errors.New("answer value out of range")
)
