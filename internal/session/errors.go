package session

import "errors"

var (
	// ErrNotFound is returned for unknown or expired session ids.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidTransition is returned when the flow does not allow a move.
	ErrInvalidTransition = errors.New("invalid stage transition")

	// ErrConsentRequired is returned when leaving consent without agreeing.
	ErrConsentRequired = errors.New("consent required")

	// ErrNoRatings is returned when asking for results with nothing rated.
	ErrNoRatings = errors.New("no ratings recorded")

	// ErrTaskNotApplicable is returned when rating a task the household
	// does not have.
	ErrTaskNotApplicable = errors.New("task does not apply to household")

	// ErrInvalidSection is returned for note keys that are not a pillar or
	// the results page.
	ErrInvalidSection = errors.New("invalid notes section")

	// ErrStoreFull is returned when the session limit is reached.
	ErrStoreFull = errors.New("session store full")
)
