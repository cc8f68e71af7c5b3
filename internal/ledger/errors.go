package ledger

import "errors"

// Validation errors surfaced directly to the caller. None of them
// leave the ledger partially mutated.
var (
	// ErrInvalidName means the activity name was empty after trimming
	// or longer than the limit after sanitizing.
	ErrInvalidName = errors.New("invalid activity name")

	// ErrDuplicateName means the sanitized name already exists
	// (case-sensitive exact match).
	ErrDuplicateName = errors.New("activity already exists")

	// ErrLimitExceeded means the ledger already holds the maximum
	// number of activities.
	ErrLimitExceeded = errors.New("activity limit reached")

	// ErrUnknownActivity means a toggle referenced a name that is not
	// in the activity list.
	ErrUnknownActivity = errors.New("unknown activity")
)
