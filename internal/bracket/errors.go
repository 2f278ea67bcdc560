package bracket

import "errors"

// These messages are returned to API clients as-is.
var (
	ErrTournamentNotFound = errors.New("Tournament does not exist")
	ErrInvalidBracketSize = errors.New("Number of slots must be 2, 4, 8, or 16")
)
