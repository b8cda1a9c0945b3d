package glicko2

import "errors"

var (
	// ErrInvalidArgument reports an opponent/outcome length mismatch.
	ErrInvalidArgument = errors.New("opponent and outcome counts differ")

	// ErrDuplicatePlayer reports a player placed in more than one rank group.
	ErrDuplicatePlayer = errors.New("player appears in more than one rank group")

	// ErrPlayerNotFound reports a filter player absent from the ranking.
	ErrPlayerNotFound = errors.New("player not found in ranking")

	// ErrEmptyOpponentSet reports a match quality request with no opponents.
	ErrEmptyOpponentSet = errors.New("no opponents given")

	// ErrNonConvergence reports that the volatility search exceeded its
	// iteration bound.
	ErrNonConvergence = errors.New("volatility search did not converge")
)
