package gridworld

import "errors"

var (
	// ErrInvalidAction is returned when stepping with an action that is
	// not legal in the given state
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidState is returned when a state id does not exist
	ErrInvalidState = errors.New("invalid state")

	// ErrEmptyStateSpace is returned when sampling or building the MDP of
	// a grid without any states
	ErrEmptyStateSpace = errors.New("empty state space")

	// ErrConfiguration is returned by the grid generators when their
	// geometric preconditions do not hold
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidMarker is returned when a grid literal contains an
	// unknown cell marker
	ErrInvalidMarker = errors.New("invalid cell marker")

	// ErrNoStartState is returned when an episode cannot start because
	// every state with reset mass has no legal actions
	ErrNoStartState = errors.New("no start state with legal actions")

	// ErrInvalidDensity is returned when a reset density cannot be
	// aligned with the grid or is not a distribution
	ErrInvalidDensity = errors.New("invalid reset density")
)
