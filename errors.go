package spacesearch

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStrategy is returned when a strategy name cannot be parsed.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrDuplicateField is returned when a strategy string names the same
	// axis twice, e.g. "guided/a_star".
	ErrDuplicateField = errors.New("duplicate strategy field")
)

// StrategyError reports an invalid strategy description.
//
// It matches ErrUnknownStrategy with errors.Is. A more specific cause, if
// any, can be accessed via errors.Unwrap.
type StrategyError struct {
	Field string
	Value string
	cause error
}

func (e *StrategyError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.cause)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *StrategyError) Unwrap() error { return e.cause }

// Is reports whether target is ErrUnknownStrategy.
func (e *StrategyError) Is(target error) bool {
	return target == ErrUnknownStrategy
}
