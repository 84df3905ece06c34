package faker

import (
	"errors"
	"fmt"
)

// ErrInvalidWeight is returned when a weighted selector is built from
// negative, non-finite, or all-zero weights.
var ErrInvalidWeight = errors.New("invalid weight")

// ErrIterationsExhausted is returned by Until when the predicate is not
// satisfied within the iteration cap.
var ErrIterationsExhausted = errors.New("iteration cap reached")

// ErrNullProbability is returned when a nullable batch probability falls
// outside [0, 1].
var ErrNullProbability = errors.New("null probability outside [0, 1]")

// UniquenessError reports an exhausted unique batch: Emitted values were
// produced before the per-slot retry cap was hit while aiming for Target.
type UniquenessError struct {
	Emitted int
	Target  int
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("unique generation exhausted after %d of %d values", e.Emitted, e.Target)
}
