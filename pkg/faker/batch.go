package faker

import (
	"fmt"

	"github.com/dxcli/dx/internal/rng"
)

// DefaultMaxRetries caps per-slot retries in unique batches so an
// exhausted value space cannot loop forever.
const DefaultMaxRetries = 1000

// Batch calls fn n times sequentially and returns the values in call
// order. n = 0 returns an empty slice.
func Batch(n int, fn func() (string, error)) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// BatchUnique fills n pairwise-distinct values. On a collision the slot
// is retried up to maxRetries times; when retries exhaust it fails with
// *UniquenessError carrying the number of values emitted so far.
// maxRetries <= 0 uses DefaultMaxRetries.
func BatchUnique(n, maxRetries int, fn func() (string, error)) ([]string, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	out := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		ok := false
		for attempt := 0; attempt <= maxRetries; attempt++ {
			v, err := fn()
			if err != nil {
				return nil, err
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
			ok = true
			break
		}
		if !ok {
			return nil, &UniquenessError{Emitted: len(out), Target: n}
		}
	}
	return out, nil
}

// BatchNullable fills n slots where each is independently null with
// probability nullProb. Null slots are nil pointers. The null draw comes
// from the shared RNG, so the sequence stays reproducible.
func BatchNullable(r *rng.RNG, n int, nullProb float64, fn func() (string, error)) ([]*string, error) {
	if nullProb < 0 || nullProb > 1 {
		return nil, fmt.Errorf("%w: %g", ErrNullProbability, nullProb)
	}
	out := make([]*string, 0, n)
	for i := 0; i < n; i++ {
		null, err := r.Bernoulli(nullProb)
		if err != nil {
			return nil, err
		}
		if null {
			out = append(out, nil)
			continue
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}

// Until generates values until pred accepts one, failing with
// ErrIterationsExhausted after maxIters attempts.
func Until(fn func() (string, error), pred func(string) bool, maxIters int) (string, error) {
	if maxIters <= 0 {
		maxIters = DefaultMaxRetries
	}
	for i := 0; i < maxIters; i++ {
		v, err := fn()
		if err != nil {
			return "", err
		}
		if pred(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrIterationsExhausted, maxIters)
}
