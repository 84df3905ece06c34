package faker

import (
	"fmt"
	"math"
	"sort"

	"github.com/dxcli/dx/internal/rng"
)

// WeightedItem pairs a value with its selection weight.
type WeightedItem struct {
	Value  string
	Weight float64
}

// Weighted samples values proportionally to their weights using a
// cumulative-weight array and binary search. Zero-weight items are
// skipped at construction; negative or non-finite weights are rejected.
// A built Weighted is immutable.
type Weighted struct {
	values []string
	cum    []float64
	total  float64
}

// NewWeighted validates items and builds the selector.
func NewWeighted(items []WeightedItem) (*Weighted, error) {
	w := &Weighted{}
	for i, item := range items {
		if math.IsNaN(item.Weight) || math.IsInf(item.Weight, 0) {
			return nil, fmt.Errorf("%w: item %d has non-finite weight", ErrInvalidWeight, i)
		}
		if item.Weight < 0 {
			return nil, fmt.Errorf("%w: item %d has negative weight %g", ErrInvalidWeight, i, item.Weight)
		}
		if item.Weight == 0 {
			continue
		}
		w.total += item.Weight
		w.values = append(w.values, item.Value)
		w.cum = append(w.cum, w.total)
	}
	if len(w.values) == 0 {
		return nil, fmt.Errorf("%w: no item with positive weight", ErrInvalidWeight)
	}
	return w, nil
}

// Pick draws one value. Ties on cumulative boundaries resolve in item
// order.
func (w *Weighted) Pick(r *rng.RNG) string {
	x := r.Float64() * w.total
	idx := sort.Search(len(w.cum), func(i int) bool { return w.cum[i] > x })
	if idx == len(w.cum) {
		idx = len(w.cum) - 1
	}
	return w.values[idx]
}

// Len returns the number of selectable items.
func (w *Weighted) Len() int { return len(w.values) }

// Uniform returns one of vals with uniform probability.
func Uniform(r *rng.RNG, vals []string) (string, error) {
	return r.Pick(vals)
}
