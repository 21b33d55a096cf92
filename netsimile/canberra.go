package netsimile

import (
	"fmt"
	"math"
)

// canberraEps is the denominator below which a term contributes 0.
const canberraEps = 1e-15

// Canberra returns Σ |u_i − w_i| / (|u_i| + |w_i|).
//
// A term is 0 when either side is NaN (no evidence) or when both sides are
// zero (denominator below 1e-15).
//
// Errors:
//   - ErrDimensionMismatch: len(u) != len(w).
func Canberra(u, w []float64) (float64, error) {
	if len(u) != len(w) {
		return 0, fmt.Errorf("Canberra: %d vs %d: %w", len(u), len(w), ErrDimensionMismatch)
	}
	var d float64
	for i := range u {
		if math.IsNaN(u[i]) || math.IsNaN(w[i]) {
			continue
		}
		den := math.Abs(u[i]) + math.Abs(w[i])
		if den < canberraEps {
			continue
		}
		d += math.Abs(u[i]-w[i]) / den
	}

	return d, nil
}
