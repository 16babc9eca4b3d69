package engine

import (
	"fmt"

	"scenario-model/internal/model"
)

// ImpliedAnnualDemand derives the annual addressable unit demand from the
// bike population and per-bike bag usage.
//
// This is deliberately a named operation even though it is a single
// multiplication: it is the one shared basis every downstream computation
// reads from, and the definition of "active bike" and "bags per year" is
// the most fragile assumption in the model. Replacing the uniform usage
// rate with something richer should only ever touch this function.
func ImpliedAnnualDemand(activeBikes int, bagsPerBikePerYear float64) (float64, error) {
	if activeBikes < 0 {
		return 0, fmt.Errorf("%w: activeBikes must be >= 0", model.ErrInvalidInput)
	}
	if bagsPerBikePerYear < 0 {
		return 0, fmt.Errorf("%w: bagsPerBikePerYear must be >= 0", model.ErrInvalidInput)
	}
	return float64(activeBikes) * bagsPerBikePerYear, nil
}
