// Package advisor maps a (current, projected) price pair to a discrete
// trade recommendation. The classification is a pure function of the two
// prices and the configured thresholds; options data never feeds into it.
package advisor

import (
	"fmt"
	"math"

	"TrendAdvisor/internal/model"
)

// Default move thresholds: a projected move beyond 5% in either direction
// is considered significant.
const (
	DefaultUpThreshold   = 0.05
	DefaultDownThreshold = 0.05
)

// Thresholds holds the symmetric percentage bands around the current price.
type Thresholds struct {
	Up   float64
	Down float64
}

// DefaultThresholds returns the standard 5%/5% bands.
func DefaultThresholds() Thresholds {
	return Thresholds{Up: DefaultUpThreshold, Down: DefaultDownThreshold}
}

// Classify compares the projected price against the current price and emits
// a recommendation with a human-readable rationale. The comparisons are
// strict: a projection landing exactly on a threshold is a HOLD.
func Classify(current, projected float64, th Thresholds) (*model.Recommendation, error) {
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return nil, fmt.Errorf("non-finite current price: %v", current)
	}
	if math.IsNaN(projected) || math.IsInf(projected, 0) {
		return nil, fmt.Errorf("non-finite projected price: %v", projected)
	}

	rec := &model.Recommendation{
		CurrentPrice:   current,
		ProjectedPrice: projected,
	}

	switch {
	case projected > current*(1+th.Up):
		rec.Category = model.BuyCall
		rec.Rationale = fmt.Sprintf(
			"The price is projected to rise significantly from $%.2f to $%.2f. Call options allow you to profit from this upward movement.",
			current, projected)
	case projected < current*(1-th.Down):
		rec.Category = model.BuyPut
		rec.Rationale = fmt.Sprintf(
			"The price is projected to drop significantly from $%.2f to $%.2f. Put options allow you to profit from this downward movement.",
			current, projected)
	default:
		rec.Category = model.Hold
		rec.Rationale = fmt.Sprintf(
			"The price is projected to stay around $%.2f. Options trading may not be profitable in this scenario.",
			projected)
	}

	return rec, nil
}
