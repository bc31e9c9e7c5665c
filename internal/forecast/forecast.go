package forecast

import (
	"errors"
	"fmt"
	"math"

	"TrendAdvisor/internal/model"
)

// ErrInsufficientData is returned when the series has fewer than two bars,
// so no trend line can be fit. Callers must report this distinctly from a
// zero-change projection.
var ErrInsufficientData = errors.New("need at least 2 bars to fit a trend")

// projectionOffset shifts the index the fitted model is evaluated at.
// A projection for horizon h is taken at index n+h+projectionOffset, i.e.
// the last of the h generated future indices rather than one past it.
// Kept as an explicit constant so the offset convention is visible and
// changeable in one place.
const projectionOffset = -1

// TrendModel is an ordinary least-squares linear fit of close on day index.
type TrendModel struct {
	Slope     float64
	Intercept float64
}

// At evaluates the trend line at the given day index.
func (m TrendModel) At(index int) float64 {
	return m.Slope*float64(index) + m.Intercept
}

// Projection pairs the last observed close with the model's estimate
// `horizon` days out.
type Projection struct {
	CurrentPrice   float64
	ProjectedPrice float64
	Model          TrendModel
	Horizon        int
}

// Fit computes the OLS regression of the given closes on their index
// 0..n-1. The mean-centered form keeps a constant series at exactly
// slope 0, intercept = that constant, instead of accumulating rounding
// noise in the raw normal equations.
func Fit(closes []float64) (TrendModel, error) {
	n := len(closes)
	if n < 2 {
		return TrendModel{}, ErrInsufficientData
	}

	meanX := float64(n-1) / 2
	var meanY float64
	for _, y := range closes {
		meanY += y
	}
	meanY /= float64(n)

	var sxy, sxx float64
	for i, y := range closes {
		dx := float64(i) - meanX
		sxy += dx * (y - meanY)
		sxx += dx * dx
	}

	slope := sxy / sxx
	return TrendModel{Slope: slope, Intercept: meanY - slope*meanX}, nil
}

// Extrapolate fits a trend to the series closes and projects the price
// `horizon` days past the last observed bar. The current price is the last
// observed close, never a model-smoothed value.
//
// An empty series, a non-finite close, or a horizon below 1 fails the call
// immediately; a single-bar series returns ErrInsufficientData.
func Extrapolate(series *model.PriceSeries, horizon int) (Projection, error) {
	if series == nil || len(series.Bars) == 0 {
		return Projection{}, errors.New("empty price series")
	}
	if horizon < 1 {
		return Projection{}, fmt.Errorf("horizon must be >= 1, got %d", horizon)
	}

	closes := series.Closes()
	for i, c := range closes {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Projection{}, fmt.Errorf("non-finite close at index %d", i)
		}
	}

	m, err := Fit(closes)
	if err != nil {
		return Projection{}, err
	}

	n := len(closes)
	return Projection{
		CurrentPrice:   series.LastClose(),
		ProjectedPrice: m.At(n + horizon + projectionOffset),
		Model:          m,
		Horizon:        horizon,
	}, nil
}
