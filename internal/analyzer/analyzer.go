// Package analyzer wires the market-data fetcher, the trend extrapolator,
// the classifier, and the options fetcher into one request-scoped pipeline.
package analyzer

import (
	"errors"
	"fmt"
	"log"
	"time"

	"TrendAdvisor/internal/advisor"
	"TrendAdvisor/internal/collector"
	"TrendAdvisor/internal/forecast"
	"TrendAdvisor/internal/model"
	"TrendAdvisor/internal/options"
)

// Report is the complete result of one analysis request.
type Report struct {
	Symbol         string
	Projection     forecast.Projection
	Recommendation *model.Recommendation
	// Options is the chain for the nearest expiry, attached purely as
	// reference data. Nil when OptionsAvailable is false.
	Options          *model.OptionsChain
	OptionsAvailable bool
	GeneratedAt      time.Time
}

// Service runs the trend-to-decision pipeline. It holds no per-request
// state; every Analyze call is independent.
type Service struct {
	Market     collector.Fetcher
	Options    options.Fetcher
	Thresholds advisor.Thresholds
	Horizon    int
}

// NewService creates an analysis service with the given collaborators.
func NewService(market collector.Fetcher, opts options.Fetcher, th advisor.Thresholds, horizon int) *Service {
	return &Service{Market: market, Options: opts, Thresholds: th, Horizon: horizon}
}

// Analyze fetches bars for the inclusive date range, extrapolates the trend
// and classifies the projected move. Classification only runs after a
// successful extrapolation; every upstream failure propagates instead of
// being defaulted to a price.
func (s *Service) Analyze(symbol string, start, end time.Time) (*Report, error) {
	bars, err := s.Market.FetchBars(symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}

	series := &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
	proj, err := forecast.Extrapolate(series, s.Horizon)
	if err != nil {
		return nil, fmt.Errorf("extrapolate %s: %w", symbol, err)
	}

	rec, err := advisor.Classify(proj.CurrentPrice, proj.ProjectedPrice, s.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", symbol, err)
	}

	report := &Report{
		Symbol:         symbol,
		Projection:     proj,
		Recommendation: rec,
		GeneratedAt:    time.Now(),
	}

	if s.Options != nil {
		chain, err := s.nearestChain(symbol)
		switch {
		case err == nil:
			report.Options = chain
			report.OptionsAvailable = true
		case errors.Is(err, options.ErrUnavailable):
			// Recommendation stands; the report carries the explicit flag.
			log.Printf("[WARN] options unavailable for %s", symbol)
		default:
			return nil, fmt.Errorf("options chain %s: %w", symbol, err)
		}
	}

	return report, nil
}

// nearestChain fetches the chain for the earliest listed expiry.
func (s *Service) nearestChain(symbol string) (*model.OptionsChain, error) {
	expiries, err := s.Options.Expiries(symbol)
	if err != nil {
		return nil, err
	}
	if len(expiries) == 0 {
		return nil, options.ErrUnavailable
	}
	return s.Options.Chain(symbol, expiries[0])
}
