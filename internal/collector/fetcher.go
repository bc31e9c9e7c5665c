package collector

import (
	"errors"
	"time"

	"TrendAdvisor/internal/model"
)

// ErrNoData is returned when the upstream source has no bars for the
// requested symbol and date range (unknown symbol, empty result). Callers
// must surface this as a user-visible condition, not as an analysis result.
var ErrNoData = errors.New("no market data for symbol")

// Fetcher defines the interface for fetching historical market data.
type Fetcher interface {
	// FetchBars returns daily OHLCV bars for the inclusive date range,
	// ordered ascending by time.
	FetchBars(symbol string, start, end time.Time) ([]model.OHLCV, error)
	Name() string
}
