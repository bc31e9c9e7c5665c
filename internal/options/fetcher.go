package options

import (
	"errors"
	"time"

	"TrendAdvisor/internal/model"
)

// ErrUnavailable is returned when the instrument has no listed options.
// The advisory pipeline still produces a recommendation in that case; only
// the chain attachment is omitted, and the absence is flagged explicitly.
var ErrUnavailable = errors.New("no options data available")

// Fetcher defines the interface for fetching options market data.
type Fetcher interface {
	// Expiries lists the available expiration dates for a symbol, sorted
	// ascending. Returns ErrUnavailable when no options are listed.
	Expiries(symbol string) ([]time.Time, error)
	// Chain returns the call/put quote tables for one expiry.
	Chain(symbol string, expiry time.Time) (*model.OptionsChain, error)
	Name() string
}
