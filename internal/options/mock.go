package options

import (
	"time"

	"TrendAdvisor/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	ExpiryDates []time.Time
	ChainData   *model.OptionsChain
	Err         error
}

func (m *MockFetcher) Name() string { return "mock-options" }

func (m *MockFetcher) Expiries(_ string) ([]time.Time, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.ExpiryDates, nil
}

func (m *MockFetcher) Chain(symbol string, expiry time.Time) (*model.OptionsChain, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.ChainData != nil {
		return m.ChainData, nil
	}
	return &model.OptionsChain{Symbol: symbol, Expiry: expiry}, nil
}
