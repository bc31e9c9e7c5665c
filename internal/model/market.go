package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the raw historical price data for one instrument.
// Bars are ordered ascending by time with unique timestamps; a bar's
// position in the slice is the regression covariate.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Closes extracts the closing prices in series order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// LastClose returns the most recent closing price. The series must be non-empty.
func (s *PriceSeries) LastClose() float64 {
	return s.Bars[len(s.Bars)-1].Close
}
