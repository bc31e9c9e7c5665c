package model

import "time"

// OptionQuote is one contract row in an options chain.
type OptionQuote struct {
	ContractSymbol    string
	Strike            float64
	Expiry            time.Time
	LastPrice         float64
	Bid               float64
	Ask               float64
	Volume            int64
	OpenInterest      int64
	ImpliedVolatility float64
	InTheMoney        bool
}

// OptionsChain is a snapshot of call/put quotes for one expiry date.
// The advisory pipeline only reads it for display pass-through; the
// recommendation category never depends on its contents.
type OptionsChain struct {
	Symbol string
	Expiry time.Time
	Calls  []OptionQuote
	Puts   []OptionQuote
}
