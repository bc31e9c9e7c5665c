package notifier

import (
	"strings"
	"testing"
	"time"

	"TrendAdvisor/internal/analyzer"
	"TrendAdvisor/internal/forecast"
	"TrendAdvisor/internal/model"
)

func sampleReport() *analyzer.Report {
	return &analyzer.Report{
		Symbol: "AAPL",
		Projection: forecast.Projection{
			CurrentPrice:   20,
			ProjectedPrice: 34,
			Model:          forecast.TrendModel{Slope: 2, Intercept: 10},
			Horizon:        7,
		},
		Recommendation: &model.Recommendation{
			Category:       model.BuyCall,
			Rationale:      "The price is projected to rise significantly from $20.00 to $34.00.",
			CurrentPrice:   20,
			ProjectedPrice: 34,
		},
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatReport_WithOptions(t *testing.T) {
	r := sampleReport()
	r.OptionsAvailable = true
	r.Options = &model.OptionsChain{
		Symbol: "AAPL",
		Expiry: time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
		Calls:  []model.OptionQuote{{Strike: 20, LastPrice: 1.5, OpenInterest: 100, ImpliedVolatility: 0.3}},
		Puts:   []model.OptionQuote{{Strike: 20, LastPrice: 1.2, OpenInterest: 80, ImpliedVolatility: 0.35}},
	}

	out := FormatReport(r)
	for _, want := range []string{"AAPL", "$20.00", "$34.00", "BUY_CALL", "2024-06-21", "Calls (1)", "Puts (1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "unavailable") {
		t.Errorf("report should not claim options unavailable:\n%s", out)
	}
}

func TestFormatReport_OptionsUnavailableIsExplicit(t *testing.T) {
	out := FormatReport(sampleReport())
	if !strings.Contains(out, "Options data unavailable") {
		t.Errorf("expected explicit options-unavailable note:\n%s", out)
	}
	if strings.Contains(out, "Calls (") {
		t.Errorf("expected no chain tables when unavailable:\n%s", out)
	}
}

func TestFormatScanSummary(t *testing.T) {
	out := FormatScanSummary([]*analyzer.Report{sampleReport()}, map[string]string{"BOGUS": "no market data"})
	if !strings.Contains(out, "AAPL") || !strings.Contains(out, "BUY_CALL") {
		t.Errorf("summary missing report line:\n%s", out)
	}
	if !strings.Contains(out, "BOGUS") || !strings.Contains(out, "no market data") {
		t.Errorf("summary missing failure line:\n%s", out)
	}
}

func TestFormatScanSummary_FailuresSorted(t *testing.T) {
	failures := map[string]string{
		"ZZZZ": "no market data",
		"AAAA": "no market data",
		"MMMM": "no market data",
	}
	out := FormatScanSummary(nil, failures)
	a := strings.Index(out, "AAAA")
	m := strings.Index(out, "MMMM")
	z := strings.Index(out, "ZZZZ")
	if a < 0 || m < 0 || z < 0 {
		t.Fatalf("summary missing failure lines:\n%s", out)
	}
	if !(a < m && m < z) {
		t.Errorf("expected failures in symbol order, got:\n%s", out)
	}
}

func TestMostActive_PreservesStrikeOrder(t *testing.T) {
	quotes := []model.OptionQuote{
		{Strike: 90, OpenInterest: 10},
		{Strike: 95, OpenInterest: 500},
		{Strike: 100, OpenInterest: 50},
		{Strike: 105, OpenInterest: 300},
	}
	top := mostActive(quotes, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(top))
	}
	if top[0].Strike != 95 || top[1].Strike != 105 {
		t.Errorf("expected strikes [95 105], got [%v %v]", top[0].Strike, top[1].Strike)
	}
}
