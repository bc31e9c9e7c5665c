package collector

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func yahooTestFetcher(payload string) (*YahooFetcher, *httptest.Server) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f, srv
}

func yahooRange() (time.Time, time.Time) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 5)
}

func TestYahooFetchBars_ParsesChart(t *testing.T) {
	payload := `{"chart":{"result":[{"timestamp":[1704067200,1704153600],
		"indicators":{"quote":[{
			"open":[100.0,101.0],"high":[102.0,103.0],"low":[99.0,100.5],
			"close":[101.5,102.5],"volume":[1000,1100]}]}}]}}`
	f, srv := yahooTestFetcher(payload)
	defer srv.Close()

	start, end := yahooRange()
	bars, err := f.FetchBars("AAPL", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[1].Close != 102.5 || bars[1].Volume != 1100 {
		t.Errorf("unexpected last bar: %+v", bars[1])
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("expected bars in ascending time order")
	}
}

func TestYahooFetchBars_MissingQuoteBlock(t *testing.T) {
	payload := `{"chart":{"result":[{"timestamp":[1704067200,1704153600],
		"indicators":{"quote":[]}}]}}`
	f, srv := yahooTestFetcher(payload)
	defer srv.Close()

	start, end := yahooRange()
	if _, err := f.FetchBars("AAPL", start, end); err == nil {
		t.Fatal("expected an error for a chart response without a quote block")
	} else if !strings.Contains(err.Error(), "malformed") {
		t.Errorf("expected malformed-response error, got %v", err)
	}
}

func TestYahooFetchBars_TruncatedQuoteArrays(t *testing.T) {
	payload := `{"chart":{"result":[{"timestamp":[1704067200,1704153600],
		"indicators":{"quote":[{
			"open":[100.0],"high":[102.0],"low":[99.0],
			"close":[101.5],"volume":[1000]}]}}]}}`
	f, srv := yahooTestFetcher(payload)
	defer srv.Close()

	start, end := yahooRange()
	if _, err := f.FetchBars("AAPL", start, end); err == nil {
		t.Fatal("expected an error when quote arrays are shorter than timestamps")
	}
}

func TestYahooFetchBars_EmptyResultIsNoData(t *testing.T) {
	payload := `{"chart":{"result":[]}}`
	f, srv := yahooTestFetcher(payload)
	defer srv.Close()

	start, end := yahooRange()
	if _, err := f.FetchBars("BOGUS", start, end); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}
