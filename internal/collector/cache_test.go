package collector

import (
	"errors"
	"testing"
	"time"
)

func TestCachedFetcher_MemoizesWithinTTL(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	inner := &MockFetcher{Bars: GenerateMockBars(100, start, 30)}
	c := NewCachedFetcher(inner, time.Hour)

	first, err := c.FetchBars("AAPL", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.FetchBars("AAPL", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.Calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", inner.Calls)
	}
	if len(first) != len(second) {
		t.Errorf("expected identical cached result, got %d vs %d bars", len(first), len(second))
	}
}

func TestCachedFetcher_DistinctKeys(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	inner := &MockFetcher{Bars: GenerateMockBars(100, start, 30)}
	c := NewCachedFetcher(inner, time.Hour)

	if _, err := c.FetchBars("AAPL", start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.FetchBars("MSFT", start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.FetchBars("AAPL", start, end.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.Calls != 3 {
		t.Errorf("expected 3 upstream calls for 3 distinct keys, got %d", inner.Calls)
	}
}

func TestCachedFetcher_ExpiresAfterTTL(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	inner := &MockFetcher{Bars: GenerateMockBars(100, start, 30)}
	c := NewCachedFetcher(inner, time.Hour)

	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	if _, err := c.FetchBars("AAPL", start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock = clock.Add(2 * time.Hour)
	if _, err := c.FetchBars("AAPL", start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.Calls != 2 {
		t.Errorf("expected refetch after TTL, got %d upstream calls", inner.Calls)
	}
}

func TestCachedFetcher_ErrorsNotCached(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	inner := &MockFetcher{Err: ErrNoData}
	c := NewCachedFetcher(inner, time.Hour)

	if _, err := c.FetchBars("BOGUS", start, end); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	inner.Err = nil
	inner.Bars = GenerateMockBars(100, start, 30)
	if _, err := c.FetchBars("BOGUS", start, end); err != nil {
		t.Fatalf("expected success after upstream recovery, got %v", err)
	}
	if inner.Calls != 2 {
		t.Errorf("expected 2 upstream calls, got %d", inner.Calls)
	}
}
