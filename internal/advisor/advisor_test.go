package advisor

import (
	"math"
	"testing"

	"TrendAdvisor/internal/model"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		projected float64
		want      model.Category
	}{
		{"just above up threshold", 105.0001, model.BuyCall},
		{"exactly on up threshold", 105.0, model.Hold},
		{"just below down threshold", 94.9999, model.BuyPut},
		{"exactly on down threshold", 95.0, model.Hold},
		{"no move", 100.0, model.Hold},
		{"large rise", 150.0, model.BuyCall},
		{"large drop", 50.0, model.BuyPut},
	}
	for _, tt := range tests {
		rec, err := Classify(100, tt.projected, DefaultThresholds())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if rec.Category != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, rec.Category)
		}
		if rec.Rationale == "" {
			t.Errorf("%s: expected non-empty rationale", tt.name)
		}
	}
}

func TestClassify_FlatProjection(t *testing.T) {
	rec, err := Classify(50, 50, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Category != model.Hold {
		t.Errorf("expected HOLD for flat projection, got %s", rec.Category)
	}
	if rec.CurrentPrice != 50 || rec.ProjectedPrice != 50 {
		t.Errorf("expected prices carried through, got %+v", rec)
	}
}

func TestClassify_ZeroCurrentPrice(t *testing.T) {
	// Degenerate but legal: the threshold formulas still apply verbatim.
	rec, err := Classify(0, 1, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Category != model.BuyCall {
		t.Errorf("expected BUY_CALL (1 > 0*1.05), got %s", rec.Category)
	}
	rec, err = Classify(0, 0, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Category != model.Hold {
		t.Errorf("expected HOLD (0 == 0), got %s", rec.Category)
	}
}

func TestClassify_NonFiniteInputs(t *testing.T) {
	cases := []struct {
		name               string
		current, projected float64
	}{
		{"NaN current", math.NaN(), 100},
		{"NaN projected", 100, math.NaN()},
		{"Inf current", math.Inf(1), 100},
		{"Inf projected", 100, math.Inf(-1)},
	}
	for _, c := range cases {
		if _, err := Classify(c.current, c.projected, DefaultThresholds()); err == nil {
			t.Errorf("%s: expected an error, got nil", c.name)
		}
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	// 2% bands: a 3% move should now trigger.
	th := Thresholds{Up: 0.02, Down: 0.02}
	rec, err := Classify(100, 103, th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Category != model.BuyCall {
		t.Errorf("expected BUY_CALL with 2%% threshold, got %s", rec.Category)
	}
	rec, err = Classify(100, 97, th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Category != model.BuyPut {
		t.Errorf("expected BUY_PUT with 2%% threshold, got %s", rec.Category)
	}
}
