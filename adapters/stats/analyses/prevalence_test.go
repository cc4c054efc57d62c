package analyses

import (
	"testing"

	"savantfnc/domain/savant"
	"savantfnc/internal/config"
)

// TestWilsonInterval_StaysInsideUnitInterval checks boundary behavior
// for rates near 0 and near 1
func TestWilsonInterval_StaysInsideUnitInterval(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		n    int
	}{
		{"rare event", 0.0001, 50000},
		{"very rare event", 0.000001, 1000000},
		{"common event", 0.99, 10},
		{"certain event", 1.0, 25},
		{"impossible event", 0.0, 25},
	}

	for _, tt := range tests {
		lo, hi := WilsonInterval(tt.p, tt.n, 1.96)
		if lo < 0 || hi > 1 {
			t.Errorf("%s: interval [%.8f, %.8f] leaves [0,1]", tt.name, lo, hi)
		}
		if lo > hi {
			t.Errorf("%s: interval out of order [%.8f, %.8f]", tt.name, lo, hi)
		}
		if tt.p < lo-1e-12 || tt.p > hi+1e-12 {
			t.Errorf("%s: interval [%.8f, %.8f] excludes the estimate %.6f", tt.name, lo, hi, tt.p)
		}
	}
}

// TestWilsonInterval_ZeroSample degrades to an empty interval
func TestWilsonInterval_ZeroSample(t *testing.T) {
	lo, hi := WilsonInterval(0.5, 0, 1.96)
	if lo != 0 || hi != 0 {
		t.Errorf("expected empty interval for n=0, got [%.4f, %.4f]", lo, hi)
	}
}

// TestWilsonInterval_NarrowsWithSampleSize checks the basic width law
func TestWilsonInterval_NarrowsWithSampleSize(t *testing.T) {
	loSmall, hiSmall := WilsonInterval(0.10, 50, 1.96)
	loLarge, hiLarge := WilsonInterval(0.10, 5000, 1.96)

	if (hiLarge - loLarge) >= (hiSmall - loSmall) {
		t.Errorf("larger sample should narrow the interval: n=50 width %.4f, n=5000 width %.4f",
			hiSmall-loSmall, hiLarge-loLarge)
	}
}

// TestPrevalenceIntervals_OverrideEstimates runs the analysis on a
// custom estimate table
func TestPrevalenceIntervals_OverrideEstimates(t *testing.T) {
	cfg := config.Default()
	custom := []savant.PrevalenceEstimate{
		{Label: "survey", Proportion: 0.10, SampleSize: 5000, Source: "test"},
		{Label: "registry", Proportion: 0.02, SampleSize: 1000, Source: "test"},
	}

	result := PrevalenceIntervals(cfg.Stats, custom)
	if len(result.Intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(result.Intervals))
	}
	// The 10% row matches the configured savant-in-autism rate, so the
	// one-sample test against the general baseline should fire
	if result.PValue >= 0.001 {
		t.Errorf("expected a decisive one-sample test, got p=%.4g", result.PValue)
	}
	if result.Interpretation == "" {
		t.Error("expected an interpretation line")
	}
}
