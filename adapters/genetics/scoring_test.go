package genetics

import (
	"math"
	"testing"

	"savantfnc/domain/genetics"
)

// TestCalculateFNCScores_DemoProfile pins the worked example: a high
// CACNA1C hit with moderate SHANK3 and GABRA1 hits lands on the
// frequency axis and predicts Music/Mathematics
func TestCalculateFNCScores_DemoProfile(t *testing.T) {
	scores := CalculateFNCScores(genetics.DemoVariants())

	if scores.DominantAxis != genetics.AxisFrequency {
		t.Fatalf("expected frequency dominant, got %s", scores.DominantAxis)
	}
	if scores.PredictedDomain != "Music/Mathematics" {
		t.Errorf("expected Music/Mathematics, got %q", scores.PredictedDomain)
	}

	if math.Abs(scores.Raw[genetics.AxisFrequency]-0.90) > 1e-9 {
		t.Errorf("frequency raw should be 0.90 (weight 0.90 x high 1.0), got %f", scores.Raw[genetics.AxisFrequency])
	}
	if math.Abs(scores.Raw[genetics.AxisIntegration]-0.57) > 1e-9 {
		t.Errorf("integration raw should be 0.57 (0.95 x 0.6), got %f", scores.Raw[genetics.AxisIntegration])
	}
	if math.Abs(scores.Raw[genetics.AxisFiltering]-0.54) > 1e-9 {
		t.Errorf("filtering raw should be 0.54 (0.90 x 0.6), got %f", scores.Raw[genetics.AxisFiltering])
	}

	if scores.Normalized[genetics.AxisFrequency] != 1.0 {
		t.Errorf("dominant axis should normalize to 1.0, got %f", scores.Normalized[genetics.AxisFrequency])
	}
	if len(scores.Contributions) != 3 || len(scores.SkippedGenes) != 0 {
		t.Errorf("expected 3 contributions and no skips, got %d/%d", len(scores.Contributions), len(scores.SkippedGenes))
	}
}

// TestCalculateFNCScores_UnknownGenes skips genes outside the model and
// reports them without predicting a domain
func TestCalculateFNCScores_UnknownGenes(t *testing.T) {
	scores := CalculateFNCScores([]genetics.Variant{
		{Gene: "TTN", Impact: genetics.ImpactHigh},
		{Gene: "BRCA1", Impact: genetics.ImpactHigh},
	})

	if scores.PredictedDomain != genetics.DomainIndeterminate {
		t.Errorf("expected indeterminate prediction, got %q", scores.PredictedDomain)
	}
	if len(scores.SkippedGenes) != 2 {
		t.Errorf("expected both genes skipped, got %v", scores.SkippedGenes)
	}
	for axis, v := range scores.Normalized {
		if v != 0 {
			t.Errorf("axis %s should stay zero, got %f", axis, v)
		}
	}
}

// TestCalculateFNCScores_EmptyInput behaves like an all-unknown profile
func TestCalculateFNCScores_EmptyInput(t *testing.T) {
	scores := CalculateFNCScores(nil)
	if scores.PredictedDomain != genetics.DomainIndeterminate {
		t.Errorf("expected indeterminate, got %q", scores.PredictedDomain)
	}
	if scores.DominantAxis != "" {
		t.Errorf("expected no dominant axis, got %s", scores.DominantAxis)
	}
}

// TestCalculateFNCScores_ImpactMonotonic raises the axis score with the
// impact grade for the same gene
func TestCalculateFNCScores_ImpactMonotonic(t *testing.T) {
	low := CalculateFNCScores([]genetics.Variant{{Gene: "MBP", Impact: genetics.ImpactLow}})
	moderate := CalculateFNCScores([]genetics.Variant{{Gene: "MBP", Impact: genetics.ImpactModerate}})
	high := CalculateFNCScores([]genetics.Variant{{Gene: "MBP", Impact: genetics.ImpactHigh}})

	l := low.Raw[genetics.AxisBandwidth]
	m := moderate.Raw[genetics.AxisBandwidth]
	h := high.Raw[genetics.AxisBandwidth]
	if !(l < m && m < h) {
		t.Errorf("impact should scale monotonically: low=%f moderate=%f high=%f", l, m, h)
	}
}

// TestCalculateFNCScores_UnknownImpact keeps the variant with the
// fallback multiplier instead of dropping it
func TestCalculateFNCScores_UnknownImpact(t *testing.T) {
	scores := CalculateFNCScores([]genetics.Variant{{Gene: "MBP", Impact: "catastrophic"}})

	want := 0.90 * 0.5
	if math.Abs(scores.Raw[genetics.AxisBandwidth]-want) > 1e-9 {
		t.Errorf("unknown impact should use the 0.5 fallback: got %f want %f", scores.Raw[genetics.AxisBandwidth], want)
	}
	if scores.PredictedDomain != "Art/Mechanical" {
		t.Errorf("bandwidth dominance should predict Art/Mechanical, got %q", scores.PredictedDomain)
	}
}

// TestCalculateFNCScores_TieBreak resolves an exact two-axis tie in the
// fixed order, bandwidth ahead of filtering
func TestCalculateFNCScores_TieBreak(t *testing.T) {
	// GABRA1 (filtering 0.90) and MBP (bandwidth 0.90), both high impact
	scores := CalculateFNCScores([]genetics.Variant{
		{Gene: "GABRA1", Impact: genetics.ImpactHigh},
		{Gene: "MBP", Impact: genetics.ImpactHigh},
	})

	if scores.Raw[genetics.AxisFiltering] != scores.Raw[genetics.AxisBandwidth] {
		t.Fatalf("setup should tie the axes: %+v", scores.Raw)
	}
	if scores.DominantAxis != genetics.AxisBandwidth {
		t.Errorf("tie should resolve to bandwidth, got %s", scores.DominantAxis)
	}
}
