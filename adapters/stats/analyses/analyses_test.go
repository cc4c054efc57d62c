package analyses

import (
	"context"
	"strings"
	"testing"

	"savantfnc/internal/config"
)

// TestEngine_RunAllExecutesBattery verifies every registered analysis
// runs and results come back in registration order
func TestEngine_RunAllExecutesBattery(t *testing.T) {
	engine := NewEngine(config.Default())
	ctx := context.Background()

	results, err := engine.RunAll(ctx)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	expected := []string{
		"autism_savant_association",
		"domain_distribution",
		"tms_enhancement",
		"severity_gradient",
		"prevalence_intervals",
		"lesion_laterality",
	}
	if len(results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(results))
	}

	for i, result := range results {
		if result.Analysis != expected[i] {
			t.Errorf("result %d: expected %s, got %s", i, expected[i], result.Analysis)
		}
		if result.Signal == "" {
			t.Errorf("%s: signal should not be empty", result.Analysis)
		}
		if result.Description == "" {
			t.Errorf("%s: description should not be empty", result.Analysis)
		}
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Errorf("%s: confidence should be in [0,1], got %f", result.Analysis, result.Confidence)
		}
		if result.PValue < 0 || result.PValue > 1 {
			t.Errorf("%s: p-value should be in [0,1], got %f", result.Analysis, result.PValue)
		}
		t.Logf("%s: effect=%.3f %s, p=%.3g, signal=%s",
			result.Analysis, result.EffectSize, result.EffectUnit, result.PValue, result.Signal)
	}
}

// TestEngine_RunSingle verifies lookup by name
func TestEngine_RunSingle(t *testing.T) {
	engine := NewEngine(config.Default())
	ctx := context.Background()

	result, found, err := engine.RunSingle(ctx, "domain_distribution")
	if err != nil {
		t.Fatalf("RunSingle: %v", err)
	}
	if !found {
		t.Fatal("expected domain_distribution to be registered")
	}
	if result.Analysis != "domain_distribution" {
		t.Errorf("expected domain_distribution, got %s", result.Analysis)
	}

	_, found, err = engine.RunSingle(ctx, "no_such_analysis")
	if err != nil {
		t.Fatalf("RunSingle unknown: %v", err)
	}
	if found {
		t.Error("expected unknown analysis to report found=false")
	}
}

// TestEngine_ListNamesInOrder verifies the registration order survives
func TestEngine_ListNamesInOrder(t *testing.T) {
	engine := NewEngine(config.Default())
	names := engine.List()
	if len(names) != 6 {
		t.Fatalf("expected 6 analyses, got %d", len(names))
	}
	if names[0] != "autism_savant_association" || names[5] != "lesion_laterality" {
		t.Errorf("unexpected registration order: %v", names)
	}
}

// TestClassifySignal_Thresholds covers the per-scale cut points
func TestClassifySignal_Thresholds(t *testing.T) {
	tests := []struct {
		effect float64
		kind   string
		want   string
	}{
		{0.3, "log_odds", "weak"},
		{1.0, "log_odds", "moderate"},
		{2.0, "log_odds", "strong"},
		{11.6, "log_odds", "very_strong"},
		{0.05, "cramers_v", "weak"},
		{0.29, "cramers_v", "moderate"},
		{0.45, "cramers_v", "strong"},
		{0.1, "cohens_d", "weak"},
		{0.4, "cohens_d", "moderate"},
		{0.7, "cohens_d", "strong"},
		{1.64, "cohens_d", "very_strong"},
		{-1.64, "cohens_d", "very_strong"},
		{1.0, "rho", "very_strong"},
		{0.2, "unknown_scale", "weak"},
		{0.9, "unknown_scale", "strong"},
	}

	for _, tt := range tests {
		got := classifySignal(tt.effect, tt.kind)
		if got != tt.want {
			t.Errorf("classifySignal(%.2f, %s): expected %s, got %s", tt.effect, tt.kind, tt.want, got)
		}
	}
}

// TestCalculateConfidence_Bounds verifies confidence stays inside [0, 1)
// and orders inversely with p
func TestCalculateConfidence_Bounds(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{1.0, 0},
		{2.0, 0},
		{0.001, 0.99},
		{0, 0.99},
	}
	for _, tt := range tests {
		if got := calculateConfidence(tt.p); got != tt.want {
			t.Errorf("calculateConfidence(%g): expected %.2f, got %.2f", tt.p, tt.want, got)
		}
	}

	mid := calculateConfidence(0.05)
	if mid <= 0 || mid >= 1 {
		t.Fatalf("calculateConfidence(0.05) out of range: %f", mid)
	}
	if calculateConfidence(0.01) <= calculateConfidence(0.05) {
		t.Error("confidence should rise as p falls")
	}
}

// TestMetaInterpretation_CountsStrongSignals checks the battery summary line
func TestMetaInterpretation_CountsStrongSignals(t *testing.T) {
	engine := NewEngine(config.Default())
	results, err := engine.RunAll(context.Background())
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	summary := MetaInterpretation(results)
	if !strings.Contains(summary, "of 6 analyses") {
		t.Errorf("expected battery size in summary, got: %s", summary)
	}
}
