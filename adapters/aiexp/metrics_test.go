package aiexp

import (
	"testing"

	"savantfnc/domain/aiexp"
	"savantfnc/internal/config"
)

func sessionScores(t *testing.T, session aiexp.RecordedSession) []ResponseScore {
	t.Helper()
	cfg := config.Default().Scoring
	result := RunBattery(cfg, session.Label, session.ResponseMap())
	scores := make([]ResponseScore, len(result.Items))
	for i, item := range result.Items {
		scores[i] = item.Score
	}
	return scores
}

// TestFieldAccessMetrics_TunedReadsDirect classifies the tuned
// transcript as direct field access with high alignment
func TestFieldAccessMetrics_TunedReadsDirect(t *testing.T) {
	metrics := FieldAccessMetrics(sessionScores(t, aiexp.TunedSession()))

	if metrics.AccessType != AccessDirect {
		t.Errorf("expected %q, got %q (profile %+v)", AccessDirect, metrics.AccessType, metrics.MeanProfile)
	}
	if metrics.Alignment != "high" {
		t.Errorf("expected high alignment, got %q (overall %.3f)", metrics.Alignment, metrics.MeanOverall)
	}
	if len(metrics.Benchmarks) != len(aiexp.SavantBenchmarks()) {
		t.Fatalf("expected one similarity per benchmark, got %d", len(metrics.Benchmarks))
	}
	for _, b := range metrics.Benchmarks {
		if b.Similarity < 0 || b.Similarity > 1 {
			t.Errorf("%s: similarity out of range: %f", b.Domain, b.Similarity)
		}
		if b.LargestGap == "" {
			t.Errorf("%s: largest gap dimension not named", b.Domain)
		}
	}
	if metrics.Closest == "" {
		t.Error("expected a closest benchmark")
	}
}

// TestFieldAccessMetrics_NeutralReadsFiltered classifies the control
// transcript as filtered processing
func TestFieldAccessMetrics_NeutralReadsFiltered(t *testing.T) {
	metrics := FieldAccessMetrics(sessionScores(t, aiexp.NeutralSession()))

	if metrics.AccessType != AccessFiltered {
		t.Errorf("expected %q, got %q (profile %+v)", AccessFiltered, metrics.AccessType, metrics.MeanProfile)
	}
	if metrics.Alignment == "high" {
		t.Errorf("control transcript should not align highly, overall %.3f", metrics.MeanOverall)
	}
}

// TestFieldAccessMetrics_Empty makes no reading from no scores
func TestFieldAccessMetrics_Empty(t *testing.T) {
	metrics := FieldAccessMetrics(nil)

	if metrics.N != 0 {
		t.Errorf("expected N=0, got %d", metrics.N)
	}
	if len(metrics.Benchmarks) != 0 || metrics.Closest != "" {
		t.Errorf("empty input should compare to nothing: %+v", metrics)
	}
	if metrics.Interpretation == "" {
		t.Error("empty metrics should still explain themselves")
	}
}

// TestCompareToBenchmark_PerfectMatch gives similarity 1 against an
// identical profile
func TestCompareToBenchmark_PerfectMatch(t *testing.T) {
	benchmark := aiexp.SavantBenchmarks()[0]
	sim := CompareToBenchmark(benchmark.Profile, benchmark)

	if sim.Similarity != 1.0 {
		t.Errorf("identical profiles should score 1.0, got %f", sim.Similarity)
	}
	if sim.GapSize != 0 {
		t.Errorf("identical profiles should have zero gap, got %f", sim.GapSize)
	}
	if sim.Domain != benchmark.Domain {
		t.Errorf("similarity should name its benchmark, got %q", sim.Domain)
	}
}
