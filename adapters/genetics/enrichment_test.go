package genetics

import (
	"testing"

	"savantfnc/domain/genetics"
	"savantfnc/internal/config"
)

// TestHypergeomSurvival_Bounds pins the degenerate cases and the tail
// direction
func TestHypergeomSurvival_Bounds(t *testing.T) {
	if p := HypergeomSurvival(0, 20000, 200, 7); p != 1 {
		t.Errorf("P[X>=0] should be 1, got %f", p)
	}
	if p := HypergeomSurvival(8, 20000, 200, 7); p != 0 {
		t.Errorf("k beyond the draw count should give 0, got %f", p)
	}

	p1 := HypergeomSurvival(1, 20000, 200, 7)
	p2 := HypergeomSurvival(2, 20000, 200, 7)
	if !(p1 > p2) {
		t.Errorf("survival should decrease in k: P[X>=1]=%g P[X>=2]=%g", p1, p2)
	}
	if p1 <= 0 || p1 >= 1 {
		t.Errorf("P[X>=1] should sit strictly inside (0,1), got %g", p1)
	}
}

// TestPathwayEnrichment_EmptyQuery returns an empty result set, not an
// error
func TestPathwayEnrichment_EmptyQuery(t *testing.T) {
	cfg := config.Default().Genetics
	results := PathwayEnrichment(cfg, nil)
	if len(results) != 0 {
		t.Errorf("empty query should enrich nothing, got %d results", len(results))
	}
}

// TestPathwayEnrichment_UnknownGenesSkipped drops genes outside the
// candidate catalog silently
func TestPathwayEnrichment_UnknownGenesSkipped(t *testing.T) {
	cfg := config.Default().Genetics
	results := PathwayEnrichment(cfg, []string{"TTN", "BRCA1", "APOE"})
	if len(results) != 0 {
		t.Errorf("unknown genes should hit no pathways, got %d results", len(results))
	}
}

// TestPathwayEnrichment_DemoPanel pins the hit counts and significance
// for the seven-gene demo panel
func TestPathwayEnrichment_DemoPanel(t *testing.T) {
	cfg := config.Default().Genetics
	results := PathwayEnrichment(cfg, genetics.DemoPanel())

	if len(results) != 4 {
		t.Fatalf("demo panel should hit 4 pathways, got %d", len(results))
	}

	wantK := map[genetics.Pathway]int{
		genetics.PathwaySynapticTransmission: 2, // SHANK3, GRIN2B
		genetics.PathwayIonChannels:          2, // CACNA1C, SCN2A
		genetics.PathwayMyelination:          2, // CNTNAP2, MBP
		genetics.PathwayExcitationInhibition: 1, // GABRA1
	}
	for _, r := range results {
		k, ok := wantK[r.Pathway]
		if !ok {
			t.Errorf("unexpected pathway %s in results", r.Pathway)
			continue
		}
		if r.K != k {
			t.Errorf("%s: expected k=%d, got %d", r.Pathway, k, r.K)
		}
		if r.QuerySize != 7 || r.Background != cfg.BackgroundGenes {
			t.Errorf("%s: wrong sizes %+v", r.Pathway, r)
		}
		if r.Fold <= 1 {
			t.Errorf("%s: a hit on a small catalog should be enriched, fold=%f", r.Pathway, r.Fold)
		}
		if !r.Significant {
			t.Errorf("%s: p=%g should clear alpha=%g", r.Pathway, r.PValue, cfg.EnrichmentAlpha)
		}
		if r.PValue <= 0 || r.PValue >= cfg.EnrichmentAlpha {
			t.Errorf("%s: p=%g out of expected range", r.Pathway, r.PValue)
		}
	}
}

// TestPathwayEnrichment_DedupesQuery counts a repeated gene once
func TestPathwayEnrichment_DedupesQuery(t *testing.T) {
	cfg := config.Default().Genetics
	results := PathwayEnrichment(cfg, []string{"MBP", "MBP", "MBP"})

	if len(results) != 1 {
		t.Fatalf("expected one pathway, got %d", len(results))
	}
	r := results[0]
	if r.Pathway != genetics.PathwayMyelination || r.K != 1 || r.QuerySize != 1 {
		t.Errorf("duplicates should collapse: %+v", r)
	}
}

// TestEnrichmentSummary narrates empty and populated runs differently
func TestEnrichmentSummary(t *testing.T) {
	if s := EnrichmentSummary(nil); s == "" {
		t.Error("empty summary should still say something")
	}

	cfg := config.Default().Genetics
	results := PathwayEnrichment(cfg, genetics.DemoPanel())
	s := EnrichmentSummary(results)
	if s == "" || s == EnrichmentSummary(nil) {
		t.Errorf("populated summary should differ from the empty one: %q", s)
	}
}
