package genetics

import (
	"testing"
)

// TestGenesOnExactlyOneAxis guards the single-membership invariant the
// scoring model depends on.
func TestGenesOnExactlyOneAxis(t *testing.T) {
	seen := make(map[string]Axis)
	for _, axis := range Axes() {
		for gene := range AxisGenes(axis) {
			if prev, dup := seen[gene]; dup {
				t.Errorf("Gene %s appears on both %s and %s", gene, prev, axis)
			}
			seen[gene] = axis
		}
	}
	if len(seen) == 0 {
		t.Fatal("No tuning genes loaded")
	}
}

func TestAxisWeightLookup(t *testing.T) {
	tests := []struct {
		gene   string
		axis   Axis
		weight float64
		known  bool
	}{
		{"CACNA1C", AxisFrequency, 0.90, true},
		{"SHANK3", AxisIntegration, 0.95, true},
		{"GABRA1", AxisFiltering, 0.90, true},
		{"CNTNAP2", AxisBandwidth, 0.95, true},
		{"NOTAGENE", "", 0, false},
	}

	for _, test := range tests {
		axis, weight, ok := AxisWeight(test.gene)
		if ok != test.known {
			t.Errorf("AxisWeight(%s): known=%v, want %v", test.gene, ok, test.known)
			continue
		}
		if axis != test.axis || weight != test.weight {
			t.Errorf("AxisWeight(%s) = (%s, %f), want (%s, %f)",
				test.gene, axis, weight, test.axis, test.weight)
		}
	}
}

func TestImpactMultipliers(t *testing.T) {
	tests := []struct {
		impact Impact
		want   float64
	}{
		{ImpactHigh, 1.0},
		{ImpactModerate, 0.6},
		{ImpactLow, 0.3},
		{Impact("vus"), 0.5},
		{Impact(""), 0.5},
	}
	for _, test := range tests {
		if got := test.impact.Multiplier(); got != test.want {
			t.Errorf("Multiplier(%q) = %f, want %f", test.impact, got, test.want)
		}
	}
}

func TestCandidateGenesMapToCatalogPathways(t *testing.T) {
	catalog := PathwayCatalog()
	for _, cg := range CandidateGenes() {
		info, ok := catalog[cg.Pathway]
		if !ok {
			t.Errorf("Candidate %s references unknown pathway %s", cg.Gene, cg.Pathway)
			continue
		}
		if len(info.GOTerms) != 3 {
			t.Errorf("Pathway %s should carry three GO terms, has %d", cg.Pathway, len(info.GOTerms))
		}
	}
}

func TestDomainForAxisCoversAllAxes(t *testing.T) {
	for _, axis := range Axes() {
		if DomainForAxis(axis) == DomainIndeterminate {
			t.Errorf("Axis %s has no domain mapping", axis)
		}
	}
	if DomainForAxis(Axis("bogus")) != DomainIndeterminate {
		t.Error("Unknown axis should map to the indeterminate domain")
	}
}

func TestCategoryForGene(t *testing.T) {
	cat, ok := CategoryForGene("MBP")
	if !ok || cat.Name != "myelination" {
		t.Errorf("CategoryForGene(MBP) = (%q, %v), want (myelination, true)", cat.Name, ok)
	}
	if _, ok := CategoryForGene("TTN"); ok {
		t.Error("TTN should not classify into a tuning category")
	}
}
