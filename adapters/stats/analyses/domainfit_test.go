package analyses

import (
	"testing"

	"savantfnc/domain/savant"
	"savantfnc/internal/config"
)

// TestDomainDistributionTest_ResidualClassifications checks which
// domains the standardized residuals flag against a uniform spread
func TestDomainDistributionTest_ResidualClassifications(t *testing.T) {
	cfg := config.Default()
	result := DomainDistributionTest(cfg.Stats, nil)

	expected := map[savant.SavantDomain]string{
		savant.DomainMusic:       "over-represented",
		savant.DomainArt:         "over-represented",
		savant.DomainCalendar:    "within expectation",
		savant.DomainMathematics: "under-represented",
		savant.DomainMechanical:  "under-represented",
		savant.DomainLanguage:    "under-represented",
	}

	if len(result.Residuals) != len(expected) {
		t.Fatalf("expected %d residuals, got %d", len(expected), len(result.Residuals))
	}
	for _, res := range result.Residuals {
		want, ok := expected[res.Domain]
		if !ok {
			t.Errorf("unexpected domain %s", res.Domain)
			continue
		}
		if res.Classification != want {
			t.Errorf("%s: expected %s (z=%.2f), got %s", res.Domain, want, res.StdResidual, res.Classification)
		}
	}
}

// TestDomainDistributionTest_UniformSpreadIsNull feeds a flat
// distribution and expects no signal
func TestDomainDistributionTest_UniformSpreadIsNull(t *testing.T) {
	cfg := config.Default()
	flat := []savant.DomainShare{
		{Domain: "a", Share: 0.25},
		{Domain: "b", Share: 0.25},
		{Domain: "c", Share: 0.25},
		{Domain: "d", Share: 0.25},
	}

	result := DomainDistributionTest(cfg.Stats, flat)
	if result.ChiSquare > 1e-9 {
		t.Errorf("expected chi-square near zero for a flat spread, got %f", result.ChiSquare)
	}
	if result.PValue < 0.99 {
		t.Errorf("expected p near 1 for a flat spread, got %f", result.PValue)
	}
	if result.CramersV > 1e-9 {
		t.Errorf("expected V near zero, got %f", result.CramersV)
	}
	for _, res := range result.Residuals {
		if res.Classification != "within expectation" {
			t.Errorf("%s: flat spread should stay within expectation, got %s", res.Domain, res.Classification)
		}
	}
}

// TestDomainDistributionTest_TooFewDomains degrades gracefully
func TestDomainDistributionTest_TooFewDomains(t *testing.T) {
	cfg := config.Default()
	single := []savant.DomainShare{{Domain: "only", Share: 1.0}}

	result := DomainDistributionTest(cfg.Stats, single)
	if result.PValue != 1.0 {
		t.Errorf("expected p=1 with one domain, got %f", result.PValue)
	}
	if result.ChiSquare != 0 {
		t.Errorf("expected zero chi-square with one domain, got %f", result.ChiSquare)
	}
}
