package analyses

import (
	"testing"

	"savantfnc/domain/savant"
	"savantfnc/internal/config"
)

// TestLesionLaterality_EvenSplitIsNull checks a balanced tally produces
// no signal
func TestLesionLaterality_EvenSplitIsNull(t *testing.T) {
	cfg := config.Default()
	even := []savant.LesionSiteCount{
		{Site: "left sites", Hemisphere: "left", Cases: 15},
		{Site: "right sites", Hemisphere: "right", Cases: 15},
	}

	result := LesionLaterality(cfg.Stats, even)
	if result.PValue != 1 {
		t.Errorf("expected capped p=1 for an even split, got %.4f", result.PValue)
	}
	if result.LeftShare != 0.5 {
		t.Errorf("expected left share 0.5, got %.4f", result.LeftShare)
	}
}

// TestLesionLaterality_RightMajority tests the symmetric tail
func TestLesionLaterality_RightMajority(t *testing.T) {
	cfg := config.Default()
	flipped := []savant.LesionSiteCount{
		{Site: "left sites", Hemisphere: "left", Cases: 2},
		{Site: "right sites", Hemisphere: "right", Cases: 28},
	}

	result := LesionLaterality(cfg.Stats, flipped)
	if result.PValue <= 0 || result.PValue > 1e-5 {
		t.Errorf("a 28/2 split should be extreme on either side, got p=%.4g", result.PValue)
	}
	if result.LeftShare >= 0.5 {
		t.Errorf("expected minority left share, got %.4f", result.LeftShare)
	}
}

// TestLesionLaterality_NoCases degrades without a statistic
func TestLesionLaterality_NoCases(t *testing.T) {
	cfg := config.Default()
	empty := []savant.LesionSiteCount{{Site: "unmapped", Hemisphere: "left", Cases: 0}}

	result := LesionLaterality(cfg.Stats, empty)
	if result.PValue != 1 {
		t.Errorf("expected p=1 with no lateralized cases, got %.4f", result.PValue)
	}
	if result.Total != 0 {
		t.Errorf("expected zero total, got %d", result.Total)
	}
}

// TestLesionLaterality_MatchesSiteTally cross-checks the embedded site
// rows against the hemisphere totals
func TestLesionLaterality_MatchesSiteTally(t *testing.T) {
	cfg := config.Default()
	result := LesionLaterality(cfg.Stats, nil)

	left, right := savant.HemisphereCounts()
	if result.Left != left || result.Right != right {
		t.Errorf("analysis totals %d/%d disagree with the site tally %d/%d",
			result.Left, result.Right, left, right)
	}
	if result.Total != left+right {
		t.Errorf("total %d should equal left+right %d", result.Total, left+right)
	}
}
