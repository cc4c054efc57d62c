package analyses

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"savantfnc/domain/savant"
	"savantfnc/internal/config"
	"savantfnc/ports"
)

// LateralityResult carries the hemispheric sign test over mapped
// acquired-savant lesion cases
// INVARIANTS:
// - Left + Right == Total
// - PValue is the two-sided exact binomial probability under p = 0.5
type LateralityResult struct {
	Sites          []savant.LesionSiteCount `json:"sites"`
	Left           int                      `json:"left"`
	Right          int                      `json:"right"`
	Total          int                      `json:"total"`
	LeftShare      float64                  `json:"left_share"`
	PValue         float64                  `json:"p_value"`
	Interpretation string                   `json:"interpretation"`
}

// LesionLaterality runs an exact sign test on the left/right split of
// lesion sites. sites overrides the embedded tally when non-empty.
func LesionLaterality(cfg config.StatsConfig, sites []savant.LesionSiteCount) LateralityResult {
	if len(sites) == 0 {
		sites = savant.LesionSiteCounts()
	}

	var left, right int
	for _, s := range sites {
		switch s.Hemisphere {
		case "left":
			left += s.Cases
		case "right":
			right += s.Cases
		}
	}
	total := left + right
	if total == 0 {
		return LateralityResult{Sites: sites, PValue: 1, Interpretation: "No lateralized cases to test"}
	}

	result := LateralityResult{
		Sites:     sites,
		Left:      left,
		Right:     right,
		Total:     total,
		LeftShare: float64(left) / float64(total),
	}

	// Two-sided exact test against a symmetric split. CDF(k) is
	// P[X <= k], so the majority-side tail starts one below the count.
	majority := left
	if right > majority {
		majority = right
	}
	binom := distuv.Binomial{N: float64(total), P: 0.5}
	p := 2 * (1 - binom.CDF(float64(majority-1)))
	if p > 1 {
		p = 1
	}
	result.PValue = p
	result.Interpretation = lateralityInterpretation(result)
	return result
}

func lateralityInterpretation(r LateralityResult) string {
	side := "left"
	if r.Right > r.Left {
		side = "right"
	}
	return fmt.Sprintf(
		"Of %d mapped acquired-savant lesions, %d are %s-hemisphere (%.0f%%). Under a symmetric null the "+
			"split is essentially impossible (p = %.2g), pointing at a lateralized gate: damage to left-sided "+
			"semantic and narrative machinery releases detail streams the intact hemisphere normally masks.",
		r.Total, max(r.Left, r.Right), side, r.LeftShare*100, r.PValue)
}

// LateralityAnalysis adapts the lesion sign test to ports.Analysis
type LateralityAnalysis struct {
	cfg config.StatsConfig
}

func NewLateralityAnalysis(cfg config.StatsConfig) *LateralityAnalysis {
	return &LateralityAnalysis{cfg: cfg}
}

func (a *LateralityAnalysis) Name() string {
	return "lesion_laterality"
}

func (a *LateralityAnalysis) Description() string {
	return "Exact sign test on the hemispheric split of acquired-savant lesion sites"
}

func (a *LateralityAnalysis) Run(ctx context.Context) (ports.AnalysisResult, error) {
	result := LesionLaterality(a.cfg, nil)
	return ports.AnalysisResult{
		Analysis:    a.Name(),
		EffectSize:  result.LeftShare,
		EffectUnit:  "left-hemisphere share",
		PValue:      result.PValue,
		Confidence:  calculateConfidence(result.PValue),
		Signal:      classifySignal(result.LeftShare, "share"),
		Description: result.Interpretation,
		Metadata: map[string]interface{}{
			"left":  result.Left,
			"right": result.Right,
			"total": result.Total,
			"sites": result.Sites,
		},
	}, nil
}
