package genetics

import (
	"fmt"

	"savantfnc/domain/genetics"
)

// GeneContribution records how one variant moved its axis
type GeneContribution struct {
	Gene         string          `json:"gene"`
	Axis         genetics.Axis   `json:"axis"`
	Weight       float64         `json:"weight"`
	Impact       genetics.Impact `json:"impact"`
	Multiplier   float64         `json:"multiplier"`
	Contribution float64         `json:"contribution"`
}

// FNCScores is a variant profile projected onto the four tuning axes
// INVARIANTS:
// - Normalized scores are raw/max(raw); the dominant axis reads 1.0
// - All-zero raw scores leave Normalized zeroed and the predicted
//   domain indeterminate
type FNCScores struct {
	Raw             map[genetics.Axis]float64 `json:"raw"`
	Normalized      map[genetics.Axis]float64 `json:"normalized"`
	DominantAxis    genetics.Axis             `json:"dominant_axis,omitempty"`
	PredictedDomain string                    `json:"predicted_domain"`
	Contributions   []GeneContribution        `json:"contributions"`
	SkippedGenes    []string                  `json:"skipped_genes,omitempty"`
	Interpretation  string                    `json:"interpretation"`
}

// CalculateFNCScores accumulates axis weight x impact multiplier per
// variant. Genes outside the tuning model are skipped and reported, not
// an error. Dominance ties resolve frequency > integration > bandwidth
// > filtering.
func CalculateFNCScores(variants []genetics.Variant) FNCScores {
	raw := make(map[genetics.Axis]float64, 4)
	normalized := make(map[genetics.Axis]float64, 4)
	for _, axis := range genetics.Axes() {
		raw[axis] = 0
		normalized[axis] = 0
	}

	var contributions []GeneContribution
	var skipped []string
	for _, v := range variants {
		axis, weight, ok := genetics.AxisWeight(v.Gene)
		if !ok {
			skipped = append(skipped, v.Gene)
			continue
		}
		multiplier := v.Impact.Multiplier()
		contribution := weight * multiplier
		raw[axis] += contribution
		contributions = append(contributions, GeneContribution{
			Gene:         v.Gene,
			Axis:         axis,
			Weight:       weight,
			Impact:       v.Impact,
			Multiplier:   multiplier,
			Contribution: contribution,
		})
	}

	var dominant genetics.Axis
	best := 0.0
	for _, axis := range genetics.TieBreakOrder() {
		if raw[axis] > best {
			best = raw[axis]
			dominant = axis
		}
	}

	scores := FNCScores{
		Raw:           raw,
		Normalized:    normalized,
		Contributions: contributions,
		SkippedGenes:  skipped,
	}
	if best == 0 {
		scores.PredictedDomain = genetics.DomainIndeterminate
		scores.Interpretation = "No tuning-model genes in the variant set; no domain prediction."
		return scores
	}

	for axis, score := range raw {
		normalized[axis] = score / best
	}
	scores.DominantAxis = dominant
	scores.PredictedDomain = genetics.DomainForAxis(dominant)
	scores.Interpretation = scoresInterpretation(scores)
	return scores
}

func scoresInterpretation(s FNCScores) string {
	return fmt.Sprintf(
		"The %s axis dominates the variant profile (raw %.2f across %d contributing variants), "+
			"predicting savant expression in the %s domain pairing.",
		s.DominantAxis, s.Raw[s.DominantAxis], len(s.Contributions), s.PredictedDomain)
}
