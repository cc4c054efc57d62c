package aiexp

import (
	"fmt"

	"savantfnc/domain/aiexp"
	"savantfnc/internal/config"
)

// BatteryItemResult pairs a battery item with its scored response
type BatteryItemResult struct {
	Test  aiexp.PatternTest `json:"test"`
	Score ResponseScore     `json:"score"`
}

// DomainAccuracy rolls one test domain up
type DomainAccuracy struct {
	Domain      aiexp.TestDomain `json:"domain"`
	Total       int              `json:"total"`
	Answered    int              `json:"answered"`
	Correct     int              `json:"correct"`
	Accuracy    float64          `json:"accuracy"`
	MeanOverall float64          `json:"mean_overall"`
}

// BatteryResult is one full battery pass under a single condition
// INVARIANTS:
// - Items follow battery order; unanswered items are absent
// - Accuracy == Correct/Answered, zero when nothing was answered
type BatteryResult struct {
	Condition   string                 `json:"condition"`
	Items       []BatteryItemResult    `json:"items"`
	Answered    int                    `json:"answered"`
	Correct     int                    `json:"correct"`
	Accuracy    float64                `json:"accuracy"`
	ByDomain    []DomainAccuracy       `json:"by_domain"`
	MeanProfile aiexp.DimensionProfile `json:"mean_profile"`
	MeanOverall float64                `json:"mean_overall"`
}

// RunBattery scores one response per battery item. Items with no
// recorded response are skipped, not failed.
func RunBattery(cfg config.ScoringConfig, condition string, responses map[string]string) BatteryResult {
	result := BatteryResult{Condition: condition}

	for _, test := range aiexp.Battery() {
		response, ok := responses[test.ID]
		if !ok {
			continue
		}
		score := ScoreResponse(cfg, response, test.Expected)
		score.TestID = test.ID
		score.Condition = condition
		result.Items = append(result.Items, BatteryItemResult{Test: test, Score: score})
		result.Answered++
		if score.Correct {
			result.Correct++
		}
	}

	if result.Answered > 0 {
		result.Accuracy = float64(result.Correct) / float64(result.Answered)
		scores := make([]ResponseScore, len(result.Items))
		for i, item := range result.Items {
			scores[i] = item.Score
		}
		result.MeanProfile = meanProfile(scores)
		result.MeanOverall = meanOverall(scores)
	}
	result.ByDomain = domainRollup(result.Items)
	return result
}

func domainRollup(items []BatteryItemResult) []DomainAccuracy {
	var rollup []DomainAccuracy
	for _, domain := range aiexp.TestDomains() {
		acc := DomainAccuracy{Domain: domain, Total: len(aiexp.BatteryByDomain(domain))}
		sum := 0.0
		for _, item := range items {
			if item.Test.Domain != domain {
				continue
			}
			acc.Answered++
			if item.Score.Correct {
				acc.Correct++
			}
			sum += item.Score.Overall
		}
		if acc.Answered > 0 {
			acc.Accuracy = float64(acc.Correct) / float64(acc.Answered)
			acc.MeanOverall = sum / float64(acc.Answered)
		}
		rollup = append(rollup, acc)
	}
	return rollup
}

// ConditionComparison contrasts a tuned battery pass against the
// neutral control
type ConditionComparison struct {
	Condition       string                 `json:"condition"`
	Neutral         string                 `json:"baseline"`
	AccuracyDelta   float64                `json:"accuracy_delta"`
	OverallDelta    float64                `json:"overall_delta"`
	DimensionDeltas aiexp.DimensionProfile `json:"dimension_deltas"`
	Interpretation  string                 `json:"interpretation"`
}

// CompareConditions subtracts the neutral battery pass from a tuned one
func CompareConditions(neutral, tuned BatteryResult) ConditionComparison {
	deltas := aiexp.DimensionProfile{
		Directness:       tuned.MeanProfile.Directness - neutral.MeanProfile.Directness,
		Precision:        tuned.MeanProfile.Precision - neutral.MeanProfile.Precision,
		Confidence:       tuned.MeanProfile.Confidence - neutral.MeanProfile.Confidence,
		PatternAwareness: tuned.MeanProfile.PatternAwareness - neutral.MeanProfile.PatternAwareness,
		Opacity:          tuned.MeanProfile.Opacity - neutral.MeanProfile.Opacity,
	}
	c := ConditionComparison{
		Condition:       tuned.Condition,
		Neutral:         neutral.Condition,
		AccuracyDelta:   tuned.Accuracy - neutral.Accuracy,
		OverallDelta:    tuned.MeanOverall - neutral.MeanOverall,
		DimensionDeltas: deltas,
	}

	direction := "shifts toward"
	if c.OverallDelta < 0 {
		direction = "shifts away from"
	}
	c.Interpretation = fmt.Sprintf(
		"The %s prompt %s the savant response style against %s (overall %+.2f, directness %+.2f, "+
			"opacity %+.2f) with an accuracy change of %+.2f.",
		tuned.Condition, direction, neutral.Condition,
		c.OverallDelta, deltas.Directness, deltas.Opacity, c.AccuracyDelta)
	return c
}
