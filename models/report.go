// Package models defines the serialized report schema shared by the
// pipeline, the workbook export, and the viewer API.
package models

import (
	"time"

	"savantfnc/domain/aiexp"
	"savantfnc/internal/errors"
	"savantfnc/ports"
)

// Pipeline stage names recorded in RunInfo.Stages.
const (
	StageViz      = "viz"
	StageStats    = "stats"
	StageGenetics = "genetics"
	StageAI       = "ai"
	StageReport   = "report"
)

// RunInfo identifies one pipeline run
type RunInfo struct {
	ID          string    `json:"id"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	ConfigHash  string    `json:"config_hash"`
	Stages      []string  `json:"stages"`
}

// StatsSection carries the statistical battery plus its headline numbers
type StatsSection struct {
	Results        []ports.AnalysisResult `json:"results"`
	OddsRatio      float64                `json:"odds_ratio"`
	WeightedMeanD  float64                `json:"weighted_mean_d"`
	KStudies       int                    `json:"k_studies"`
	TotalN         int                    `json:"total_n"`
	Interpretation string                 `json:"interpretation"`
}

// EnrichmentRow is one pathway over-representation test
type EnrichmentRow struct {
	Pathway     string   `json:"pathway"`
	Name        string   `json:"name"`
	Hits        []string `json:"hits"`
	K           int      `json:"k"`
	PathwaySize int      `json:"pathway_size"`
	Fold        float64  `json:"fold"`
	PValue      float64  `json:"p_value"`
	Significant bool     `json:"significant"`
}

// AxisScore is one tuning axis of the variant profile
type AxisScore struct {
	Axis       string  `json:"axis"`
	Raw        float64 `json:"raw"`
	Normalized float64 `json:"normalized"`
}

// GeneticsSection carries enrichment, axis scoring, and the variant call
type GeneticsSection struct {
	PanelGenes            []string        `json:"panel_genes"`
	Enrichment            []EnrichmentRow `json:"enrichment"`
	EnrichmentSummary     string          `json:"enrichment_summary,omitempty"`
	AxisScores            []AxisScore     `json:"axis_scores"`
	DominantAxis          string          `json:"dominant_axis,omitempty"`
	PredictedDomain       string          `json:"predicted_domain"`
	Interpretation        string          `json:"interpretation"`
	VariantsTotal         int             `json:"variants_total"`
	VariantsRelevant      int             `json:"variants_relevant"`
	DominantCategory      string          `json:"dominant_category,omitempty"`
	VariantPredictions    []string        `json:"variant_predictions,omitempty"`
	VariantInterpretation string          `json:"variant_interpretation,omitempty"`
}

// ConditionSummary rolls up one scored response battery
type ConditionSummary struct {
	Condition   string                 `json:"condition"`
	Answered    int                    `json:"answered"`
	Correct     int                    `json:"correct"`
	Accuracy    float64                `json:"accuracy"`
	MeanOverall float64                `json:"mean_overall"`
	Profile     aiexp.DimensionProfile `json:"profile"`
	AccessType  string                 `json:"access_type"`
}

// AISection compares the scored conditions against the savant benchmarks
type AISection struct {
	Conditions     []ConditionSummary `json:"conditions"`
	AccuracyDelta  float64            `json:"accuracy_delta"`
	OverallDelta   float64            `json:"overall_delta"`
	ClosestProfile string             `json:"closest_profile,omitempty"`
	Interpretation string             `json:"interpretation"`
}

// Figure is one rendered chart
type Figure struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Prediction is one falsifiable claim derived from the interpretation
type Prediction struct {
	ID    string `json:"id"`
	Claim string `json:"claim"`
	Test  string `json:"test"`
}

// AnalysisReport is the consolidated output of a pipeline run
// INVARIANTS:
// - Every stage listed in Run.Stages has its section populated
// - Probability-like fields stay inside [0, 1]
type AnalysisReport struct {
	Run         RunInfo          `json:"run"`
	Summary     string           `json:"summary"`
	Stats       *StatsSection    `json:"stats,omitempty"`
	Genetics    *GeneticsSection `json:"genetics,omitempty"`
	AI          *AISection       `json:"ai,omitempty"`
	Figures     []Figure         `json:"figures,omitempty"`
	Predictions []Prediction     `json:"predictions,omitempty"`
}

// Validate checks the report's structural invariants
func (r *AnalysisReport) Validate() error {
	if r.Run.ID == "" {
		return errors.ValidationError("run id cannot be empty")
	}
	if r.Run.Version == "" {
		return errors.ValidationError("run version cannot be empty")
	}
	if r.Run.GeneratedAt.IsZero() {
		return errors.ValidationError("run timestamp cannot be zero")
	}

	for _, stage := range r.Run.Stages {
		switch stage {
		case StageViz:
			if len(r.Figures) == 0 {
				return errors.ValidationError("viz stage ran but no figures recorded")
			}
		case StageStats:
			if r.Stats == nil {
				return errors.ValidationError("stats stage ran but section is missing")
			}
		case StageGenetics:
			if r.Genetics == nil {
				return errors.ValidationError("genetics stage ran but section is missing")
			}
		case StageAI:
			if r.AI == nil {
				return errors.ValidationError("ai stage ran but section is missing")
			}
		case StageReport:
			// consolidation stage, no section of its own
		default:
			return errors.Newf(errors.CodeValidationError, "unknown stage %q", stage)
		}
	}

	if r.Stats != nil {
		for _, result := range r.Stats.Results {
			if !inUnitRange(result.PValue) {
				return errors.Newf(errors.CodeValidationError,
					"analysis %s: p-value %v out of range", result.Analysis, result.PValue)
			}
			if !inUnitRange(result.Confidence) {
				return errors.Newf(errors.CodeValidationError,
					"analysis %s: confidence %v out of range", result.Analysis, result.Confidence)
			}
		}
	}
	if r.Genetics != nil {
		for _, row := range r.Genetics.Enrichment {
			if !inUnitRange(row.PValue) {
				return errors.Newf(errors.CodeValidationError,
					"pathway %s: p-value %v out of range", row.Pathway, row.PValue)
			}
		}
		for _, axis := range r.Genetics.AxisScores {
			if !inUnitRange(axis.Normalized) {
				return errors.Newf(errors.CodeValidationError,
					"axis %s: normalized score %v out of range", axis.Axis, axis.Normalized)
			}
		}
	}
	if r.AI != nil {
		for _, cond := range r.AI.Conditions {
			if !inUnitRange(cond.Accuracy) {
				return errors.Newf(errors.CodeValidationError,
					"condition %s: accuracy %v out of range", cond.Condition, cond.Accuracy)
			}
			if !inUnitRange(cond.MeanOverall) {
				return errors.Newf(errors.CodeValidationError,
					"condition %s: mean overall %v out of range", cond.Condition, cond.MeanOverall)
			}
		}
	}

	for _, figure := range r.Figures {
		if figure.Name == "" || figure.Path == "" {
			return errors.ValidationError("figure entries need both name and path")
		}
	}
	return nil
}

func inUnitRange(x float64) bool {
	return x >= 0 && x <= 1
}
