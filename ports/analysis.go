package ports

import (
	"context"
)

// AnalysisResult is the uniform summary every statistical analysis
// produces, whatever its internal result type looks like
type AnalysisResult struct {
	Analysis    string                 `json:"analysis"`
	EffectSize  float64                `json:"effect_size"`
	EffectUnit  string                 `json:"effect_unit,omitempty"`
	PValue      float64                `json:"p_value"`
	Confidence  float64                `json:"confidence"` // 0-1 confidence score
	Signal      string                 `json:"signal"`     // "weak", "moderate", "strong", "very_strong"
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// Analysis is one self-contained analysis over the embedded tables
type Analysis interface {
	Name() string
	Description() string
	Run(ctx context.Context) (AnalysisResult, error)
}
