// Package analyses implements the statistical battery: each analysis is
// one file exposing a typed result plus a thin adapter satisfying
// ports.Analysis, and the Engine runs the whole battery concurrently.
package analyses

import (
	"context"
	"fmt"
	"math"
	"strings"

	"savantfnc/internal/config"
	"savantfnc/internal/errors"
	"savantfnc/ports"
)

// Engine holds the registered analyses in presentation order
type Engine struct {
	analyses []ports.Analysis
}

// NewEngine registers the full battery against one configuration
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		analyses: []ports.Analysis{
			NewAssociationAnalysis(cfg.Stats),
			NewDomainFitAnalysis(cfg.Stats),
			NewEnhancementAnalysis(cfg.Stats),
			NewGradientAnalysis(cfg.Stats),
			NewPrevalenceAnalysis(cfg.Stats),
			NewLateralityAnalysis(cfg.Stats),
		},
	}
}

// RunAll executes every analysis concurrently and returns results in
// registration order
func (e *Engine) RunAll(ctx context.Context) ([]ports.AnalysisResult, error) {
	type indexed struct {
		result ports.AnalysisResult
		err    error
		index  int
	}

	resultChan := make(chan indexed, len(e.analyses))
	for i, a := range e.analyses {
		go func(a ports.Analysis, idx int) {
			result, err := a.Run(ctx)
			resultChan <- indexed{result: result, err: err, index: idx}
		}(a, i)
	}

	results := make([]ports.AnalysisResult, len(e.analyses))
	var firstErr error
	for range e.analyses {
		res := <-resultChan
		if res.err != nil && firstErr == nil {
			firstErr = errors.AnalysisFailed(e.analyses[res.index].Name(), res.err)
		}
		results[res.index] = res.result
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// RunSingle executes one analysis by name
func (e *Engine) RunSingle(ctx context.Context, name string) (ports.AnalysisResult, bool, error) {
	for _, a := range e.analyses {
		if a.Name() == name {
			result, err := a.Run(ctx)
			return result, true, err
		}
	}
	return ports.AnalysisResult{}, false, nil
}

// List returns the registered analysis names
func (e *Engine) List() []string {
	names := make([]string, len(e.analyses))
	for i, a := range e.analyses {
		names[i] = a.Name()
	}
	return names
}

// MetaInterpretation condenses a battery run into one narrative line
func MetaInterpretation(results []ports.AnalysisResult) string {
	strong := 0
	for _, r := range results {
		if r.Signal == "strong" || r.Signal == "very_strong" {
			strong++
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d analyses show strong or very strong signals. ", strong, len(results))
	b.WriteString("The convergent picture: savant skills cluster in autism far beyond chance, ")
	b.WriteString("concentrate in structured pattern domains, and can be transiently induced by ")
	b.WriteString("suppressing left frontotemporal filtering, consistent with tuned access to ")
	b.WriteString("raw field detail rather than acquired expertise.")
	return b.String()
}

// Helper functions for result interpretation

// classifySignal converts an effect size to signal strength. Thresholds
// depend on the effect scale.
func classifySignal(effectSize float64, effectKind string) string {
	absEffect := math.Abs(effectSize)

	switch effectKind {
	case "log_odds":
		if absEffect < 0.5 {
			return "weak"
		} else if absEffect < 1.5 {
			return "moderate"
		} else if absEffect < 3.0 {
			return "strong"
		}
		return "very_strong"

	case "cramers_v":
		if absEffect < 0.1 {
			return "weak"
		} else if absEffect < 0.3 {
			return "moderate"
		} else if absEffect < 0.5 {
			return "strong"
		}
		return "very_strong"

	case "cohens_d", "rho":
		if absEffect < 0.2 {
			return "weak"
		} else if absEffect < 0.5 {
			return "moderate"
		} else if absEffect < 0.8 {
			return "strong"
		}
		return "very_strong"

	default:
		if absEffect < 0.3 {
			return "weak"
		} else if absEffect < 0.6 {
			return "moderate"
		}
		return "strong"
	}
}

// calculateConfidence converts a p-value to a 0-1 confidence score
func calculateConfidence(pValue float64) float64 {
	if pValue >= 1.0 {
		return 0.0
	}
	if pValue <= 0.001 {
		return 0.99
	}
	c := -math.Log10(pValue) / 3.0
	if c > 0.99 {
		c = 0.99
	}
	if c < 0 {
		c = 0
	}
	return c
}
