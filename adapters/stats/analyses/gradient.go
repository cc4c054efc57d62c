package analyses

import (
	"context"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"savantfnc/domain/savant"
	"savantfnc/internal/config"
	"savantfnc/ports"
)

// GradientResult carries the severity/prevalence rank correlation
// INVARIANTS:
// - SpearmanRho is in [-1, 1]
// - PValue is 0 when the ranking is perfectly monotone (|rho| == 1)
type GradientResult struct {
	Levels         []savant.GradientLevel `json:"levels"`
	SpearmanRho    float64                `json:"spearman_rho"`
	TStatistic     float64                `json:"t_statistic"`
	PValue         float64                `json:"p_value"`
	Interpretation string                 `json:"interpretation"`
}

// ranks assigns 1-based average ranks, splitting ties evenly
func ranks(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	out := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}

// SpearmanRho is the Pearson correlation of the two rank vectors
func SpearmanRho(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	return stat.Correlation(ranks(x), ranks(y), nil)
}

// SeverityGradientTest rank-correlates autism support level against the
// savant proportion reported at that level. levels overrides the
// embedded table when non-empty.
func SeverityGradientTest(cfg config.StatsConfig, levels []savant.GradientLevel) GradientResult {
	if len(levels) == 0 {
		levels = savant.SeverityGradient()
	}
	n := len(levels)
	if n < 3 {
		return GradientResult{
			Levels:         levels,
			PValue:         1,
			Interpretation: "Too few severity levels to rank-correlate",
		}
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, l := range levels {
		xs[i] = float64(l.Level)
		ys[i] = l.SavantProportion
	}

	rho := SpearmanRho(xs, ys)

	result := GradientResult{Levels: levels, SpearmanRho: rho}
	if 1-rho*rho <= 1e-12 {
		// Perfectly monotone ranking saturates the t transform; leave the
		// statistic at zero rather than storing a non-finite value
		result.PValue = 0
	} else {
		t := rho * math.Sqrt(float64(n-2)/(1-rho*rho))
		tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
		p := 2 * (1 - tDist.CDF(math.Abs(t)))
		if p > 1 {
			p = 1
		}
		result.TStatistic = t
		result.PValue = p
	}
	result.Interpretation = gradientInterpretation(result)
	return result
}

func gradientInterpretation(r GradientResult) string {
	if len(r.Levels) < 3 {
		return r.Interpretation
	}
	first := r.Levels[0]
	last := r.Levels[len(r.Levels)-1]
	direction := "rises"
	if r.SpearmanRho < 0 {
		direction = "falls"
	}
	return fmt.Sprintf(
		"Savant skill prevalence %s monotonically with autism support level (Spearman rho = %.2f; "+
			"%.0f%% at level %d up to %.0f%% at level %d). A dose-response gradient ties savant abilities "+
			"to the degree of neural retuning rather than to an independent comorbidity.",
		direction, r.SpearmanRho, first.SavantProportion*100, first.Level, last.SavantProportion*100, last.Level)
}

// GradientAnalysis adapts the severity gradient test to ports.Analysis
type GradientAnalysis struct {
	cfg config.StatsConfig
}

func NewGradientAnalysis(cfg config.StatsConfig) *GradientAnalysis {
	return &GradientAnalysis{cfg: cfg}
}

func (a *GradientAnalysis) Name() string {
	return "severity_gradient"
}

func (a *GradientAnalysis) Description() string {
	return "Spearman rank correlation of autism support level with savant skill prevalence"
}

func (a *GradientAnalysis) Run(ctx context.Context) (ports.AnalysisResult, error) {
	result := SeverityGradientTest(a.cfg, nil)
	return ports.AnalysisResult{
		Analysis:    a.Name(),
		EffectSize:  result.SpearmanRho,
		EffectUnit:  "Spearman's rho",
		PValue:      result.PValue,
		Confidence:  calculateConfidence(result.PValue),
		Signal:      classifySignal(result.SpearmanRho, "rho"),
		Description: result.Interpretation,
		Metadata: map[string]interface{}{
			"levels":      result.Levels,
			"t_statistic": result.TStatistic,
		},
	}, nil
}
