package analyses

import (
	"context"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"savantfnc/domain/tms"
	"savantfnc/internal/config"
	"savantfnc/ports"
)

// StudyEffect is one study's standardized enhancement effect
type StudyEffect struct {
	Study     tms.Study `json:"study"`
	CohensD   float64   `json:"cohens_d"`
	SE        float64   `json:"se"`
	CILow     float64   `json:"ci_low"`
	CIHigh    float64   `json:"ci_high"`
	Magnitude string    `json:"magnitude"`
}

// EnhancementResult pools the stimulation studies
// INVARIANTS:
// - WeightedMeanD lies within [min d, max d] of the study effects
// - TotalN is the sum of study sample sizes
type EnhancementResult struct {
	Studies        []StudyEffect `json:"studies"`
	WeightedMeanD  float64       `json:"weighted_mean_d"`
	PooledSE       float64       `json:"pooled_se"`
	PValue         float64       `json:"p_value"`
	MinD           float64       `json:"min_d"`
	MaxD           float64       `json:"max_d"`
	QStatistic     float64       `json:"q_statistic"`
	KStudies       int           `json:"k_studies"`
	TotalN         int           `json:"total_n"`
	Interpretation string        `json:"interpretation"`
}

// CohensDPaired standardizes a pre/post difference by the pooled SD.
// The SE uses the paired form with an assumed pre/post correlation r.
func CohensDPaired(preMean, postMean, preSD, postSD float64, n int, r, zCritical float64) (d, se, ciLow, ciHigh float64) {
	pooled := math.Sqrt((preSD*preSD + postSD*postSD) / 2)
	if pooled == 0 || n < 2 {
		return 0, 0, 0, 0
	}
	d = (postMean - preMean) / pooled
	fn := float64(n)
	se = math.Sqrt(2*(1-r)/fn + d*d/(2*fn))
	ciLow = d - zCritical*se
	ciHigh = d + zCritical*se
	return d, se, ciLow, ciHigh
}

// EffectMagnitude labels a standardized effect on the conventional cuts
func EffectMagnitude(d float64) string {
	abs := math.Abs(d)
	switch {
	case abs < 0.2:
		return "negligible"
	case abs < 0.5:
		return "small"
	case abs < 0.8:
		return "medium"
	default:
		return "large"
	}
}

// EnhancementEffects computes per-study effects and the sample-size
// weighted mean across them. studies overrides the embedded table when
// non-empty.
func EnhancementEffects(cfg config.StatsConfig, studies []tms.Study) EnhancementResult {
	if len(studies) == 0 {
		studies = tms.Studies()
	}
	if len(studies) == 0 {
		return EnhancementResult{Interpretation: "No studies to pool"}
	}

	effects := make([]StudyEffect, 0, len(studies))
	ds := make([]float64, 0, len(studies))
	var weightedSum, weightTotal float64
	totalN := 0

	for _, s := range studies {
		d, se, lo, hi := CohensDPaired(s.PreMean, s.PostMean, s.PreSD, s.PostSD, s.N, cfg.PairedCorrelation, cfg.ZCritical)
		effects = append(effects, StudyEffect{
			Study:     s,
			CohensD:   d,
			SE:        se,
			CILow:     lo,
			CIHigh:    hi,
			Magnitude: EffectMagnitude(d),
		})
		ds = append(ds, d)
		w := float64(s.N)
		weightedSum += w * d
		weightTotal += w
		totalN += s.N
	}

	weightedMean := weightedSum / weightTotal

	q := 0.0
	seSumSq := 0.0
	for i, s := range studies {
		diff := ds[i] - weightedMean
		q += float64(s.N) * diff * diff
		ws := float64(s.N) * effects[i].SE
		seSumSq += ws * ws
	}
	pooledSE := math.Sqrt(seSumSq) / weightTotal

	pValue := 1.0
	if pooledSE > 0 {
		z := weightedMean / pooledSE
		pValue = 2 * (1 - distuv.UnitNormal.CDF(math.Abs(z)))
		if pValue > 1 {
			pValue = 1
		}
	}

	minD, _ := stats.Min(ds)
	maxD, _ := stats.Max(ds)

	result := EnhancementResult{
		Studies:       effects,
		WeightedMeanD: weightedMean,
		PooledSE:      pooledSE,
		PValue:        pValue,
		MinD:          minD,
		MaxD:          maxD,
		QStatistic:    q,
		KStudies:      len(studies),
		TotalN:        totalN,
	}
	result.Interpretation = enhancementInterpretation(result)
	return result
}

func enhancementInterpretation(r EnhancementResult) string {
	return fmt.Sprintf(
		"Across %d stimulation studies (N = %d), suppressing left frontotemporal activity produced a "+
			"weighted mean gain of d = %.2f (%s; study effects %.2f to %.2f). Healthy volunteers transiently "+
			"gaining savant-like performance argues the capacity is latent and normally filtered, not built "+
			"by practice.",
		r.KStudies, r.TotalN, r.WeightedMeanD, EffectMagnitude(r.WeightedMeanD), r.MinD, r.MaxD)
}

// EnhancementAnalysis adapts the pooled stimulation effects to
// ports.Analysis
type EnhancementAnalysis struct {
	cfg config.StatsConfig
}

func NewEnhancementAnalysis(cfg config.StatsConfig) *EnhancementAnalysis {
	return &EnhancementAnalysis{cfg: cfg}
}

func (a *EnhancementAnalysis) Name() string {
	return "tms_enhancement"
}

func (a *EnhancementAnalysis) Description() string {
	return "Pooled Cohen's d for savant-like gains under frontotemporal suppression"
}

func (a *EnhancementAnalysis) Run(ctx context.Context) (ports.AnalysisResult, error) {
	result := EnhancementEffects(a.cfg, nil)
	return ports.AnalysisResult{
		Analysis:    a.Name(),
		EffectSize:  result.WeightedMeanD,
		EffectUnit:  "Cohen's d",
		PValue:      result.PValue,
		Confidence:  calculateConfidence(result.PValue),
		Signal:      classifySignal(result.WeightedMeanD, "cohens_d"),
		Description: result.Interpretation,
		Metadata: map[string]interface{}{
			"weighted_mean_d": result.WeightedMeanD,
			"q_statistic":     result.QStatistic,
			"k_studies":       result.KStudies,
			"total_n":         result.TotalN,
			"studies":         result.Studies,
		},
	}, nil
}
