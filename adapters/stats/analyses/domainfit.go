package analyses

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"savantfnc/domain/savant"
	"savantfnc/internal/config"
	"savantfnc/ports"
)

// DomainResidual is the per-domain cell of the goodness-of-fit test
type DomainResidual struct {
	Domain         savant.SavantDomain `json:"domain"`
	Observed       float64             `json:"observed"`
	Expected       float64             `json:"expected"`
	StdResidual    float64             `json:"std_residual"`
	Classification string              `json:"classification"`
}

// DomainFitResult holds the chi-square goodness-of-fit output against a
// uniform spread of skill domains
type DomainFitResult struct {
	SampleSize     int              `json:"sample_size"`
	ChiSquare      float64          `json:"chi_square"`
	DF             int              `json:"df"`
	PValue         float64          `json:"p_value"`
	CramersV       float64          `json:"cramers_v"`
	Residuals      []DomainResidual `json:"residuals"`
	Interpretation string           `json:"interpretation"`
}

// DomainDistributionTest asks whether savant skills spread evenly across
// the six domains. dist overrides the embedded distribution when
// non-empty. Cramér's V is normalized by n*(k-1), the one-dimensional
// goodness-of-fit form.
func DomainDistributionTest(cfg config.StatsConfig, dist []savant.DomainShare) DomainFitResult {
	if len(dist) == 0 {
		dist = savant.Distribution()
	}

	n := float64(cfg.DomainSampleSize)
	k := len(dist)
	if k < 2 {
		return DomainFitResult{
			SampleSize:     cfg.DomainSampleSize,
			PValue:         1.0,
			Interpretation: "Insufficient domains for a distribution test",
		}
	}
	expected := n / float64(k)

	chiSquare := 0.0
	residuals := make([]DomainResidual, 0, k)
	for _, row := range dist {
		observed := row.Share * n
		diff := observed - expected
		chiSquare += diff * diff / expected

		std := diff / math.Sqrt(expected)
		classification := "within expectation"
		if std > cfg.ZCritical {
			classification = "over-represented"
		} else if std < -cfg.ZCritical {
			classification = "under-represented"
		}
		residuals = append(residuals, DomainResidual{
			Domain:         row.Domain,
			Observed:       observed,
			Expected:       expected,
			StdResidual:    std,
			Classification: classification,
		})
	}

	df := k - 1
	chiDist := distuv.ChiSquared{K: float64(df)}
	pValue := 1 - chiDist.CDF(chiSquare)
	cramersV := math.Sqrt(chiSquare / (n * float64(df)))

	result := DomainFitResult{
		SampleSize: cfg.DomainSampleSize,
		ChiSquare:  chiSquare,
		DF:         df,
		PValue:     pValue,
		CramersV:   cramersV,
		Residuals:  residuals,
	}
	result.Interpretation = domainFitInterpretation(result)
	return result
}

func domainFitInterpretation(r DomainFitResult) string {
	if r.PValue > 0.05 {
		return fmt.Sprintf("Skill domains are compatible with a uniform spread (chi-square %.1f, p = %.3f)",
			r.ChiSquare, r.PValue)
	}
	over := ""
	for _, res := range r.Residuals {
		if res.Classification == "over-represented" {
			if over != "" {
				over += ", "
			}
			over += string(res.Domain)
		}
	}
	return fmt.Sprintf(
		"Savant skills concentrate in specific domains (chi-square %.1f, df %d, Cramer's V %.2f). "+
			"Over-represented: %s. The skew toward rule-dense domains matches access to structured "+
			"field regularities rather than arbitrary learning.",
		r.ChiSquare, r.DF, r.CramersV, over)
}

// DomainFitAnalysis adapts the goodness-of-fit test to ports.Analysis
type DomainFitAnalysis struct {
	cfg config.StatsConfig
}

func NewDomainFitAnalysis(cfg config.StatsConfig) *DomainFitAnalysis {
	return &DomainFitAnalysis{cfg: cfg}
}

func (a *DomainFitAnalysis) Name() string {
	return "domain_distribution"
}

func (a *DomainFitAnalysis) Description() string {
	return "Chi-square goodness of fit of skill domains against a uniform spread"
}

func (a *DomainFitAnalysis) Run(ctx context.Context) (ports.AnalysisResult, error) {
	result := DomainDistributionTest(a.cfg, nil)
	return ports.AnalysisResult{
		Analysis:    a.Name(),
		EffectSize:  result.CramersV,
		EffectUnit:  "Cramer's V",
		PValue:      result.PValue,
		Confidence:  calculateConfidence(result.PValue),
		Signal:      classifySignal(result.CramersV, "cramers_v"),
		Description: result.Interpretation,
		Metadata: map[string]interface{}{
			"chi_square": result.ChiSquare,
			"df":         result.DF,
			"residuals":  result.Residuals,
		},
	}, nil
}
