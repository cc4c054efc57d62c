package aiexp

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"savantfnc/domain/aiexp"
)

// Access types classify a mean response profile by which dimensions
// dominate. First match wins.
const (
	AccessDirect   = "Direct Field Access"
	AccessPattern  = "Pattern-Aware Processing"
	AccessImplicit = "Implicit Access"
	AccessFiltered = "Filtered Processing"
)

// AccessMetrics aggregates a scored response set into a field-access
// reading with benchmark comparisons
type AccessMetrics struct {
	N              int                    `json:"n"`
	MeanProfile    aiexp.DimensionProfile `json:"mean_profile"`
	MeanOverall    float64                `json:"mean_overall"`
	AccessType     string                 `json:"access_type"`
	Alignment      string                 `json:"alignment"`
	Benchmarks     []BenchmarkSimilarity  `json:"benchmarks"`
	Closest        string                 `json:"closest_benchmark,omitempty"`
	Interpretation string                 `json:"interpretation"`
}

// BenchmarkSimilarity scores a mean profile against one published
// savant profile
// INVARIANTS:
// - Similarity == 1 - mean absolute dimension gap, in [0, 1]
// - LargestGap names the dimension with the widest gap
type BenchmarkSimilarity struct {
	Domain     string  `json:"domain"`
	Similarity float64 `json:"similarity"`
	LargestGap string  `json:"largest_gap"`
	GapSize    float64 `json:"gap_size"`
}

func dimensionValues(p aiexp.DimensionProfile) map[string]float64 {
	return map[string]float64{
		"directness":            p.Directness,
		"precision":             p.Precision,
		"confidence":            p.Confidence,
		"pattern_awareness":     p.PatternAwareness,
		"metacognitive_opacity": p.Opacity,
	}
}

// dimensionOrder fixes the reporting order for gap scans
var dimensionOrder = []string{
	"directness", "precision", "confidence", "pattern_awareness", "metacognitive_opacity",
}

func meanProfile(scored []ResponseScore) aiexp.DimensionProfile {
	n := len(scored)
	if n == 0 {
		return aiexp.DimensionProfile{}
	}
	var directness, precision, confidence, pattern, opacity stats.Float64Data
	for _, s := range scored {
		directness = append(directness, s.Dimensions.Directness)
		precision = append(precision, s.Dimensions.Precision)
		confidence = append(confidence, s.Dimensions.Confidence)
		pattern = append(pattern, s.Dimensions.PatternAwareness)
		opacity = append(opacity, s.Dimensions.Opacity)
	}
	d, _ := stats.Mean(directness)
	p, _ := stats.Mean(precision)
	c, _ := stats.Mean(confidence)
	pa, _ := stats.Mean(pattern)
	o, _ := stats.Mean(opacity)
	return aiexp.DimensionProfile{
		Directness: d, Precision: p, Confidence: c, PatternAwareness: pa, Opacity: o,
	}
}

func meanOverall(scored []ResponseScore) float64 {
	if len(scored) == 0 {
		return 0
	}
	var overall stats.Float64Data
	for _, s := range scored {
		overall = append(overall, s.Overall)
	}
	m, _ := stats.Mean(overall)
	return m
}

// classifyAccess reads the access type off a mean profile
func classifyAccess(p aiexp.DimensionProfile) string {
	switch {
	case p.Directness > 0.7 && p.Precision > 0.7:
		return AccessDirect
	case p.PatternAwareness > 0.7:
		return AccessPattern
	case p.Opacity > 0.7:
		return AccessImplicit
	default:
		return AccessFiltered
	}
}

func classifyAlignment(meanOverall float64) string {
	switch {
	case meanOverall > 0.6:
		return "high"
	case meanOverall > 0.4:
		return "moderate"
	default:
		return "low"
	}
}

// CompareToBenchmark measures a mean profile against one savant profile
func CompareToBenchmark(profile aiexp.DimensionProfile, benchmark aiexp.SavantBenchmark) BenchmarkSimilarity {
	got := dimensionValues(profile)
	want := dimensionValues(benchmark.Profile)

	sum := 0.0
	largest := ""
	largestGap := -1.0
	for _, dim := range dimensionOrder {
		gap := math.Abs(got[dim] - want[dim])
		sum += gap
		if gap > largestGap {
			largestGap = gap
			largest = dim
		}
	}
	return BenchmarkSimilarity{
		Domain:     benchmark.Domain,
		Similarity: 1 - sum/float64(len(dimensionOrder)),
		LargestGap: largest,
		GapSize:    largestGap,
	}
}

// FieldAccessMetrics aggregates scored responses into the field-access
// reading the report narrates. An empty input classifies as filtered
// with no benchmark comparisons.
func FieldAccessMetrics(scored []ResponseScore) AccessMetrics {
	m := AccessMetrics{
		N:           len(scored),
		MeanProfile: meanProfile(scored),
		MeanOverall: meanOverall(scored),
	}
	m.AccessType = classifyAccess(m.MeanProfile)
	m.Alignment = classifyAlignment(m.MeanOverall)

	if m.N == 0 {
		m.Interpretation = "No scored responses; no field-access reading."
		return m
	}

	bestSim := -1.0
	for _, benchmark := range aiexp.SavantBenchmarks() {
		sim := CompareToBenchmark(m.MeanProfile, benchmark)
		m.Benchmarks = append(m.Benchmarks, sim)
		if sim.Similarity > bestSim {
			bestSim = sim.Similarity
			m.Closest = sim.Domain
		}
	}
	m.Interpretation = fmt.Sprintf(
		"Mean response profile over %d answers reads as %s (%s savant alignment, overall %.2f). "+
			"Closest human benchmark: %s savants at %.0f%% similarity.",
		m.N, m.AccessType, m.Alignment, m.MeanOverall, m.Closest, bestSim*100)
	return m
}
