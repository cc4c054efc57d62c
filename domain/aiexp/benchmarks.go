package aiexp

// DimensionProfile holds the five response-style dimensions on a 0..1
// scale. The same shape describes scored machine responses and the human
// savant benchmarks below.
type DimensionProfile struct {
	Directness       float64 `json:"directness"`
	Precision        float64 `json:"precision"`
	Confidence       float64 `json:"confidence"`
	PatternAwareness float64 `json:"pattern_awareness"`
	Opacity          float64 `json:"metacognitive_opacity"`
}

// SavantBenchmark is a published behavioral profile for one savant
// skill domain, used as the comparison target for machine responses
type SavantBenchmark struct {
	Domain  string           `json:"domain"`
	Profile DimensionProfile `json:"profile"`
	Note    string           `json:"note"`
}

var savantBenchmarks = []SavantBenchmark{
	{
		Domain: "calendar",
		Profile: DimensionProfile{
			Directness: 0.95, Precision: 0.99, Confidence: 0.90,
			PatternAwareness: 0.30, Opacity: 0.90,
		},
		Note: "Instant exact answers with no reportable method",
	},
	{
		Domain: "mathematical",
		Profile: DimensionProfile{
			Directness: 0.85, Precision: 0.95, Confidence: 0.85,
			PatternAwareness: 0.60, Opacity: 0.70,
		},
		Note: "Rapid exact calculation, partial awareness of structure",
	},
	{
		Domain: "musical",
		Profile: DimensionProfile{
			Directness: 0.80, Precision: 0.90, Confidence: 0.85,
			PatternAwareness: 0.75, Opacity: 0.60,
		},
		Note: "Immediate harmonic judgments with explicit pattern talk",
	},
}

// SavantBenchmarks returns the benchmark table
func SavantBenchmarks() []SavantBenchmark {
	out := make([]SavantBenchmark, len(savantBenchmarks))
	copy(out, savantBenchmarks)
	return out
}
