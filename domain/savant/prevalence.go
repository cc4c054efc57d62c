package savant

// PrevalenceEstimate is a published point estimate with the cohort size
// behind it, the unit the Wilson interval analysis works on
type PrevalenceEstimate struct {
	Label      string  `json:"label"`
	Proportion float64 `json:"proportion"`
	SampleSize int     `json:"sample_size"`
	Source     string  `json:"source"`
}

var prevalenceEstimates = []PrevalenceEstimate{
	{"Autism in the general population", 0.015, 100000, "population surveillance"},
	{"Savant skills within autism", 0.10, 5000, "parent and clinician survey"},
	{"Prodigious savants within autism", 0.001, 5000, "registry case counts"},
	{"Acquired savant syndrome after CNS injury", 0.0001, 50000, "clinical case series"},
}

// PrevalenceEstimates returns the estimate table
func PrevalenceEstimates() []PrevalenceEstimate {
	out := make([]PrevalenceEstimate, len(prevalenceEstimates))
	copy(out, prevalenceEstimates)
	return out
}

// GradientLevel pairs an autism support level with the savant skill
// proportion reported at that level
type GradientLevel struct {
	Level            int     `json:"level"`
	Label            string  `json:"label"`
	SavantProportion float64 `json:"savant_proportion"`
}

// severityGradient orders support levels 1..3; the proportion rises with
// the level, which is the monotonic trend the gradient analysis tests.
var severityGradient = []GradientLevel{
	{1, "Level 1 (requiring support)", 0.05},
	{2, "Level 2 (requiring substantial support)", 0.10},
	{3, "Level 3 (requiring very substantial support)", 0.15},
}

// SeverityGradient returns the severity gradient table
func SeverityGradient() []GradientLevel {
	out := make([]GradientLevel, len(severityGradient))
	copy(out, severityGradient)
	return out
}
