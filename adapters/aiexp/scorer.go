// Package aiexp scores recorded machine responses against the pattern
// test battery: five response-style dimensions per answer, correctness
// checking, per-condition battery rollups, and field-access metrics
// compared to the human savant benchmarks.
package aiexp

import (
	"regexp"
	"strconv"
	"strings"

	"savantfnc/domain/aiexp"
	"savantfnc/internal/config"
)

// Marker vocabularies behind the dimension heuristics. Counts are
// occurrence counts over the normalized response.
var (
	hedgeMarkers = []string{
		"approximately", "about", "around", "roughly", "maybe", "probably",
		"i think", "it seems", "possibly",
	}
	certainMarkers = []string{
		"definitely", "certainly", "exactly", "precisely", "clearly",
	}
	uncertainMarkers = []string{
		"not sure", "uncertain", "might be", "could be", "i believe",
		"i'm not certain", "possibly",
	}
	patternMarkers = []string{
		"pattern", "structure", "relationship", "ratio", "sequence",
		"harmony", "symmetry", "cycle", "rhythm",
	}
	explanationMarkers = []string{
		"because", "since", "therefore", "thus", "the reason",
		"this works by", "step by step",
	}
)

// ResponseScore is one scored answer
// INVARIANTS:
// - Every dimension and Overall sit in [0, 1]
// - Level is derived from Overall via the configured cuts
type ResponseScore struct {
	TestID     string                 `json:"test_id,omitempty"`
	Condition  string                 `json:"condition,omitempty"`
	Response   string                 `json:"response"`
	Expected   string                 `json:"expected"`
	Correct    bool                   `json:"correct"`
	Dimensions aiexp.DimensionProfile `json:"dimensions"`
	Overall    float64                `json:"overall"`
	Level      string                 `json:"level"`
	Note       string                 `json:"note,omitempty"`
}

// Response-style levels relative to the savant benchmarks
const (
	LevelHigh     = "highly savant-like"
	LevelModerate = "moderately savant-like"
	LevelTypical  = "typical"
)

// fieldAccessNote flags responses whose overall style suggests direct
// rather than reconstructive retrieval
const fieldAccessNote = "Direct Field access pattern"

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func countMarkers(text string, markers []string) int {
	n := 0
	for _, m := range markers {
		n += strings.Count(text, m)
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// scoreDirectness rewards answers that lead with the expected value.
// Missing answers score zero; later positions score progressively less.
func scoreDirectness(response, expected string) float64 {
	pos := strings.Index(response, expected)
	switch {
	case pos < 0:
		return 0.0
	case pos < 50:
		return 1.0
	case pos < 200:
		return 0.6
	default:
		return 0.3
	}
}

func scorePrecision(response string) float64 {
	return clamp01(1 - 0.2*float64(countMarkers(response, hedgeMarkers)))
}

func scoreConfidence(response string) float64 {
	certain := countMarkers(response, certainMarkers)
	uncertain := countMarkers(response, uncertainMarkers)
	return clamp01(0.5 + 0.15*float64(certain) - 0.15*float64(uncertain))
}

func scorePatternAwareness(response string) float64 {
	return clamp01(0.25 * float64(countMarkers(response, patternMarkers)))
}

// scoreOpacity is high when the response gives no account of method.
// Explanation markers lower it.
func scoreOpacity(response string) float64 {
	return clamp01(1 - 0.15*float64(countMarkers(response, explanationMarkers)))
}

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// CheckAnswer matches the expected answer as a normalized substring,
// falling back to numeric comparison within 0.01
func CheckAnswer(response, expected string) bool {
	r := normalize(response)
	e := normalize(expected)
	if e == "" {
		return false
	}
	if strings.Contains(r, e) {
		return true
	}

	want, err := strconv.ParseFloat(numberPattern.FindString(e), 64)
	if err != nil {
		return false
	}
	for _, m := range numberPattern.FindAllString(r, -1) {
		got, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if diff := got - want; diff < 0.01 && diff > -0.01 {
			return true
		}
	}
	return false
}

// ScoreResponse runs the five dimension heuristics over one answer and
// folds them into the weighted overall score
func ScoreResponse(cfg config.ScoringConfig, response, expected string) ResponseScore {
	r := normalize(response)
	e := normalize(expected)

	dims := aiexp.DimensionProfile{
		Directness:       scoreDirectness(r, e),
		Precision:        scorePrecision(r),
		Confidence:       scoreConfidence(r),
		PatternAwareness: scorePatternAwareness(r),
		Opacity:          scoreOpacity(r),
	}
	overall := cfg.WeightDirectness*dims.Directness +
		cfg.WeightPrecision*dims.Precision +
		cfg.WeightConfidence*dims.Confidence +
		cfg.WeightPattern*dims.PatternAwareness +
		cfg.WeightOpacity*dims.Opacity

	score := ResponseScore{
		Response:   response,
		Expected:   expected,
		Correct:    CheckAnswer(response, expected),
		Dimensions: dims,
		Overall:    overall,
		Level:      scoreLevel(cfg, overall),
	}
	if overall > 0.6 {
		score.Note = fieldAccessNote
	}
	return score
}

func scoreLevel(cfg config.ScoringConfig, overall float64) string {
	switch {
	case overall > cfg.HighCut:
		return LevelHigh
	case overall > cfg.ModerateCut:
		return LevelModerate
	default:
		return LevelTypical
	}
}
