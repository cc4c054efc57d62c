// Package aiexp holds the fixed materials for the machine-response
// experiments: the pattern test battery, the tuning system prompts, and
// the human savant benchmark profiles scored responses are compared to.
package aiexp

// TestDomain groups battery items by the savant skill they probe
type TestDomain string

const (
	DomainCalendarCalculation TestDomain = "calendar_calculation"
	DomainPrimeRecognition    TestDomain = "prime_recognition"
	DomainHarmonicRelations   TestDomain = "harmonic_relationships"
	DomainGeometricPatterns   TestDomain = "geometric_patterns"
)

// Difficulty grades a battery item
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// PatternTest is one battery item
// INVARIANTS:
// - ID unique across the battery
// - Expected holds the canonical answer in the form the checker matches
type PatternTest struct {
	ID         string     `json:"id"`
	Domain     TestDomain `json:"domain"`
	Difficulty Difficulty `json:"difficulty"`
	Prompt     string     `json:"prompt"`
	Expected   string     `json:"expected"`
}

var battery = []PatternTest{
	{"cal-1", DomainCalendarCalculation, DifficultyEasy,
		"What day of the week was July 4, 1776?", "Thursday"},
	{"cal-2", DomainCalendarCalculation, DifficultyMedium,
		"What day of the week was December 25, 1642?", "Sunday"},
	{"cal-3", DomainCalendarCalculation, DifficultyHard,
		"What day of the week will January 1, 2100 be?", "Friday"},
	{"prime-1", DomainPrimeRecognition, DifficultyEasy,
		"Is 97 a prime number?", "yes"},
	{"prime-2", DomainPrimeRecognition, DifficultyMedium,
		"Is 1147 a prime number?", "no"},
	{"prime-3", DomainPrimeRecognition, DifficultyHard,
		"What is the largest prime number below 10000?", "9973"},
	{"harm-1", DomainHarmonicRelations, DifficultyEasy,
		"A4 is 440 Hz. What frequency is A5, one octave above?", "880"},
	{"harm-2", DomainHarmonicRelations, DifficultyMedium,
		"What frequency ratio defines a perfect fifth?", "3:2"},
	{"harm-3", DomainHarmonicRelations, DifficultyHard,
		"In just intonation from A4 at 440 Hz, what frequency is E5?", "660"},
	{"geo-1", DomainGeometricPatterns, DifficultyEasy,
		"A regular polygon has interior angles of 144 degrees. How many sides does it have?", "10"},
	{"geo-2", DomainGeometricPatterns, DifficultyMedium,
		"To three decimal places, what is the value of the golden ratio?", "1.618"},
	{"geo-3", DomainGeometricPatterns, DifficultyHard,
		"A Sierpinski triangle starts as one triangle. How many shaded triangles remain after 5 subdivisions?", "243"},
}

// Battery returns the full test battery
func Battery() []PatternTest {
	out := make([]PatternTest, len(battery))
	copy(out, battery)
	return out
}

// BatteryByDomain returns the battery items for one domain in order
func BatteryByDomain(domain TestDomain) []PatternTest {
	var out []PatternTest
	for _, pt := range battery {
		if pt.Domain == domain {
			out = append(out, pt)
		}
	}
	return out
}

// TestDomains returns the battery domains in presentation order
func TestDomains() []TestDomain {
	return []TestDomain{
		DomainCalendarCalculation,
		DomainPrimeRecognition,
		DomainHarmonicRelations,
		DomainGeometricPatterns,
	}
}
