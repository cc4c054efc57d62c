// Package savant holds the observational tables the analysis pipeline runs
// against: skill domain prevalence, acquired-savant case histories, and
// lesion localization data. Tables are package-private; accessors return
// defensive copies so callers cannot mutate the canonical records.
package savant

// SavantDomain names one of the six classically reported skill domains
type SavantDomain string

const (
	DomainMusic       SavantDomain = "Music"
	DomainArt         SavantDomain = "Art"
	DomainCalendar    SavantDomain = "Calendar"
	DomainMathematics SavantDomain = "Mathematics"
	DomainMechanical  SavantDomain = "Mechanical"
	DomainLanguage    SavantDomain = "Language"
)

// DomainShare is one row of the skill domain distribution
// INVARIANTS:
// - Share in (0, 1]
// - Shares across the full table sum to 1.0
type DomainShare struct {
	Domain          SavantDomain `json:"domain"`
	Share           float64      `json:"share"`
	TypicalFeatures string       `json:"typical_features"`
}

// domainDistribution aggregates reported savant skill domains across
// published case series. Ordered by share, descending.
var domainDistribution = []DomainShare{
	{DomainMusic, 0.32, "Harmonic ratios, absolute pitch, temporal patterns"},
	{DomainArt, 0.29, "Spatial relationships, perspective, eidetic detail"},
	{DomainCalendar, 0.18, "Cyclical structure, modular arithmetic over dates"},
	{DomainMathematics, 0.12, "Primes, factorization, rapid mental arithmetic"},
	{DomainMechanical, 0.06, "Spatial mechanics, assembly from observation"},
	{DomainLanguage, 0.03, "Syntactic structure, phonetic pattern acquisition"},
}

// Distribution returns the domain share table
func Distribution() []DomainShare {
	out := make([]DomainShare, len(domainDistribution))
	copy(out, domainDistribution)
	return out
}

// Shares returns the distribution as a domain-keyed map
func Shares() map[SavantDomain]float64 {
	out := make(map[SavantDomain]float64, len(domainDistribution))
	for _, row := range domainDistribution {
		out[row.Domain] = row.Share
	}
	return out
}

// Domains returns the six domains in table order
func Domains() []SavantDomain {
	out := make([]SavantDomain, 0, len(domainDistribution))
	for _, row := range domainDistribution {
		out = append(out, row.Domain)
	}
	return out
}
