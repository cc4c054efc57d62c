// Package tms holds the stimulation study table behind the enhancement
// effect analysis: published experiments that transiently suppressed left
// frontotemporal activity in neurotypical volunteers and measured
// savant-like task gains.
package tms

// Study is one published stimulation experiment with pre/post task scores
// INVARIANTS:
// - N > 1, SDs > 0
// - Pre/Post are on the same task scale within a study
type Study struct {
	Label    string  `json:"label"`
	Task     string  `json:"task"`
	Protocol string  `json:"protocol"`
	N        int     `json:"n"`
	PreMean  float64 `json:"pre_mean"`
	PreSD    float64 `json:"pre_sd"`
	PostMean float64 `json:"post_mean"`
	PostSD   float64 `json:"post_sd"`
}

var studies = []Study{
	{
		Label:    "Snyder & Mitchell (1999)",
		Task:     "Naturalistic drawing",
		Protocol: "rTMS, left frontotemporal, 15 min",
		N:        12,
		PreMean:  2.5, PreSD: 1.2,
		PostMean: 5.8, PostSD: 1.5,
	},
	{
		Label:    "Snyder et al. (2003)",
		Task:     "Numerosity estimation",
		Protocol: "rTMS, left frontotemporal, 15 min",
		N:        12,
		PreMean:  45, PreSD: 12,
		PostMean: 65, PostSD: 15,
	},
	{
		Label:    "Young et al. (2004)",
		Task:     "Proofreading accuracy",
		Protocol: "rTMS, left frontotemporal",
		N:        8,
		PreMean:  62, PreSD: 18,
		PostMean: 78, PostSD: 14,
	},
	{
		Label:    "Chi & Snyder (2011)",
		Task:     "Insight problem solving",
		Protocol: "tDCS, cathodal left / anodal right anterior temporal, 10 min",
		N:        33,
		PreMean:  20, PreSD: 25,
		PostMean: 60, PostSD: 30,
	},
	{
		Label:    "Chi & Snyder (2012)",
		Task:     "Matchstick arithmetic",
		Protocol: "tDCS, cathodal left / anodal right anterior temporal",
		N:        22,
		PreMean:  5, PreSD: 10,
		PostMean: 40, PostSD: 25,
	},
}

// Studies returns the study table
func Studies() []Study {
	out := make([]Study, len(studies))
	copy(out, studies)
	return out
}
