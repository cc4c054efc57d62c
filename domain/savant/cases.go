package savant

import "time"

// OnsetLatency buckets how quickly savant abilities appeared after injury
type OnsetLatency string

const (
	OnsetImmediate OnsetLatency = "immediate"
	OnsetDays      OnsetLatency = "days"
	OnsetWeeks     OnsetLatency = "weeks"
	OnsetMonths    OnsetLatency = "months"
)

// TimelineEvent is one dated entry in a case history
type TimelineEvent struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// Case is one documented acquired-savant case history
// INVARIANTS:
// - Events are in chronological order
// - Onset matches the first event date
type Case struct {
	Name      string         `json:"name"`
	Injury    string         `json:"injury"`
	Onset     time.Time      `json:"onset"`
	Latency   OnsetLatency   `json:"latency"`
	Domains   []SavantDomain `json:"domains"`
	Events    []TimelineEvent `json:"events"`
	TuningNote string        `json:"tuning_note"`
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var caseRegistry = []Case{
	{
		Name:    "Jason Padgett",
		Injury:  "Assault with severe concussion",
		Onset:   date(2002, time.September, 13),
		Latency: OnsetImmediate,
		Domains: []SavantDomain{DomainMathematics, DomainArt},
		Events: []TimelineEvent{
			{date(2002, time.September, 13), "Attacked outside a karaoke bar; severe concussion"},
			{date(2002, time.September, 14), "Reports seeing geometric structure in everyday motion"},
			{date(2002, time.November, 1), "Begins compulsive freehand drawing of fractal forms"},
			{date(2005, time.June, 1), "Drawings identified as accurate mathematical constructions"},
			{date(2011, time.September, 1), "Enrolls in formal mathematics coursework"},
		},
		TuningNote: "Sudden geometric perception after left posterior injury, with no prior mathematical training",
	},
	{
		Name:    "Derek Amato",
		Injury:  "Head strike on pool bottom, serious concussion",
		Onset:   date(2006, time.October, 15),
		Latency: OnsetDays,
		Domains: []SavantDomain{DomainMusic},
		Events: []TimelineEvent{
			{date(2006, time.October, 15), "Dives into shallow pool, strikes head"},
			{date(2006, time.October, 19), "Sits at a friend's piano and plays fluently for hours"},
			{date(2006, time.November, 1), "Describes continuous stream of black-and-white note imagery"},
			{date(2007, time.March, 1), "Begins recording original compositions"},
			{date(2008, time.June, 1), "Documented as acquired musical savant with no prior training"},
		},
		TuningNote: "Musical fluency surfacing days after concussion, experienced as involuntary imagery",
	},
	{
		Name:    "Orlando Serrell",
		Injury:  "Struck by baseball on the left side of the head",
		Onset:   date(1979, time.August, 17),
		Latency: OnsetMonths,
		Domains: []SavantDomain{DomainCalendar},
		Events: []TimelineEvent{
			{date(1979, time.August, 17), "Hit by a baseball at age ten; headaches for days"},
			{date(1980, time.January, 1), "Notices effortless recall of weekdays for arbitrary dates"},
			{date(1980, time.June, 1), "Calendar calculation extends to weather recall for each day"},
			{date(1995, time.January, 1), "Formally tested; calculation accurate across decades"},
			{date(2002, time.January, 1), "Studied as calendar savant without autistic traits"},
		},
		TuningNote: "Calendar computation consolidating over months after a focal left-sided impact",
	},
	{
		Name:    "Tony Cicoria",
		Injury:  "Lightning strike with cardiac arrest",
		Onset:   date(1994, time.April, 1),
		Latency: OnsetWeeks,
		Domains: []SavantDomain{DomainMusic},
		Events: []TimelineEvent{
			{date(1994, time.April, 1), "Struck by lightning at a public telephone; briefly resuscitated"},
			{date(1994, time.April, 20), "Sudden craving to hear piano music"},
			{date(1994, time.May, 10), "Obsessive urge to play and compose begins"},
			{date(1995, time.January, 1), "Composing original piano works while practicing surgery"},
			{date(2008, time.January, 1), "Premieres his lightning sonata in public performance"},
		},
		TuningNote: "Musical obsession emerging weeks after diffuse anoxic injury",
	},
}

// Cases returns the acquired-savant case registry
func Cases() []Case {
	out := make([]Case, len(caseRegistry))
	copy(out, caseRegistry)
	return out
}

// padgettAbilities is the assessed per-domain ability profile for the
// Padgett case, the default subject of the individual profile figure
var padgettAbilities = map[SavantDomain]float64{
	DomainMathematics: 0.95,
	DomainArt:         0.90,
	DomainMechanical:  0.40,
	DomainLanguage:    0.20,
	DomainMusic:       0.15,
	DomainCalendar:    0.10,
}

// PadgettAbilities returns the Padgett ability profile
func PadgettAbilities() map[SavantDomain]float64 {
	out := make(map[SavantDomain]float64, len(padgettAbilities))
	for d, v := range padgettAbilities {
		out[d] = v
	}
	return out
}

// OnsetCategories returns the latency buckets in display order with the
// number of registry cases falling in each
func OnsetCategories() ([]OnsetLatency, map[OnsetLatency]int) {
	order := []OnsetLatency{OnsetImmediate, OnsetDays, OnsetWeeks, OnsetMonths}
	counts := make(map[OnsetLatency]int, len(order))
	for _, c := range caseRegistry {
		counts[c.Latency]++
	}
	return order, counts
}
