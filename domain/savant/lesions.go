package savant

// BrodmannRegion records how often a cortical region is implicated across
// acquired-savant lesion reports
type BrodmannRegion struct {
	Area        string  `json:"area"`
	Involvement float64 `json:"involvement"` // fraction of mapped cases implicating the region
	Function    string  `json:"function"`
	TuningNote  string  `json:"tuning_note"`
}

var brodmannInvolvement = []BrodmannRegion{
	{"BA 21/22", 0.72, "Temporal / language association", "Loss of semantic filtering over raw percepts"},
	{"BA 39/40", 0.55, "Angular and supramarginal gyri", "Cross-modal integration released toward literal detail"},
	{"BA 7", 0.48, "Superior parietal lobule", "Spatial field access without schematic compression"},
	{"BA 9/10", 0.45, "Dorsolateral / frontopolar executive", "Reduced top-down narrative control"},
	{"BA 37", 0.38, "Fusiform / occipitotemporal", "Object form detail surfacing uncompressed"},
	{"BA 44/45", 0.32, "Inferior frontal (Broca)", "Weakened propositional re-description"},
	{"BA 6", 0.28, "Premotor cortex", "Procedural fluency decoupled from deliberation"},
	{"BA 17/18", 0.25, "Primary / secondary visual", "Earlier visual codes reaching awareness"},
}

// BrodmannInvolvement returns the region involvement table, ordered by
// involvement descending
func BrodmannInvolvement() []BrodmannRegion {
	out := make([]BrodmannRegion, len(brodmannInvolvement))
	copy(out, brodmannInvolvement)
	return out
}

// Lateralization is the hemispheric split across mapped lesion cases
type Lateralization struct {
	Side       string  `json:"side"`
	Proportion float64 `json:"proportion"`
}

var lateralizationSplit = []Lateralization{
	{"Left", 0.78},
	{"Right", 0.15},
	{"Bilateral", 0.07},
}

// LateralizationSplit returns the hemispheric proportions
func LateralizationSplit() []Lateralization {
	out := make([]Lateralization, len(lateralizationSplit))
	copy(out, lateralizationSplit)
	return out
}

// LesionSiteCount is a site-level case tally feeding the laterality test
type LesionSiteCount struct {
	Site       string `json:"site"`
	Hemisphere string `json:"hemisphere"` // "left" or "right"
	Cases      int    `json:"cases"`
}

var lesionSiteCounts = []LesionSiteCount{
	{"Left temporal", "left", 15},
	{"Left frontotemporal", "left", 8},
	{"Left parietal", "left", 5},
	{"Right hemisphere (any site)", "right", 2},
}

// LesionSiteCounts returns the site tally table
func LesionSiteCounts() []LesionSiteCount {
	out := make([]LesionSiteCount, len(lesionSiteCounts))
	copy(out, lesionSiteCounts)
	return out
}

// HemisphereCounts sums the site tallies into left and right case counts
func HemisphereCounts() (left, right int) {
	for _, s := range lesionSiteCounts {
		switch s.Hemisphere {
		case "left":
			left += s.Cases
		case "right":
			right += s.Cases
		}
	}
	return left, right
}

// CaseLesion ties a named case to its lesion localization
type CaseLesion struct {
	Case    string `json:"case"`
	Site    string `json:"site"`
	Areas   string `json:"areas"`
	Outcome string `json:"outcome"`
}

var caseLesions = []CaseLesion{
	{"Jason Padgett", "Left posterior parietal", "BA 7, BA 39/40", "Mathematical / geometric"},
	{"Derek Amato", "Left temporal", "BA 21/22", "Musical"},
	{"Orlando Serrell", "Left temporal", "BA 21/22", "Calendar / autobiographical memory"},
	{"Alonzo Clemons", "Left frontotemporal", "BA 21/22, BA 44/45", "Sculptural / mechanical"},
	{"FTD series (Miller)", "Left anterior temporal", "BA 21/22, BA 38", "Visual art emerging with degeneration"},
}

// CaseLesions returns the case-to-lesion localization table
func CaseLesions() []CaseLesion {
	out := make([]CaseLesion, len(caseLesions))
	copy(out, caseLesions)
	return out
}
