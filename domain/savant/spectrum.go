package savant

// TuningProfile places one phenotype on the field-access spectrum:
// FieldBreadth is how much of the raw perceptual field reaches awareness
// filtered and summarized (high = typical compression), NodeDepth is how
// directly single-domain detail is accessed.
type TuningProfile struct {
	Label        string  `json:"label"`
	FieldBreadth float64 `json:"field_breadth"`
	NodeDepth    float64 `json:"node_depth"`
}

var tuningProfiles = []TuningProfile{
	{"Typical", 0.70, 0.40},
	{"Autism, non-savant", 0.40, 0.50},
	{"Autistic savant", 0.25, 0.85},
	{"Acquired savant", 0.20, 0.90},
	{"Prodigious savant", 0.15, 0.95},
}

// TuningProfiles returns the spectrum table, ordered from typical to
// prodigious
func TuningProfiles() []TuningProfile {
	out := make([]TuningProfile, len(tuningProfiles))
	copy(out, tuningProfiles)
	return out
}
