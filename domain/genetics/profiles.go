package genetics

// DomainIndeterminate is the predicted domain when no axis carries signal
const DomainIndeterminate = "indeterminate"

// axisDomains maps a dominant tuning axis to the skill domain pairing it
// predicts
var axisDomains = map[Axis]string{
	AxisFrequency:   "Music/Mathematics",
	AxisIntegration: "Mathematics/Calendar",
	AxisBandwidth:   "Art/Mechanical",
	AxisFiltering:   "Calendar/Memory",
}

// DomainForAxis returns the predicted skill domain for a dominant axis
func DomainForAxis(axis Axis) string {
	if d, ok := axisDomains[axis]; ok {
		return d
	}
	return DomainIndeterminate
}

// DomainGeneProfile summarizes the gene signature expected behind one
// predicted domain, for report narration
type DomainGeneProfile struct {
	Domain         string   `json:"domain"`
	KeyAxis        Axis     `json:"key_axis"`
	SignatureGenes []string `json:"signature_genes"`
	Rationale      string   `json:"rationale"`
}

var domainGeneProfiles = []DomainGeneProfile{
	{
		Domain:         "Music/Mathematics",
		KeyAxis:        AxisFrequency,
		SignatureGenes: []string{"CACNA1C", "SCN1A", "HCN1"},
		Rationale:      "Fine temporal resolution favors harmonic and numeric structure",
	},
	{
		Domain:         "Mathematics/Calendar",
		KeyAxis:        AxisIntegration,
		SignatureGenes: []string{"SHANK3", "NRXN1", "SYNGAP1"},
		Rationale:      "Altered coupling isolates exact symbolic subsystems",
	},
	{
		Domain:         "Art/Mechanical",
		KeyAxis:        AxisBandwidth,
		SignatureGenes: []string{"CNTNAP2", "MBP", "PLP1"},
		Rationale:      "Conduction changes privilege spatial detail channels",
	},
	{
		Domain:         "Calendar/Memory",
		KeyAxis:        AxisFiltering,
		SignatureGenes: []string{"GABRA1", "GRIN2B", "SLC6A1"},
		Rationale:      "Loosened gating exposes raw episodic and cyclic structure",
	},
}

// DomainGeneProfiles returns the profile table
func DomainGeneProfiles() []DomainGeneProfile {
	out := make([]DomainGeneProfile, len(domainGeneProfiles))
	copy(out, domainGeneProfiles)
	return out
}
