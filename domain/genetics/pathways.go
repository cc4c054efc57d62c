package genetics

// Pathway names one functional category in the enrichment catalog
type Pathway string

const (
	PathwaySynapticTransmission  Pathway = "synaptic_transmission"
	PathwayIonChannels           Pathway = "ion_channels"
	PathwayMyelination           Pathway = "myelination"
	PathwayNeuronalDevelopment   Pathway = "neuronal_development"
	PathwayExcitationInhibition  Pathway = "excitation_inhibition"
	PathwaySensoryProcessing     Pathway = "sensory_processing"
)

// PathwayInfo describes one catalog entry
type PathwayInfo struct {
	GOTerms     []string `json:"go_terms"`
	TuningRole  string   `json:"tuning_role"`
	Description string   `json:"description"`
}

var pathwayCatalog = map[Pathway]PathwayInfo{
	PathwaySynapticTransmission: {
		GOTerms:     []string{"GO:0007268", "GO:0099536", "GO:0050804"},
		TuningRole:  "Cross-node integration strength",
		Description: "Chemical synaptic transmission and its modulation",
	},
	PathwayIonChannels: {
		GOTerms:     []string{"GO:0005216", "GO:0034765", "GO:0086010"},
		TuningRole:  "Intrinsic node frequency",
		Description: "Voltage-gated channel activity and membrane excitability",
	},
	PathwayMyelination: {
		GOTerms:     []string{"GO:0042552", "GO:0008366", "GO:0043209"},
		TuningRole:  "Inter-region conduction bandwidth",
		Description: "Myelin formation and axon ensheathment",
	},
	PathwayNeuronalDevelopment: {
		GOTerms:     []string{"GO:0048666", "GO:0007409", "GO:0016358"},
		TuningRole:  "Circuit topology during development",
		Description: "Neuron differentiation, axonogenesis, dendrite growth",
	},
	PathwayExcitationInhibition: {
		GOTerms:     []string{"GO:0060078", "GO:0098982", "GO:1904862"},
		TuningRole:  "Field input filtering",
		Description: "Inhibitory synapse assembly and postsynaptic potential regulation",
	},
	PathwaySensoryProcessing: {
		GOTerms:     []string{"GO:0007600", "GO:0050877", "GO:0050954"},
		TuningRole:  "Raw field access fidelity",
		Description: "Sensory perception and early perceptual processing",
	},
}

// PathwayCatalog returns the full catalog
func PathwayCatalog() map[Pathway]PathwayInfo {
	out := make(map[Pathway]PathwayInfo, len(pathwayCatalog))
	for p, info := range pathwayCatalog {
		out[p] = info
	}
	return out
}

// Pathways returns catalog keys in stable presentation order
func Pathways() []Pathway {
	return []Pathway{
		PathwaySynapticTransmission,
		PathwayIonChannels,
		PathwayMyelination,
		PathwayNeuronalDevelopment,
		PathwayExcitationInhibition,
		PathwaySensoryProcessing,
	}
}

// CandidateGene ties a high-confidence autism gene to its pathway with
// the prediction the tuning model makes for carriers
type CandidateGene struct {
	Gene       string  `json:"gene"`
	Pathway    Pathway `json:"pathway"`
	Function   string  `json:"function"`
	AutismLink string  `json:"autism_link"`
	Prediction string  `json:"prediction"`
}

var candidateGenes = []CandidateGene{
	{"CACNA1C", PathwayIonChannels, "L-type voltage-gated calcium channel alpha subunit",
		"Timothy syndrome; common-variant association", "Raised node frequency; musical or numeric fluency"},
	{"SHANK3", PathwaySynapticTransmission, "Postsynaptic density scaffold",
		"Phelan-McDermid syndrome; recurrent de novo loss", "Reduced integration; isolated deep skills"},
	{"NRXN1", PathwaySynapticTransmission, "Presynaptic adhesion molecule",
		"Recurrent deletions in autism cohorts", "Weakened cross-node coupling"},
	{"GRIN2B", PathwaySynapticTransmission, "NMDA receptor GluN2B subunit",
		"De novo missense and truncating variants", "Extended integration windows; detail retention"},
	{"SCN2A", PathwayIonChannels, "Nav1.2 sodium channel",
		"One of the most recurrent autism genes", "Shifted firing dynamics; timing-based skills"},
	{"CNTNAP2", PathwayMyelination, "Neurexin-family juxtaparanodal protein",
		"Cortical dysplasia-focal epilepsy; language delay", "Altered conduction; uneven domain bandwidth"},
	{"MBP", PathwayMyelination, "Myelin basic protein",
		"Dysmyelination phenotypes", "Bandwidth constraints concentrating skill expression"},
	{"GABRA1", PathwayExcitationInhibition, "GABA-A receptor alpha-1 subunit",
		"Epilepsy and autism overlap", "Loosened filtering; raw field access"},
}

// CandidateGenes returns the candidate table
func CandidateGenes() []CandidateGene {
	out := make([]CandidateGene, len(candidateGenes))
	copy(out, candidateGenes)
	return out
}

// CandidatePathway maps a gene symbol to its catalog pathway
func CandidatePathway(gene string) (Pathway, bool) {
	for _, cg := range candidateGenes {
		if cg.Gene == gene {
			return cg.Pathway, true
		}
	}
	return "", false
}

// PathwayCandidateCount counts candidate genes assigned to a pathway
func PathwayCandidateCount(p Pathway) int {
	n := 0
	for _, cg := range candidateGenes {
		if cg.Pathway == p {
			n++
		}
	}
	return n
}
