package genetics

// Impact grades a variant's predicted functional consequence
type Impact string

const (
	ImpactHigh     Impact = "high"
	ImpactModerate Impact = "moderate"
	ImpactLow      Impact = "low"
)

// impactMultipliers scale axis weights per variant. Unrecognized impact
// strings fall back to 0.5 rather than dropping the variant.
var impactMultipliers = map[Impact]float64{
	ImpactHigh:     1.0,
	ImpactModerate: 0.6,
	ImpactLow:      0.3,
}

const unknownImpactMultiplier = 0.5

// Multiplier returns the scoring multiplier for an impact grade
func (i Impact) Multiplier() float64 {
	if m, ok := impactMultipliers[i]; ok {
		return m
	}
	return unknownImpactMultiplier
}

// Variant is the minimal scoring input: a gene and an impact grade
type Variant struct {
	Gene   string `json:"gene"`
	Impact Impact `json:"impact"`
}

// VariantCategory groups genes by the mechanism a damaging variant
// perturbs
type VariantCategory struct {
	Name      string   `json:"name"`
	Genes     []string `json:"genes"`
	Mechanism string   `json:"mechanism"`
	Effect    string   `json:"effect"`
}

var variantCategories = []VariantCategory{
	{
		Name:      "channel_kinetics",
		Genes:     []string{"CACNA1C", "CACNA1D", "SCN1A", "SCN2A", "SCN8A", "KCNQ2", "KCNQ3", "HCN1"},
		Mechanism: "Altered activation and inactivation kinetics of voltage-gated channels",
		Effect:    "Shifts the intrinsic oscillation frequency of node populations",
	},
	{
		Name:      "synaptic_inhibition",
		Genes:     []string{"GABRA1", "GABRB2", "GABRG2", "SLC6A1", "GRIN2A", "GRIN2B", "GRIA1"},
		Mechanism: "Changed excitation/inhibition balance at the synapse",
		Effect:    "Loosens or tightens filtering of raw field input",
	},
	{
		Name:      "scaffold_adhesion",
		Genes:     []string{"SHANK3", "SHANK2", "NRXN1", "NRXN2", "NLGN3", "NLGN4X", "SYNGAP1"},
		Mechanism: "Synaptic scaffold and trans-synaptic adhesion remodeling",
		Effect:    "Alters cross-node integration of distributed detail",
	},
	{
		Name:      "myelination",
		Genes:     []string{"MBP", "PLP1", "CNP", "CNTNAP2", "CNTN1", "MAG"},
		Mechanism: "Myelin formation and axonal insulation changes",
		Effect:    "Changes conduction bandwidth between cortical regions",
	},
	{
		Name:      "sequence_learning",
		Genes:     []string{"FOXP2", "ATP2C2", "CMIP"},
		Mechanism: "Procedural sequence and language circuit development",
		Effect:    "Biases pattern extraction over declarative description",
	},
}

// VariantCategories returns the classification catalog
func VariantCategories() []VariantCategory {
	out := make([]VariantCategory, len(variantCategories))
	copy(out, variantCategories)
	return out
}

// CategoryForGene returns the first catalog category containing the gene
func CategoryForGene(gene string) (VariantCategory, bool) {
	for _, cat := range variantCategories {
		for _, g := range cat.Genes {
			if g == gene {
				return cat, true
			}
		}
	}
	return VariantCategory{}, false
}

// AnnotatedVariant is a VCF record enriched with tuning-model context
type AnnotatedVariant struct {
	Chrom          string  `json:"chrom"`
	Pos            int     `json:"pos"`
	Ref            string  `json:"ref"`
	Alt            string  `json:"alt"`
	Gene           string  `json:"gene"`
	Consequence    string  `json:"consequence"`
	Impact         Impact  `json:"impact"`
	GnomadAF       float64 `json:"gnomad_af"`
	CADDScore      float64 `json:"cadd_score"`
	Category       string  `json:"category,omitempty"`
	Interpretation string  `json:"interpretation,omitempty"`
}
