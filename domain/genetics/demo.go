package genetics

// DemoPanel is the seven-gene query panel the pipeline runs enrichment
// on when no caller-supplied gene list is given
func DemoPanel() []string {
	return []string{"CACNA1C", "SHANK3", "GABRA1", "SCN2A", "CNTNAP2", "MBP", "GRIN2B"}
}

// DemoVariants is the worked three-variant profile used by the pipeline
// genetics stage: a high-impact calcium channel hit with moderate
// scaffold and GABA hits, which lands the frequency axis on top
func DemoVariants() []Variant {
	return []Variant{
		{Gene: "CACNA1C", Impact: ImpactHigh},
		{Gene: "SHANK3", Impact: ImpactModerate},
		{Gene: "GABRA1", Impact: ImpactModerate},
	}
}
