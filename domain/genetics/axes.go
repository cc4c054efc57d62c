// Package genetics holds the gene-level tables behind the node tuning
// model: per-axis gene weights, the pathway catalog used for enrichment,
// candidate gene annotations, and variant classification. The model reads
// each neural node as a tuned oscillator; genes shift one of four tuning
// axes and a variant profile moves the predicted skill domain with the
// dominant axis.
package genetics

import "sort"

// Axis names one node tuning dimension
type Axis string

const (
	// AxisFrequency captures intrinsic oscillation rate (voltage-gated channel kinetics)
	AxisFrequency Axis = "frequency"
	// AxisFiltering captures inhibitory gating of field input (GABA / NMDA balance)
	AxisFiltering Axis = "filtering"
	// AxisIntegration captures cross-node synaptic coupling (scaffold and adhesion genes)
	AxisIntegration Axis = "integration"
	// AxisBandwidth captures conduction capacity between regions (myelination)
	AxisBandwidth Axis = "bandwidth"
)

// Axes returns the four axes in canonical table order
func Axes() []Axis {
	return []Axis{AxisFrequency, AxisFiltering, AxisIntegration, AxisBandwidth}
}

// TieBreakOrder ranks axes for dominance ties. Earlier wins.
func TieBreakOrder() []Axis {
	return []Axis{AxisFrequency, AxisIntegration, AxisBandwidth, AxisFiltering}
}

// AxisGene is one gene's contribution to an axis
// INVARIANTS:
// - Weight in (0, 1]
// - A gene appears on exactly one axis
type AxisGene struct {
	Weight    float64 `json:"weight"`
	Direction string  `json:"direction"`
}

var tuningGenes = map[Axis]map[string]AxisGene{
	AxisFrequency: {
		"CACNA1C": {0.90, "L-type calcium kinetics shift oscillatory gain"},
		"SCN1A":   {0.85, "Sodium channel availability sets firing ceiling"},
		"SCN2A":   {0.85, "Sodium channel kinetics shape spike initiation"},
		"SCN8A":   {0.75, "Persistent sodium current raises intrinsic rate"},
		"CACNA1D": {0.70, "Low-threshold calcium entry biases rhythmicity"},
		"HCN1":    {0.70, "Pacemaker current tunes resonance frequency"},
		"KCNQ2":   {0.60, "M-current brakes repetitive firing"},
		"KCNQ3":   {0.60, "M-current partner subunit"},
	},
	AxisFiltering: {
		"GABRA1": {0.90, "Principal GABA-A subunit gating field input"},
		"GRIN2A": {0.85, "NMDA subunit switching coincidence windows"},
		"GRIN2B": {0.85, "Developmental NMDA subunit extending integration windows"},
		"SLC6A1": {0.80, "GABA reuptake sets inhibitory tone"},
		"GABRB2": {0.80, "GABA-A beta subunit"},
		"GABRG2": {0.75, "GABA-A gamma subunit, synaptic clustering"},
		"GRIA1":  {0.70, "AMPA subunit scaling fast excitation"},
	},
	AxisIntegration: {
		"SHANK3":  {0.95, "Postsynaptic scaffold hub for cross-node coupling"},
		"NRXN1":   {0.90, "Presynaptic adhesion organizing trans-synaptic contact"},
		"SYNGAP1": {0.85, "Synaptic Ras signaling gating plasticity"},
		"SHANK2":  {0.80, "Scaffold paralog"},
		"NLGN3":   {0.75, "Postsynaptic adhesion partner"},
		"NRXN2":   {0.70, "Adhesion paralog"},
		"NLGN4X":  {0.70, "X-linked adhesion partner"},
	},
	AxisBandwidth: {
		"CNTNAP2": {0.95, "Juxtaparanodal clustering organizing conduction"},
		"MBP":     {0.90, "Core myelin structural protein"},
		"PLP1":    {0.85, "Major CNS myelin proteolipid"},
		"CNP":     {0.70, "Oligodendrocyte enzyme supporting axon ensheathment"},
		"MAG":     {0.70, "Myelin-axon adhesion"},
		"CNTN1":   {0.60, "Axonal contactin partner"},
	},
}

// AxisWeight looks a gene up across the axis tables. ok is false for
// genes outside the tuning model.
func AxisWeight(gene string) (Axis, float64, bool) {
	for _, axis := range Axes() {
		if ag, found := tuningGenes[axis][gene]; found {
			return axis, ag.Weight, true
		}
	}
	return "", 0, false
}

// AxisGenes returns the gene table for one axis
func AxisGenes(axis Axis) map[string]AxisGene {
	src := tuningGenes[axis]
	out := make(map[string]AxisGene, len(src))
	for gene, ag := range src {
		out[gene] = ag
	}
	return out
}

// KnownGenes returns every tuning-model gene, sorted
func KnownGenes() []string {
	var genes []string
	for _, axis := range Axes() {
		for gene := range tuningGenes[axis] {
			genes = append(genes, gene)
		}
	}
	sort.Strings(genes)
	return genes
}
