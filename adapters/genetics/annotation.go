package genetics

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"savantfnc/domain/genetics"
	"savantfnc/internal/config"
	"savantfnc/internal/errors"
)

// VCF INFO keys the annotator reads
const (
	infoGene        = "GENE"
	infoConsequence = "CONSEQUENCE"
	infoImpact      = "IMPACT"
	infoAF          = "AF"
	infoCADD        = "CADD"
)

// CADDUnscored marks a variant carrying no CADD annotation. The minimum
// score filter does not apply to unscored variants.
const CADDUnscored = -1

// DemoVCF is a small annotated sample in the expected INFO layout. The
// pipeline's genetics stage runs it through the full annotation path
// when no variant file is supplied.
const DemoVCF = `##fileformat=VCFv4.2
##INFO=<ID=GENE,Number=1,Type=String,Description="Gene symbol">
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO
12	2345678	.	G	A	50	PASS	GENE=CACNA1C;CONSEQUENCE=missense_variant;IMPACT=HIGH;AF=0.0001;CADD=24.1
22	51113070	.	C	T	48	PASS	GENE=SHANK3;CONSEQUENCE=missense_variant;IMPACT=MODERATE;AF=0.0005;CADD=22.8
5	161274563	.	A	G	45	PASS	GENE=GABRA1;CONSEQUENCE=missense_variant;IMPACT=MODERATE;AF=0.0002
2	166152389	.	T	C	44	PASS	GENE=SCN2A;CONSEQUENCE=synonymous_variant;IMPACT=LOW;AF=0.0003;CADD=12.3
18	74690789	.	G	C	40	PASS	GENE=MBP;CONSEQUENCE=missense_variant;IMPACT=MODERATE;AF=0.02;CADD=19.5
2	179424038	.	C	G	38	PASS	GENE=TTN;CONSEQUENCE=missense_variant;IMPACT=LOW;AF=0.05;CADD=8.0
`

// ParseVCFLine reads one VCF data line into an annotated variant. Header
// and blank lines return ok=false with no error; malformed data lines
// return an error.
func ParseVCFLine(line string) (genetics.AnnotatedVariant, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return genetics.AnnotatedVariant{}, false, nil
	}

	fields := strings.Split(trimmed, "\t")
	if len(fields) < 8 {
		return genetics.AnnotatedVariant{}, false,
			errors.Newf(errors.CodeInvalidInput, "vcf line has %d fields, want at least 8", len(fields))
	}

	pos, err := strconv.Atoi(fields[1])
	if err != nil {
		return genetics.AnnotatedVariant{}, false,
			errors.Newf(errors.CodeInvalidInput, "vcf position %q is not an integer", fields[1])
	}

	v := genetics.AnnotatedVariant{
		Chrom:     fields[0],
		Pos:       pos,
		Ref:       fields[3],
		Alt:       fields[4],
		CADDScore: CADDUnscored,
	}
	for _, kv := range strings.Split(fields[7], ";") {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		switch key {
		case infoGene:
			v.Gene = value
		case infoConsequence:
			v.Consequence = value
		case infoImpact:
			v.Impact = genetics.Impact(strings.ToLower(value))
		case infoAF:
			if af, err := strconv.ParseFloat(value, 64); err == nil {
				v.GnomadAF = af
			}
		case infoCADD:
			if cadd, err := strconv.ParseFloat(value, 64); err == nil {
				v.CADDScore = cadd
			}
		}
	}
	return Annotate(v), true, nil
}

// ParseVCF reads a whole VCF stream, skipping headers and blank lines
func ParseVCF(r io.Reader) ([]genetics.AnnotatedVariant, error) {
	scanner := bufio.NewScanner(r)
	var variants []genetics.AnnotatedVariant
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		v, ok, err := ParseVCFLine(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "vcf line %d", lineNo)
		}
		if !ok {
			continue
		}
		variants = append(variants, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading vcf stream")
	}
	return variants, nil
}

// Annotate fills Category and Interpretation from the variant category
// tables. Variants outside the tables come back unchanged.
func Annotate(v genetics.AnnotatedVariant) genetics.AnnotatedVariant {
	cat, ok := genetics.CategoryForGene(v.Gene)
	if !ok {
		return v
	}
	v.Category = cat.Name
	v.Interpretation = fmt.Sprintf("%s. %s.", cat.Mechanism, cat.Effect)
	return v
}

// FilterNeuralVariants keeps variants that are rare, damaging, and
// inside the tuning model: CADD >= MinCADD (unscored variants pass),
// gnomAD AF <= MaxGnomadAF, and a mapped category.
func FilterNeuralVariants(cfg config.GeneticsConfig, variants []genetics.AnnotatedVariant) []genetics.AnnotatedVariant {
	kept := make([]genetics.AnnotatedVariant, 0, len(variants))
	for _, v := range variants {
		v = Annotate(v)
		if v.Category == "" {
			continue
		}
		if v.CADDScore >= 0 && v.CADDScore < cfg.MinCADD {
			continue
		}
		if v.GnomadAF > cfg.MaxGnomadAF {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// VariantLine is one reported variant in display form
type VariantLine struct {
	Variant        string          `json:"variant"`
	Gene           string          `json:"gene"`
	Consequence    string          `json:"consequence"`
	Impact         genetics.Impact `json:"impact"`
	Interpretation string          `json:"interpretation"`
}

// VariantReport summarizes a filtered variant set
// INVARIANTS:
// - Relevant == sum over CategoryCounts
// - DominantCategory holds the largest count; catalog order breaks ties
type VariantReport struct {
	Total            int                      `json:"total"`
	Relevant         int                      `json:"relevant"`
	CategoryCounts   map[string]int           `json:"category_counts"`
	ByCategory       map[string][]VariantLine `json:"by_category"`
	DominantCategory string                   `json:"dominant_category,omitempty"`
	Predictions      []string                 `json:"predictions,omitempty"`
	Interpretation   string                   `json:"interpretation"`
}

// BuildVariantReport annotates, filters, and groups a raw variant set
// for the genetics report section
func BuildVariantReport(cfg config.GeneticsConfig, variants []genetics.AnnotatedVariant) VariantReport {
	relevant := FilterNeuralVariants(cfg, variants)

	report := VariantReport{
		Total:          len(variants),
		Relevant:       len(relevant),
		CategoryCounts: make(map[string]int),
		ByCategory:     make(map[string][]VariantLine),
	}
	for _, v := range relevant {
		line := VariantLine{
			Variant:        fmt.Sprintf("%s:%d %s>%s", v.Chrom, v.Pos, v.Ref, v.Alt),
			Gene:           v.Gene,
			Consequence:    v.Consequence,
			Impact:         v.Impact,
			Interpretation: v.Interpretation,
		}
		report.CategoryCounts[v.Category]++
		report.ByCategory[v.Category] = append(report.ByCategory[v.Category], line)
	}

	if report.Relevant == 0 {
		report.Interpretation = "No variants survive the rarity and deleteriousness filters; the tuning model makes no call on this sample."
		return report
	}

	var dominant genetics.VariantCategory
	best := 0
	for _, cat := range genetics.VariantCategories() {
		n := report.CategoryCounts[cat.Name]
		if n > best {
			best = n
			dominant = cat
		}
		if n > 0 {
			report.Predictions = append(report.Predictions, categoryPrediction(cat, n))
		}
	}
	report.DominantCategory = dominant.Name
	report.Interpretation = fmt.Sprintf(
		"%d of %d variants land in tuning-relevant genes, led by %s (%d). %s, which %s.",
		report.Relevant, report.Total, dominant.Name, best,
		dominant.Mechanism, strings.ToLower(dominant.Effect[:1])+dominant.Effect[1:])
	return report
}

func categoryPrediction(cat genetics.VariantCategory, n int) string {
	switch cat.Name {
	case "channel_kinetics":
		return fmt.Sprintf("%d channel kinetics variants: expect shifted node oscillation frequency and timing-locked skills.", n)
	case "synaptic_inhibition":
		return fmt.Sprintf("%d synaptic inhibition variants: expect loosened input filtering and raw detail access.", n)
	case "scaffold_adhesion":
		return fmt.Sprintf("%d scaffold and adhesion variants: expect altered cross-node integration and isolated deep skills.", n)
	case "myelination":
		return fmt.Sprintf("%d myelination variants: expect changed conduction bandwidth and uneven domain expression.", n)
	case "sequence_learning":
		return fmt.Sprintf("%d sequence learning variants: expect procedural pattern extraction over declarative description.", n)
	}
	return fmt.Sprintf("%d variants in %s.", n, cat.Name)
}
