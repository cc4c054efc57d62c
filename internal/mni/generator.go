// Package mni generates synthetic whole-exome variant tables shaped
// like the Montreal Neurological Institute savant WES series. The MNI
// dataset itself is access-restricted; these tables stand in for it so
// the annotation path can run end to end. Output round-trips through
// the pipeline's CSV, XLSX, and VCF readers.
package mni

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/xuri/excelize/v2"

	genadapter "savantfnc/adapters/genetics"
	"savantfnc/domain/genetics"
)

// Dataset is the in-memory form of one generated variant table.
// Samples and Variants run parallel to Rows.
type Dataset struct {
	Headers []string
	Rows    [][]string // formatted strings, ready for CSV/XLSX

	Exomes   []string // carrier IDs in generation order
	Samples  []string // carrier ID per row
	Variants []genetics.AnnotatedVariant
}

type Config struct {
	Exomes           int // sample count; the MNI savant series has 15
	VariantsPerExome int // rare coding calls surviving the pre-filter
	Seed             int64

	// TuningFraction is the share of calls drawn from the candidate
	// gene catalog; the rest land in background genes.
	TuningFraction float64

	// ChannelBias multiplies the draw weight of channel kinetics genes
	// inside the tuning share.
	ChannelBias float64
}

func DefaultConfig() Config {
	return Config{
		Exomes:           15,
		VariantsPerExome: 40,
		Seed:             42,
		TuningFraction:   0.30,
		ChannelBias:      2.0,
	}
}

type locus struct {
	chrom string
	start int
	span  int
}

// geneLoci places every catalog gene plus the background set at a
// plausible GRCh37 coordinate range.
var geneLoci = map[string]locus{
	"CACNA1C": {"12", 2_162_000, 646_000},
	"CACNA1D": {"3", 53_529_000, 317_000},
	"SCN1A":   {"2", 166_845_000, 150_000},
	"SCN2A":   {"2", 166_095_000, 154_000},
	"SCN8A":   {"12", 51_984_000, 222_000},
	"KCNQ2":   {"20", 62_037_000, 72_000},
	"KCNQ3":   {"8", 133_133_000, 360_000},
	"HCN1":    {"5", 45_259_000, 470_000},

	"GABRA1": {"5", 161_274_000, 53_000},
	"GABRB2": {"5", 160_715_000, 254_000},
	"GABRG2": {"5", 161_494_000, 88_000},
	"SLC6A1": {"3", 11_034_000, 47_000},
	"GRIN2A": {"16", 9_852_000, 430_000},
	"GRIN2B": {"12", 13_714_000, 419_000},
	"GRIA1":  {"5", 152_870_000, 320_000},

	"SHANK3":  {"22", 51_113_000, 60_000},
	"SHANK2":  {"11", 70_313_000, 622_000},
	"NRXN1":   {"2", 50_145_000, 1_110_000},
	"NRXN2":   {"11", 64_373_000, 117_000},
	"NLGN3":   {"X", 70_364_000, 26_000},
	"NLGN4X":  {"X", 5_808_000, 338_000},
	"SYNGAP1": {"6", 33_387_000, 34_000},

	"MBP":     {"18", 74_690_000, 154_000},
	"PLP1":    {"X", 103_031_000, 16_000},
	"CNP":     {"17", 40_119_000, 13_000},
	"CNTNAP2": {"7", 145_813_000, 2_300_000},
	"CNTN1":   {"12", 41_086_000, 380_000},
	"MAG":     {"19", 35_783_000, 16_000},

	"FOXP2":  {"7", 114_055_000, 607_000},
	"ATP2C2": {"16", 84_402_000, 97_000},
	"CMIP":   {"16", 81_477_000, 265_000},

	"TTN":   {"2", 179_390_000, 280_000},
	"MUC16": {"19", 8_959_000, 179_000},
	"OBSCN": {"1", 228_395_000, 171_000},
	"AHNAK": {"11", 62_203_000, 113_000},
	"FLG":   {"1", 152_274_000, 23_000},
	"PLEC":  {"8", 144_989_000, 62_000},
	"SYNE1": {"6", 152_442_000, 516_000},
	"USH2A": {"1", 215_796_000, 800_000},
	"DNAH5": {"5", 13_690_000, 305_000},
	"LRP1":  {"12", 57_522_000, 85_000},
	"PKD1":  {"16", 2_138_000, 47_000},
	"APOB":  {"2", 21_224_000, 43_000},
}

// backgroundGenes are large or polymorphic genes that dominate WES
// noise; none sit in the tuning catalog.
var backgroundGenes = []string{
	"TTN", "MUC16", "OBSCN", "AHNAK", "FLG", "PLEC",
	"SYNE1", "USH2A", "DNAH5", "LRP1", "PKD1", "APOB",
}

var consequencesByImpact = map[genetics.Impact][]string{
	genetics.ImpactHigh:     {"stop_gained", "frameshift_variant", "splice_donor_variant"},
	genetics.ImpactModerate: {"missense_variant", "inframe_deletion"},
	genetics.ImpactLow:      {"synonymous_variant", "splice_region_variant", "intron_variant"},
}

const bases = "ACGT"

func Generate(cfg Config) (*Dataset, error) {
	if cfg.Exomes <= 0 {
		return nil, fmt.Errorf("exomes must be > 0")
	}
	if cfg.VariantsPerExome <= 0 {
		return nil, fmt.Errorf("variants per exome must be > 0")
	}
	if cfg.TuningFraction < 0 || cfg.TuningFraction > 1 {
		return nil, fmt.Errorf("tuning fraction must be in [0, 1]")
	}
	if cfg.ChannelBias <= 0 {
		return nil, fmt.Errorf("channel bias must be > 0")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	ds := &Dataset{
		Headers: []string{
			"sample", "chrom", "pos", "ref", "alt",
			"gene", "consequence", "impact", "gnomad_af", "cadd",
		},
	}

	jitter := cfg.VariantsPerExome / 5
	for s := 0; s < cfg.Exomes; s++ {
		sample := fmt.Sprintf("MNI-%02d", s+1)
		ds.Exomes = append(ds.Exomes, sample)

		n := cfg.VariantsPerExome - jitter + rng.Intn(2*jitter+1)
		for i := 0; i < n; i++ {
			v := drawVariant(rng, cfg)
			ds.Samples = append(ds.Samples, sample)
			ds.Variants = append(ds.Variants, v)
			ds.Rows = append(ds.Rows, formatRow(sample, v))
		}
	}
	return ds, nil
}

func drawVariant(rng *rand.Rand, cfg Config) genetics.AnnotatedVariant {
	tuning := rng.Float64() < cfg.TuningFraction

	var gene string
	if tuning {
		gene = pickTuningGene(rng, cfg.ChannelBias)
	} else {
		gene = backgroundGenes[rng.Intn(len(backgroundGenes))]
	}
	loc := geneLoci[gene]

	impact := drawImpact(rng, tuning)
	options := consequencesByImpact[impact]
	consequence := options[rng.Intn(len(options))]

	refIdx := rng.Intn(len(bases))
	ref := string(bases[refIdx])
	alt := string(bases[(refIdx+1+rng.Intn(len(bases)-1))%len(bases)])
	if consequence == "frameshift_variant" || consequence == "inframe_deletion" {
		ref += string(bases[rng.Intn(len(bases))])
		alt = ref[:1]
	}

	var af float64
	if tuning {
		af = logUniform(rng, 1e-5, 5e-3)
	} else if rng.Float64() < 0.3 {
		af = logUniform(rng, 1e-2, 2e-1)
	} else {
		af = logUniform(rng, 1e-5, 1e-2)
	}

	return genadapter.Annotate(genetics.AnnotatedVariant{
		Chrom:       loc.chrom,
		Pos:         loc.start + rng.Intn(loc.span),
		Ref:         ref,
		Alt:         alt,
		Gene:        gene,
		Consequence: consequence,
		Impact:      impact,
		GnomadAF:    quantize(af, 'g', 4),
		CADDScore:   drawCADD(rng, impact),
	})
}

func pickTuningGene(rng *rand.Rand, channelBias float64) string {
	categories := genetics.VariantCategories()
	total := 0.0
	for _, cat := range categories {
		total += categoryWeight(cat.Name, channelBias) * float64(len(cat.Genes))
	}
	r := rng.Float64() * total
	for _, cat := range categories {
		w := categoryWeight(cat.Name, channelBias)
		for _, gene := range cat.Genes {
			r -= w
			if r < 0 {
				return gene
			}
		}
	}
	return categories[0].Genes[0]
}

func categoryWeight(name string, channelBias float64) float64 {
	if name == "channel_kinetics" {
		return channelBias
	}
	return 1.0
}

func drawImpact(rng *rand.Rand, tuning bool) genetics.Impact {
	r := rng.Float64()
	if tuning {
		switch {
		case r < 0.15:
			return genetics.ImpactHigh
		case r < 0.70:
			return genetics.ImpactModerate
		default:
			return genetics.ImpactLow
		}
	}
	switch {
	case r < 0.05:
		return genetics.ImpactHigh
	case r < 0.40:
		return genetics.ImpactModerate
	default:
		return genetics.ImpactLow
	}
}

// drawCADD scores by impact grade; a tenth of calls come back unscored
// the way real pipelines drop annotations.
func drawCADD(rng *rand.Rand, impact genetics.Impact) float64 {
	missing := rng.Float64() < 0.1
	var mean, sd, lo, hi float64
	switch impact {
	case genetics.ImpactHigh:
		mean, sd, lo, hi = 32, 5, 20, 50
	case genetics.ImpactModerate:
		mean, sd, lo, hi = 21, 4, 10, 38
	default:
		mean, sd, lo, hi = 6, 4, 0, 18
	}
	score := clamp(mean+rng.NormFloat64()*sd, lo, hi)
	if missing {
		return genadapter.CADDUnscored
	}
	return quantize(score, 'f', 1)
}

func logUniform(rng *rand.Rand, lo, hi float64) float64 {
	exp := math.Log10(lo) + rng.Float64()*(math.Log10(hi)-math.Log10(lo))
	return math.Pow(10, exp)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// quantize rounds through the decimal representation so stored values
// match what readers parse back from the exported files.
func quantize(x float64, format byte, prec int) float64 {
	q, _ := strconv.ParseFloat(strconv.FormatFloat(x, format, prec, 64), 64)
	return q
}

func formatRow(sample string, v genetics.AnnotatedVariant) []string {
	cadd := ""
	if v.CADDScore != genadapter.CADDUnscored {
		cadd = strconv.FormatFloat(v.CADDScore, 'f', 1, 64)
	}
	return []string{
		sample,
		v.Chrom,
		strconv.Itoa(v.Pos),
		v.Ref,
		v.Alt,
		v.Gene,
		v.Consequence,
		string(v.Impact),
		strconv.FormatFloat(v.GnomadAF, 'g', 4, 64),
		cadd,
	}
}

func WriteCSV(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(ds.Headers); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WriteXLSX(path string, ds *Dataset) error {
	f := excelize.NewFile()
	sheet := "Variants"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for i, h := range ds.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range ds.Rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

// WriteVCF emits the variants in the annotated INFO layout the
// pipeline's VCF parser reads. The ID column carries the exome label.
func WriteVCF(path string, ds *Dataset) error {
	var b strings.Builder
	b.WriteString("##fileformat=VCFv4.2\n")
	b.WriteString("##source=mnigen\n")
	b.WriteString("##INFO=<ID=GENE,Number=1,Type=String,Description=\"Gene symbol\">\n")
	b.WriteString("##INFO=<ID=CONSEQUENCE,Number=1,Type=String,Description=\"Predicted consequence\">\n")
	b.WriteString("##INFO=<ID=IMPACT,Number=1,Type=String,Description=\"Impact grade\">\n")
	b.WriteString("##INFO=<ID=AF,Number=1,Type=Float,Description=\"gnomAD allele frequency\">\n")
	b.WriteString("##INFO=<ID=CADD,Number=1,Type=Float,Description=\"CADD phred score\">\n")
	b.WriteString("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n")

	for i, v := range ds.Variants {
		info := fmt.Sprintf("GENE=%s;CONSEQUENCE=%s;IMPACT=%s;AF=%s",
			v.Gene, v.Consequence, strings.ToUpper(string(v.Impact)),
			strconv.FormatFloat(v.GnomadAF, 'g', 4, 64))
		if v.CADDScore != genadapter.CADDUnscored {
			info += ";CADD=" + strconv.FormatFloat(v.CADDScore, 'f', 1, 64)
		}
		fmt.Fprintf(&b, "%s\t%d\t%s\t%s\t%s\t.\tPASS\t%s\n",
			v.Chrom, v.Pos, ds.Samples[i], v.Ref, v.Alt, info)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// Summary aggregates one generated dataset for logging and tests
type Summary struct {
	Exomes         int            `json:"exomes"`
	Variants       int            `json:"variants"`
	TuningRelevant int            `json:"tuning_relevant"`
	MeanPerExome   float64        `json:"mean_per_exome"`
	MeanCADD       float64        `json:"mean_cadd"`
	MedianAF       float64        `json:"median_af"`
	CategoryCounts map[string]int `json:"category_counts"`
}

func Summarize(ds *Dataset) Summary {
	s := Summary{
		Exomes:         len(ds.Exomes),
		Variants:       len(ds.Variants),
		CategoryCounts: make(map[string]int),
	}

	perExome := make(map[string]float64, len(ds.Exomes))
	var cadd, af []float64
	for i, v := range ds.Variants {
		perExome[ds.Samples[i]]++
		af = append(af, v.GnomadAF)
		if v.CADDScore != genadapter.CADDUnscored {
			cadd = append(cadd, v.CADDScore)
		}
		if v.Category != "" {
			s.TuningRelevant++
			s.CategoryCounts[v.Category]++
		}
	}

	counts := make([]float64, 0, len(perExome))
	for _, exome := range ds.Exomes {
		counts = append(counts, perExome[exome])
	}
	s.MeanPerExome, _ = stats.Mean(counts)
	s.MeanCADD, _ = stats.Mean(cadd)
	s.MedianAF, _ = stats.Median(af)
	return s
}
