package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"savantfnc/internal/mni"
)

func main() {
	out := flag.String("out", "mni_wes_synthetic.csv", "output file path")
	exomes := flag.Int("exomes", 15, "number of synthetic exomes")
	variants := flag.Int("variants", 40, "variants per exome")
	format := flag.String("format", "", "output format: csv, xlsx, or vcf (default inferred from -out)")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	tuning := flag.Float64("tuning", 0.30, "share of calls landing in catalog genes")
	flag.Parse()

	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName == "" {
		switch strings.ToLower(filepath.Ext(*out)) {
		case ".xlsx":
			fmtName = "xlsx"
		case ".vcf":
			fmtName = "vcf"
		default:
			fmtName = "csv"
		}
	}

	cfg := mni.DefaultConfig()
	cfg.Exomes = *exomes
	cfg.VariantsPerExome = *variants
	cfg.Seed = *seed
	cfg.TuningFraction = *tuning

	ds, err := mni.Generate(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(2)
	}

	switch fmtName {
	case "csv":
		err = mni.WriteCSV(*out, ds)
	case "xlsx":
		err = mni.WriteXLSX(*out, ds)
	case "vcf":
		err = mni.WriteVCF(*out, ds)
	default:
		fmt.Fprintln(os.Stderr, "unsupported format:", fmtName)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error writing dataset:", err)
		os.Exit(1)
	}

	summary := mni.Summarize(ds)
	fmt.Printf("Synthetic MNI WES table: %s\n", *out)
	fmt.Printf("Exomes: %d | Variants: %d | Tuning-relevant: %d\n",
		summary.Exomes, summary.Variants, summary.TuningRelevant)
	fmt.Printf("Mean per exome: %.1f | Mean CADD: %.1f | Median AF: %.2g\n",
		summary.MeanPerExome, summary.MeanCADD, summary.MedianAF)
}
