package genetics

import (
	"strings"
	"testing"

	"savantfnc/domain/genetics"
	"savantfnc/internal/config"
)

const sampleVCFLine = "chr12\t2345678\t.\tG\tA\t50\tPASS\t" +
	"GENE=CACNA1C;CONSEQUENCE=missense_variant;IMPACT=MODERATE;AF=0.0001;CADD=24.3"

// TestParseVCFLine_DataLine parses every INFO key and attaches the
// category for a tuning-model gene
func TestParseVCFLine_DataLine(t *testing.T) {
	v, ok, err := ParseVCFLine(sampleVCFLine)
	if err != nil {
		t.Fatalf("ParseVCFLine: %v", err)
	}
	if !ok {
		t.Fatal("data line should parse with ok=true")
	}

	if v.Chrom != "chr12" || v.Pos != 2345678 || v.Ref != "G" || v.Alt != "A" {
		t.Errorf("coordinate fields wrong: %+v", v)
	}
	if v.Gene != "CACNA1C" {
		t.Errorf("expected gene CACNA1C, got %q", v.Gene)
	}
	if v.Consequence != "missense_variant" {
		t.Errorf("unexpected consequence %q", v.Consequence)
	}
	if v.Impact != genetics.ImpactModerate {
		t.Errorf("IMPACT=MODERATE should lower-case to moderate, got %q", v.Impact)
	}
	if v.GnomadAF != 0.0001 || v.CADDScore != 24.3 {
		t.Errorf("AF/CADD wrong: af=%f cadd=%f", v.GnomadAF, v.CADDScore)
	}
	if v.Category != "channel_kinetics" {
		t.Errorf("CACNA1C should map to channel_kinetics, got %q", v.Category)
	}
	if v.Interpretation == "" {
		t.Error("categorized variant should carry an interpretation")
	}
}

// TestParseVCFLine_SkipsHeadersAndBlanks returns ok=false without error
// for non-data lines
func TestParseVCFLine_SkipsHeadersAndBlanks(t *testing.T) {
	for _, line := range []string{"", "   ", "##fileformat=VCFv4.2", "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO"} {
		_, ok, err := ParseVCFLine(line)
		if err != nil {
			t.Errorf("line %q: unexpected error %v", line, err)
		}
		if ok {
			t.Errorf("line %q should be skipped", line)
		}
	}
}

// TestParseVCFLine_Malformed rejects short lines and non-numeric
// positions
func TestParseVCFLine_Malformed(t *testing.T) {
	if _, _, err := ParseVCFLine("chr1\t100\t.\tA"); err == nil {
		t.Error("expected error for a line with too few fields")
	}
	if _, _, err := ParseVCFLine("chr1\tabc\t.\tA\tG\t50\tPASS\tGENE=MBP"); err == nil {
		t.Error("expected error for a non-integer position")
	}
}

// TestParseVCF_Stream reads a small VCF with headers interleaved
func TestParseVCF_Stream(t *testing.T) {
	vcf := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		sampleVCFLine + "\n" +
		"chr22\t51113070\t.\tC\tT\t50\tPASS\tGENE=SHANK3;CONSEQUENCE=stop_gained;IMPACT=HIGH;AF=0.00001;CADD=35\n"

	variants, err := ParseVCF(strings.NewReader(vcf))
	if err != nil {
		t.Fatalf("ParseVCF: %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	if variants[1].Gene != "SHANK3" || variants[1].Category != "scaffold_adhesion" {
		t.Errorf("second variant wrong: %+v", variants[1])
	}
}

// TestFilterNeuralVariants applies the rarity, deleteriousness, and
// category filters; unscored CADD passes the score filter
func TestFilterNeuralVariants(t *testing.T) {
	cfg := config.Default().Genetics

	variants := []genetics.AnnotatedVariant{
		{Gene: "CACNA1C", CADDScore: 24, GnomadAF: 0.0001},        // keep
		{Gene: "CACNA1C", CADDScore: 10, GnomadAF: 0.0001},        // CADD below floor
		{Gene: "MBP", CADDScore: 30, GnomadAF: 0.05},              // too common
		{Gene: "TTN", CADDScore: 30, GnomadAF: 0.0001},            // outside the model
		{Gene: "GABRA1", CADDScore: CADDUnscored, GnomadAF: 0.001}, // unscored passes
	}

	kept := FilterNeuralVariants(cfg, variants)
	if len(kept) != 2 {
		t.Fatalf("expected 2 survivors, got %d: %+v", len(kept), kept)
	}
	if kept[0].Gene != "CACNA1C" || kept[1].Gene != "GABRA1" {
		t.Errorf("wrong survivors: %+v", kept)
	}
	for _, v := range kept {
		if v.Category == "" {
			t.Errorf("survivor %s should carry a category", v.Gene)
		}
	}
}

// TestBuildVariantReport_GroupsAndDominant groups survivors by category
// and names the largest one dominant
func TestBuildVariantReport_GroupsAndDominant(t *testing.T) {
	cfg := config.Default().Genetics

	variants := []genetics.AnnotatedVariant{
		{Chrom: "chr12", Pos: 2345678, Ref: "G", Alt: "A", Gene: "CACNA1C", Impact: genetics.ImpactHigh, CADDScore: 24, GnomadAF: 0.0001},
		{Chrom: "chr2", Pos: 166152389, Ref: "C", Alt: "T", Gene: "SCN2A", Impact: genetics.ImpactModerate, CADDScore: 22, GnomadAF: 0.0002},
		{Chrom: "chr22", Pos: 51113070, Ref: "C", Alt: "T", Gene: "SHANK3", Impact: genetics.ImpactHigh, CADDScore: 35, GnomadAF: 0.00001},
		{Chrom: "chr1", Pos: 1000, Ref: "A", Alt: "G", Gene: "TTN", CADDScore: 30, GnomadAF: 0.0001},
	}

	report := BuildVariantReport(cfg, variants)
	if report.Total != 4 || report.Relevant != 3 {
		t.Fatalf("expected 3 of 4 relevant, got %d of %d", report.Relevant, report.Total)
	}
	if report.CategoryCounts["channel_kinetics"] != 2 || report.CategoryCounts["scaffold_adhesion"] != 1 {
		t.Errorf("wrong category counts: %v", report.CategoryCounts)
	}
	if report.DominantCategory != "channel_kinetics" {
		t.Errorf("expected channel_kinetics dominant, got %q", report.DominantCategory)
	}
	if len(report.Predictions) != 2 {
		t.Errorf("expected one prediction per populated category, got %d", len(report.Predictions))
	}

	lines := report.ByCategory["channel_kinetics"]
	if len(lines) != 2 || lines[0].Variant != "chr12:2345678 G>A" {
		t.Errorf("display lines wrong: %+v", lines)
	}
	if report.Interpretation == "" {
		t.Error("expected a dominant-category interpretation")
	}
}

// TestBuildVariantReport_NoSurvivors makes no call when the filters
// remove everything
func TestBuildVariantReport_NoSurvivors(t *testing.T) {
	cfg := config.Default().Genetics
	report := BuildVariantReport(cfg, []genetics.AnnotatedVariant{
		{Gene: "TTN", CADDScore: 40, GnomadAF: 0.0001},
	})

	if report.Relevant != 0 {
		t.Fatalf("expected no survivors, got %d", report.Relevant)
	}
	if report.DominantCategory != "" {
		t.Errorf("no-survivor report should have no dominant category, got %q", report.DominantCategory)
	}
	if !strings.Contains(report.Interpretation, "no call") {
		t.Errorf("expected a no-call interpretation, got %q", report.Interpretation)
	}
}
