package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	genadapter "savantfnc/adapters/genetics"
)

const variantCSV = `chrom,pos,ref,alt,gene,consequence,impact,gnomad_af,cadd
12,2345678,G,A,CACNA1C,missense_variant,high,0.0001,24.1
22,51113070,C,T,SHANK3,missense_variant,moderate,0.0005,22.8
7,155001000,T,C,UNKNOWN1,intron_variant,low,0.01,
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "variants.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

// TestReadVariants_CSV parses a variant table and annotates known genes
func TestReadVariants_CSV(t *testing.T) {
	variants, err := ReadVariants(writeTempCSV(t, variantCSV))
	if err != nil {
		t.Fatalf("ReadVariants: %v", err)
	}
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(variants))
	}

	first := variants[0]
	if first.Chrom != "12" || first.Pos != 2345678 || first.Gene != "CACNA1C" {
		t.Errorf("first variant misparsed: %+v", first)
	}
	if first.Category != "channel_kinetics" {
		t.Errorf("CACNA1C should annotate to channel_kinetics, got %q", first.Category)
	}
	if first.CADDScore != 24.1 {
		t.Errorf("CADD misparsed: %v", first.CADDScore)
	}

	unknown := variants[2]
	if unknown.Category != "" {
		t.Errorf("unknown gene should stay uncategorized, got %q", unknown.Category)
	}
	if unknown.CADDScore != genadapter.CADDUnscored {
		t.Errorf("blank CADD should read as unscored, got %v", unknown.CADDScore)
	}
}

// TestReadVariants_XLSX reads the same table from a workbook sheet
func TestReadVariants_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.xlsx")
	f := excelize.NewFile()
	cells := [][]interface{}{
		{"chrom", "pos", "ref", "alt", "gene", "consequence", "impact", "gnomad_af", "cadd"},
		{"12", 2345678, "G", "A", "CACNA1C", "missense_variant", "high", 0.0001, 24.1},
		{"2", 166152389, "A", "G", "SCN2A", "missense_variant", "moderate", 0.0003, 21.5},
	}
	for r, row := range cells {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("seed workbook: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	f.Close()

	variants, err := ReadVariants(path)
	if err != nil {
		t.Fatalf("ReadVariants: %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	if variants[1].Gene != "SCN2A" || variants[1].Pos != 166152389 {
		t.Errorf("second variant misparsed: %+v", variants[1])
	}
}

// TestReadVariants_HeaderAliases accepts alternate column spellings
func TestReadVariants_HeaderAliases(t *testing.T) {
	csv := "chromosome,position,ref,alt,gene,af,cadd_score\n12,100,G,A,CACNA1C,0.0001,25\n"
	variants, err := ReadVariants(writeTempCSV(t, csv))
	if err != nil {
		t.Fatalf("ReadVariants: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}
	if variants[0].GnomadAF != 0.0001 || variants[0].CADDScore != 25 {
		t.Errorf("aliased columns misparsed: %+v", variants[0])
	}
}

// TestReadVariants_Errors rejects unusable tables with typed errors
func TestReadVariants_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"Missing gene column", "chrom,pos,ref,alt\n12,100,G,A\n"},
		{"Bad position", "chrom,pos,ref,alt,gene\n12,not-a-number,G,A,CACNA1C\n"},
		{"Bad allele frequency", "chrom,pos,ref,alt,gene,gnomad_af\n12,100,G,A,CACNA1C,often\n"},
		{"Header only", "chrom,pos,ref,alt,gene\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadVariants(writeTempCSV(t, tt.csv)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

// TestReadVariants_UnsupportedFormat rejects extensions outside csv/xlsx
func TestReadVariants_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := ReadVariants(path); err == nil {
		t.Error("expected unsupported-format error")
	}
}
