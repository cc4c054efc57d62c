package excel

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"savantfnc/internal/testkit"
	"savantfnc/models"
)

// TestWriteWorkbook_Sheets writes a full report and checks the sheet
// set and headline cells survive the trip to disk
func TestWriteWorkbook_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis_results.xlsx")
	if err := WriteWorkbook(path, testkit.SampleReport()); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	want := []string{"Summary", "Association", "TMS Effects", "Enrichment", "FNC Scores", "Battery", "Figures"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected %d sheets, got %v", len(want), got)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("sheet %d: expected %s, got %s", i, name, got[i])
		}
	}

	runID, err := f.GetCellValue("Summary", "B2")
	if err != nil || runID != "run-01" {
		t.Errorf("Summary B2: expected run-01, got %q (err %v)", runID, err)
	}
	analysis, _ := f.GetCellValue("Association", "B2")
	if analysis != "autism_savant_association" {
		t.Errorf("Association B2: got %q", analysis)
	}
	pathway, _ := f.GetCellValue("Enrichment", "A2")
	if pathway != "ion_channels" {
		t.Errorf("Enrichment A2: got %q", pathway)
	}
}

// TestWriteWorkbook_MetadataRows spills analysis metadata as sorted
// key/value rows below the fixed fields
func TestWriteWorkbook_MetadataRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteWorkbook(path, testkit.SampleReport()); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Association")
	if err != nil {
		t.Fatalf("read Association: %v", err)
	}
	// 8 fixed rows, separator, then metadata keys a < odds_ratio
	if len(rows) < 11 {
		t.Fatalf("expected metadata rows, got %d rows", len(rows))
	}
	if rows[9][0] != "a" || rows[10][0] != "odds_ratio" {
		t.Errorf("metadata keys out of order: %v %v", rows[9], rows[10])
	}
}

// TestWriteWorkbook_SkipsMissingSections leaves out sheets for stages
// that did not run
func TestWriteWorkbook_SkipsMissingSections(t *testing.T) {
	report := testkit.SampleReport()
	report.Genetics = nil
	report.AI = nil
	report.Figures = nil
	report.Run.Stages = []string{models.StageStats}

	path := filepath.Join(t.TempDir(), "partial.xlsx")
	if err := WriteWorkbook(path, report); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	want := []string{"Summary", "Association", "TMS Effects"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, got)
	}
}

func TestRound(t *testing.T) {
	if got := round(1.23456, 2); got != 1.23 {
		t.Errorf("round(1.23456, 2) = %v", got)
	}
	if got := round(109444.449, 2); got != 109444.45 {
		t.Errorf("round(109444.449, 2) = %v", got)
	}
}
