// Package excel moves results across spreadsheet boundaries: the
// consolidated workbook export and variant input from CSV or XLSX.
package excel

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"savantfnc/internal/errors"
	"savantfnc/models"
	"savantfnc/ports"
)

// sheetTitles maps analysis names onto workbook sheet names
var sheetTitles = map[string]string{
	"autism_savant_association": "Association",
	"domain_distribution":       "Domain Fit",
	"tms_enhancement":           "TMS Effects",
	"severity_gradient":         "Severity Gradient",
	"prevalence_intervals":      "Prevalence",
	"lesion_laterality":         "Laterality",
}

// WriteWorkbook exports the report as one workbook: a summary sheet, a
// sheet per statistical analysis, and sheets for the genetics and AI
// sections that ran. Sections absent from the report are skipped.
func WriteWorkbook(path string, report *models.AnalysisReport) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := buildSheets(report)
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return errors.ExportFailed("workbook", err)
			}
		} else {
			if _, err := f.NewSheet(s.name); err != nil {
				return errors.ExportFailed("workbook", err)
			}
		}
		if err := writeRows(f, s.name, s.rows); err != nil {
			return errors.ExportFailed("workbook", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ExportFailed("workbook", err)
	}
	return nil
}

type sheet struct {
	name string
	rows [][]interface{}
}

func buildSheets(report *models.AnalysisReport) []sheet {
	sheets := []sheet{summarySheet(report)}

	if report.Stats != nil {
		for _, result := range report.Stats.Results {
			title, ok := sheetTitles[result.Analysis]
			if !ok {
				title = result.Analysis
			}
			sheets = append(sheets, analysisSheet(title, result))
		}
	}
	if report.Genetics != nil {
		sheets = append(sheets, enrichmentSheet(report.Genetics), scoresSheet(report.Genetics))
	}
	if report.AI != nil {
		sheets = append(sheets, batterySheet(report.AI))
	}
	if len(report.Figures) > 0 {
		sheets = append(sheets, figuresSheet(report.Figures))
	}
	return sheets
}

func summarySheet(report *models.AnalysisReport) sheet {
	rows := [][]interface{}{
		{"Field", "Value"},
		{"Run ID", report.Run.ID},
		{"Version", report.Run.Version},
		{"Generated At", report.Run.GeneratedAt.Format(time.RFC3339)},
		{"Config Hash", report.Run.ConfigHash},
		{"Stages", strings.Join(report.Run.Stages, ", ")},
	}
	if report.Stats != nil {
		rows = append(rows,
			[]interface{}{"Odds Ratio", round(report.Stats.OddsRatio, 2)},
			[]interface{}{"Weighted Mean d", round(report.Stats.WeightedMeanD, 3)},
		)
	}
	rows = append(rows, []interface{}{"Summary", report.Summary})
	return sheet{name: "Summary", rows: rows}
}

func analysisSheet(title string, result ports.AnalysisResult) sheet {
	rows := [][]interface{}{
		{"Field", "Value"},
		{"Analysis", result.Analysis},
		{"Effect Size", round(result.EffectSize, 4)},
		{"Effect Unit", result.EffectUnit},
		{"P-Value", result.PValue},
		{"Confidence", round(result.Confidence, 2)},
		{"Signal", result.Signal},
		{"Description", result.Description},
	}
	if len(result.Metadata) > 0 {
		rows = append(rows, []interface{}{})
		keys := make([]string, 0, len(result.Metadata))
		for k := range result.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, []interface{}{k, result.Metadata[k]})
		}
	}
	return sheet{name: title, rows: rows}
}

func enrichmentSheet(g *models.GeneticsSection) sheet {
	rows := [][]interface{}{
		{"Pathway", "Name", "Hits", "Pathway Size", "Query Hits", "Fold", "P-Value", "Significant"},
	}
	for _, row := range g.Enrichment {
		rows = append(rows, []interface{}{
			row.Pathway, row.Name, strings.Join(row.Hits, ", "),
			row.PathwaySize, row.K, round(row.Fold, 2), row.PValue, row.Significant,
		})
	}
	return sheet{name: "Enrichment", rows: rows}
}

func scoresSheet(g *models.GeneticsSection) sheet {
	rows := [][]interface{}{
		{"Axis", "Raw", "Normalized"},
	}
	for _, axis := range g.AxisScores {
		rows = append(rows, []interface{}{axis.Axis, round(axis.Raw, 4), round(axis.Normalized, 4)})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Dominant Axis", g.DominantAxis},
		[]interface{}{"Predicted Domain", g.PredictedDomain},
		[]interface{}{"Variants Total", g.VariantsTotal},
		[]interface{}{"Variants Relevant", g.VariantsRelevant},
	)
	if g.DominantCategory != "" {
		rows = append(rows, []interface{}{"Dominant Category", g.DominantCategory})
	}
	return sheet{name: "FNC Scores", rows: rows}
}

func batterySheet(ai *models.AISection) sheet {
	rows := [][]interface{}{
		{"Condition", "Answered", "Correct", "Accuracy", "Mean Overall",
			"Directness", "Precision", "Confidence", "Pattern Awareness", "Opacity", "Access Type"},
	}
	for _, cond := range ai.Conditions {
		rows = append(rows, []interface{}{
			cond.Condition, cond.Answered, cond.Correct,
			round(cond.Accuracy, 3), round(cond.MeanOverall, 3),
			round(cond.Profile.Directness, 3), round(cond.Profile.Precision, 3),
			round(cond.Profile.Confidence, 3), round(cond.Profile.PatternAwareness, 3),
			round(cond.Profile.Opacity, 3), cond.AccessType,
		})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Accuracy Delta", round(ai.AccuracyDelta, 3)},
		[]interface{}{"Overall Delta", round(ai.OverallDelta, 3)},
	)
	if ai.ClosestProfile != "" {
		rows = append(rows, []interface{}{"Closest Profile", ai.ClosestProfile})
	}
	return sheet{name: "Battery", rows: rows}
}

func figuresSheet(figures []models.Figure) sheet {
	rows := [][]interface{}{{"Name", "Path"}}
	for _, fig := range figures {
		rows = append(rows, []interface{}{fig.Name, fig.Path})
	}
	return sheet{name: "Figures", rows: rows}
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// round keeps exported numbers readable without losing the headline
// digits
func round(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(x*p) / p
}
