package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"savantfnc/domain/core"
	"savantfnc/models"
)

// Version stamps every report and export
const Version = "0.1.0"

const citationDOI = "10.5281/zenodo.17789741"

// defaultPredictions are the falsifiable claims the interpretation
// rests on
func defaultPredictions() []models.Prediction {
	return []models.Prediction{
		{
			ID:    "H1",
			Claim: "**Ion channel variants** in savants will cluster in frequency-tuning pathways",
			Test:  "Targeted sequencing of musical and mathematical savant cohorts",
		},
		{
			ID:    "H2",
			Claim: "**E/I balance** (measurable via MRS) will correlate with savant ability breadth",
			Test:  "MRS GABA/glutamate ratios against ability inventories",
		},
		{
			ID:    "H3",
			Claim: "**TMS responders** will show higher baseline autistic traits",
			Test:  "AQ scoring before low-frequency rTMS sessions",
		},
		{
			ID:    "H4",
			Claim: "**Acquired savants** will show left hemisphere lesion dominance (>90%)",
			Test:  "Structured lesion mapping of newly reported acquired cases",
		},
	}
}

// RenderMarkdown lays the consolidated report out as markdown, section
// by section, skipping sections for stages that did not run
func RenderMarkdown(report *models.AnalysisReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Savant-FNC Analysis Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s  \n", core.NewTimestamp(report.Run.GeneratedAt).ReportStamp())
	fmt.Fprintf(&b, "**Version:** %s  \n", report.Run.Version)
	fmt.Fprintf(&b, "**Run:** %s  \n", report.Run.ID)
	fmt.Fprintf(&b, "**Config:** %s  \n", report.Run.ConfigHash)
	fmt.Fprintf(&b, "**DOI:** [%s](https://doi.org/%s)\n\n", citationDOI, citationDOI)
	b.WriteString("---\n\n")

	b.WriteString("## Executive Summary\n\n")
	b.WriteString("This report presents automated analyses from the Savant-FNC research project,\n")
	b.WriteString("applying the Field-Node-Cockpit (FNC) framework to savant syndrome data.\n\n")
	b.WriteString("---\n\n")

	if report.Stats != nil {
		writeStatsSection(&b, report.Stats)
	}
	if report.Genetics != nil {
		writeGeneticsSection(&b, report.Genetics)
	}
	writeInterpretationSection(&b, report)
	writePredictionsSection(&b, report.Predictions)
	if len(report.Figures) > 0 {
		writeFiguresSection(&b, report.Figures)
	}

	b.WriteString("## Citation\n\n")
	b.WriteString("Wikström, B. (2025). *Savant Syndrome as Differential Access to Relational Information Structures*.\n")
	fmt.Fprintf(&b, "Zenodo. https://doi.org/%s\n\n", citationDOI)
	b.WriteString("---\n\n")
	b.WriteString("*Report generated automatically by the savant-fnc analysis pipeline.*\n")

	return b.String()
}

func writeStatsSection(b *strings.Builder, stats *models.StatsSection) {
	b.WriteString("## 1. Statistical Analyses\n\n")

	b.WriteString("### 1.1 Analysis Battery\n\n")
	b.WriteString("| Analysis | Effect size | Unit | P-value | Signal |\n")
	b.WriteString("|----------|-------------|------|---------|--------|\n")
	for _, r := range stats.Results {
		fmt.Fprintf(b, "| %s | %.3f | %s | %.3g | %s |\n",
			r.Analysis, r.EffectSize, r.EffectUnit, r.PValue, r.Signal)
	}
	b.WriteString("\n")

	b.WriteString("### 1.2 Autism-Savant Association\n\n")
	fmt.Fprintf(b, "- Odds ratio: **%.0f**\n\n", stats.OddsRatio)

	b.WriteString("### 1.3 TMS Effect Sizes\n\n")
	b.WriteString("**Meta-Analysis:**\n")
	fmt.Fprintf(b, "- Weighted mean d = %.2f\n", stats.WeightedMeanD)
	fmt.Fprintf(b, "- k = %d studies\n", stats.KStudies)
	fmt.Fprintf(b, "- Total N = %d\n\n", stats.TotalN)
	b.WriteString("---\n\n")
}

func writeGeneticsSection(b *strings.Builder, genetics *models.GeneticsSection) {
	b.WriteString("## 2. Genetic Analyses\n\n")

	b.WriteString("### 2.1 Pathway Enrichment\n\n")
	fmt.Fprintf(b, "Panel: %s\n\n", strings.Join(genetics.PanelGenes, ", "))
	for _, row := range genetics.Enrichment {
		marker := ""
		if row.Significant {
			marker = " *(significant)*"
		}
		fmt.Fprintf(b, "- **%s** (%s): %s; fold %.1f; p = %.3g%s\n",
			row.Pathway, row.Name, strings.Join(row.Hits, ", "), row.Fold, row.PValue, marker)
	}
	if genetics.EnrichmentSummary != "" {
		fmt.Fprintf(b, "\n%s\n", genetics.EnrichmentSummary)
	}
	b.WriteString("\n")

	b.WriteString("### 2.2 FNC Tuning Predictions\n\n")
	b.WriteString("| Axis | Raw | Normalized |\n")
	b.WriteString("|------|-----|------------|\n")
	for _, axis := range genetics.AxisScores {
		fmt.Fprintf(b, "| %s | %.2f | %.2f |\n", axis.Axis, axis.Raw, axis.Normalized)
	}
	fmt.Fprintf(b, "\nPredicted domain: **%s**\n\n", genetics.PredictedDomain)
	if genetics.Interpretation != "" {
		fmt.Fprintf(b, "%s\n\n", genetics.Interpretation)
	}

	b.WriteString("### 2.3 MNI Dataset Analysis Protocol\n\n")
	b.WriteString("Whole-exome variant call against the MNI Savant WES protocol\n")
	b.WriteString("(Montreal Neurological Institute, n=15 exomes):\n\n")
	fmt.Fprintf(b, "- Variants screened: %d\n", genetics.VariantsTotal)
	fmt.Fprintf(b, "- Tuning-relevant after filters: %d\n", genetics.VariantsRelevant)
	if genetics.DominantCategory != "" {
		fmt.Fprintf(b, "- Dominant category: %s\n", genetics.DominantCategory)
	}
	b.WriteString("\n")
	for _, prediction := range genetics.VariantPredictions {
		fmt.Fprintf(b, "- %s\n", prediction)
	}
	if genetics.VariantInterpretation != "" {
		fmt.Fprintf(b, "\n%s\n", genetics.VariantInterpretation)
	}
	b.WriteString("\n---\n\n")
}

func writeInterpretationSection(b *strings.Builder, report *models.AnalysisReport) {
	b.WriteString("## 3. FNC Interpretation Summary\n\n")
	if report.Stats != nil && report.Stats.Interpretation != "" {
		fmt.Fprintf(b, "%s\n\n", report.Stats.Interpretation)
	}
	if report.AI != nil {
		b.WriteString("### 3.1 Machine Response Comparison\n\n")
		b.WriteString("| Condition | Answered | Correct | Accuracy | Mean overall | Access type |\n")
		b.WriteString("|-----------|----------|---------|----------|--------------|-------------|\n")
		for _, cond := range report.AI.Conditions {
			fmt.Fprintf(b, "| %s | %d | %d | %.2f | %.2f | %s |\n",
				cond.Condition, cond.Answered, cond.Correct, cond.Accuracy, cond.MeanOverall, cond.AccessType)
		}
		b.WriteString("\n")
		if report.AI.Interpretation != "" {
			fmt.Fprintf(b, "%s\n\n", report.AI.Interpretation)
		}
	}
	b.WriteString("---\n\n")
}

func writePredictionsSection(b *strings.Builder, predictions []models.Prediction) {
	if len(predictions) == 0 {
		return
	}
	b.WriteString("## 4. Testable Predictions\n\n")
	b.WriteString("Based on these analyses, the FNC framework generates the following predictions:\n\n")
	for i, prediction := range predictions {
		fmt.Fprintf(b, "%d. %s\n", i+1, prediction.Claim)
		fmt.Fprintf(b, "   - Test: %s\n", prediction.Test)
	}
	b.WriteString("\n---\n\n")
}

func writeFiguresSection(b *strings.Builder, figures []models.Figure) {
	b.WriteString("## Figures\n\n")
	for _, figure := range figures {
		fmt.Fprintf(b, "- [%s](figures/%s)\n", figure.Name, filepath.Base(figure.Path))
	}
	b.WriteString("\n---\n\n")
}
