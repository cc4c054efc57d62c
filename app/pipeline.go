// Package app orchestrates analysis runs: stage selection, bounded
// concurrent figure rendering, and export of the consolidated report.
package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	aiexpadapter "savantfnc/adapters/aiexp"
	"savantfnc/adapters/excel"
	genadapter "savantfnc/adapters/genetics"
	"savantfnc/adapters/stats/analyses"
	"savantfnc/domain/aiexp"
	"savantfnc/domain/core"
	"savantfnc/domain/genetics"
	"savantfnc/internal"
	"savantfnc/internal/config"
	"savantfnc/internal/errors"
	"savantfnc/models"
	"savantfnc/ports"
)

// Selection picks which pipeline stages run. The report stage pulls in
// every section it consolidates.
type Selection struct {
	Viz      bool
	Stats    bool
	Genetics bool
	AI       bool
	Report   bool
}

// All selects every stage
func All() Selection {
	return Selection{Viz: true, Stats: true, Genetics: true, AI: true, Report: true}
}

// Empty reports whether no stage is selected
func (s Selection) Empty() bool {
	return !s.Viz && !s.Stats && !s.Genetics && !s.AI && !s.Report
}

// RunResult collects what one pipeline run produced and where it wrote
// it
type RunResult struct {
	Report       *models.AnalysisReport
	Figures      []models.Figure
	StatsPath    string
	ReportPath   string
	JSONPath     string
	WorkbookPath string
}

// Pipeline wires the analysis stages against one configuration
type Pipeline struct {
	cfg      *config.Config
	renderer ports.FigureRenderer
	engine   *analyses.Engine
	log      *internal.Logger
}

// NewPipeline builds a pipeline around a renderer and logger
func NewPipeline(cfg *config.Config, renderer ports.FigureRenderer, log *internal.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		renderer: renderer,
		engine:   analyses.NewEngine(cfg),
		log:      log,
	}
}

// Run executes the selected stages in order. An empty selection runs
// everything. The first stage failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, sel Selection) (*RunResult, error) {
	if sel.Empty() {
		sel = All()
	}
	if sel.Report {
		sel.Stats = true
		sel.Genetics = true
		sel.AI = true
	}

	if err := os.MkdirAll(p.cfg.Output.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}

	report := &models.AnalysisReport{
		Run: models.RunInfo{
			ID:          core.NewRunID().String(),
			Version:     Version,
			GeneratedAt: core.Now().Time(),
			ConfigHash:  core.MustFingerprint(p.cfg).Short(),
		},
	}
	result := &RunResult{Report: report}
	p.log.Info("Run %s (config %s)", report.Run.ID, report.Run.ConfigHash)

	if sel.Viz {
		p.log.Banner("Generating Visualizations")
		figures, err := p.renderFigures(ctx)
		if err != nil {
			return nil, errors.StageFailed(models.StageViz, err)
		}
		report.Figures = figures
		report.Run.Stages = append(report.Run.Stages, models.StageViz)
		result.Figures = figures
		p.log.Info("%d figures written to %s", len(figures), p.cfg.Output.Dir)
	}

	if sel.Stats {
		p.log.Banner("Running Statistical Analyses")
		statsPath, err := p.runStats(ctx, report)
		if err != nil {
			return nil, errors.StageFailed(models.StageStats, err)
		}
		report.Run.Stages = append(report.Run.Stages, models.StageStats)
		result.StatsPath = statsPath
	}

	if sel.Genetics {
		p.log.Banner("Running Genetic Analyses")
		if err := p.runGenetics(report); err != nil {
			return nil, errors.StageFailed(models.StageGenetics, err)
		}
		report.Run.Stages = append(report.Run.Stages, models.StageGenetics)
	}

	if sel.AI {
		p.log.Banner("Scoring Machine Response Batteries")
		p.runAI(report)
		report.Run.Stages = append(report.Run.Stages, models.StageAI)
	}

	if sel.Report {
		p.log.Banner("Generating Comprehensive Report")
		if err := p.writeReport(report, result); err != nil {
			return nil, errors.StageFailed(models.StageReport, err)
		}
		report.Run.Stages = append(report.Run.Stages, models.StageReport)
	}

	return result, nil
}

type figureJob struct {
	name   string
	render func() (string, error)
}

// renderFigures draws the full figure set, bounded by the configured
// worker count. Results keep job order.
func (p *Pipeline) renderFigures(ctx context.Context) ([]models.Figure, error) {
	r := p.renderer
	jobs := []figureJob{
		{"Domain prevalence radar", func() (string, error) { return r.DomainRadar(nil, "") }},
		{"Jason Padgett profile", func() (string, error) { return r.IndividualProfile("", nil, "") }},
		{"Lesion involvement map", func() (string, error) { return r.LesionMap(nil, "") }},
		{"Lesion lateralization", func() (string, error) { return r.Lateralization(nil, "") }},
		{"Case timelines", func() (string, error) { return r.CaseTimeline(nil, "") }},
		{"Onset latency comparison", func() (string, error) { return r.OnsetComparison(nil, "") }},
		{"FNC tuning spectrum", func() (string, error) { return r.TuningSpectrum(nil, "") }},
		{"Axis weight heatmap", func() (string, error) { return r.AxisHeatmap(nil, "") }},
		{"TMS effect forest", func() (string, error) { return r.EffectForest(nil, "") }},
	}

	sem := semaphore.NewWeighted(p.cfg.Figures.RenderWorkers)
	figures := make([]models.Figure, len(jobs))
	renderErrs := make([]error, len(jobs))
	var wg sync.WaitGroup

	for i, job := range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, job figureJob) {
			defer wg.Done()
			defer sem.Release(1)
			path, err := job.render()
			if err != nil {
				renderErrs[i] = err
				return
			}
			p.log.Debug("rendered %s -> %s", job.name, path)
			figures[i] = models.Figure{Name: job.name, Path: path}
		}(i, job)
	}
	wg.Wait()

	for _, err := range renderErrs {
		if err != nil {
			return nil, err
		}
	}
	return figures, nil
}

// runStats executes the battery, logs the headline numbers, and exports
// the raw section JSON
func (p *Pipeline) runStats(ctx context.Context, report *models.AnalysisReport) (string, error) {
	results, err := p.engine.RunAll(ctx)
	if err != nil {
		return "", err
	}

	association := analyses.AutismSavantAssociation(p.cfg.Stats)
	enhancement := analyses.EnhancementEffects(p.cfg.Stats, nil)
	report.Stats = &models.StatsSection{
		Results:        results,
		OddsRatio:      association.OddsRatio,
		WeightedMeanD:  enhancement.WeightedMeanD,
		KStudies:       enhancement.KStudies,
		TotalN:         enhancement.TotalN,
		Interpretation: analyses.MetaInterpretation(results),
	}

	p.log.Info("Autism-savant odds ratio: %.0f (95%% CI %.0f-%.0f)",
		association.OddsRatio, association.CILow, association.CIHigh)
	p.log.Info("TMS weighted mean d: %.2f across %d studies (total N=%d)",
		enhancement.WeightedMeanD, enhancement.KStudies, enhancement.TotalN)

	path := filepath.Join(p.cfg.Output.Dir, p.cfg.Output.StatsJSON)
	if err := writeJSON(path, report.Stats); err != nil {
		return "", err
	}
	return path, nil
}

// runGenetics runs enrichment and scoring over the demo panel and the
// embedded sample VCF
func (p *Pipeline) runGenetics(report *models.AnalysisReport) error {
	panel := genetics.DemoPanel()
	enrichment := genadapter.PathwayEnrichment(p.cfg.Genetics, panel)
	scores := genadapter.CalculateFNCScores(genetics.DemoVariants())

	variants, err := genadapter.ParseVCF(strings.NewReader(genadapter.DemoVCF))
	if err != nil {
		return err
	}
	variantReport := genadapter.BuildVariantReport(p.cfg.Genetics, variants)

	section := &models.GeneticsSection{
		PanelGenes:            panel,
		EnrichmentSummary:     genadapter.EnrichmentSummary(enrichment),
		DominantAxis:          string(scores.DominantAxis),
		PredictedDomain:       scores.PredictedDomain,
		Interpretation:        scores.Interpretation,
		VariantsTotal:         variantReport.Total,
		VariantsRelevant:      variantReport.Relevant,
		DominantCategory:      variantReport.DominantCategory,
		VariantPredictions:    variantReport.Predictions,
		VariantInterpretation: variantReport.Interpretation,
	}
	for _, e := range enrichment {
		section.Enrichment = append(section.Enrichment, models.EnrichmentRow{
			Pathway:     string(e.Pathway),
			Name:        e.Info.TuningRole,
			Hits:        e.Hits,
			K:           e.K,
			PathwaySize: e.PathwaySize,
			Fold:        e.Fold,
			PValue:      e.PValue,
			Significant: e.Significant,
		})
	}
	for _, axis := range genetics.Axes() {
		section.AxisScores = append(section.AxisScores, models.AxisScore{
			Axis:       string(axis),
			Raw:        scores.Raw[axis],
			Normalized: scores.Normalized[axis],
		})
	}
	report.Genetics = section

	p.log.Info("Pathway enrichment: %d pathways hit by the %d-gene panel", len(enrichment), len(panel))
	p.log.Info("Demo variant profile predicts %s via the %s axis", scores.PredictedDomain, scores.DominantAxis)
	return nil
}

// runAI scores the recorded neutral and tuned sessions and compares
// them against the savant benchmarks
func (p *Pipeline) runAI(report *models.AnalysisReport) {
	neutralSession := aiexp.NeutralSession()
	tunedSession := aiexp.TunedSession()

	neutral := aiexpadapter.RunBattery(p.cfg.Scoring, neutralSession.Label, neutralSession.ResponseMap())
	tuned := aiexpadapter.RunBattery(p.cfg.Scoring, tunedSession.Label, tunedSession.ResponseMap())
	comparison := aiexpadapter.CompareConditions(neutral, tuned)
	neutralMetrics := aiexpadapter.FieldAccessMetrics(batteryScores(neutral))
	tunedMetrics := aiexpadapter.FieldAccessMetrics(batteryScores(tuned))

	report.AI = &models.AISection{
		Conditions: []models.ConditionSummary{
			conditionSummary(neutral, neutralMetrics),
			conditionSummary(tuned, tunedMetrics),
		},
		AccuracyDelta:  comparison.AccuracyDelta,
		OverallDelta:   comparison.OverallDelta,
		ClosestProfile: tunedMetrics.Closest,
		Interpretation: comparison.Interpretation,
	}

	p.log.Info("Neutral battery: %d/%d correct, access type %s", neutral.Correct, neutral.Answered, neutralMetrics.AccessType)
	p.log.Info("Tuned battery: %d/%d correct, access type %s", tuned.Correct, tuned.Answered, tunedMetrics.AccessType)
}

func batteryScores(result aiexpadapter.BatteryResult) []aiexpadapter.ResponseScore {
	scores := make([]aiexpadapter.ResponseScore, len(result.Items))
	for i, item := range result.Items {
		scores[i] = item.Score
	}
	return scores
}

func conditionSummary(result aiexpadapter.BatteryResult, metrics aiexpadapter.AccessMetrics) models.ConditionSummary {
	return models.ConditionSummary{
		Condition:   result.Condition,
		Answered:    result.Answered,
		Correct:     result.Correct,
		Accuracy:    result.Accuracy,
		MeanOverall: result.MeanOverall,
		Profile:     result.MeanProfile,
		AccessType:  metrics.AccessType,
	}
}

// writeReport validates the consolidated report and exports markdown,
// JSON, and the workbook
func (p *Pipeline) writeReport(report *models.AnalysisReport, result *RunResult) error {
	report.Predictions = defaultPredictions()
	if err := report.Validate(); err != nil {
		return err
	}

	out := p.cfg.Output
	result.ReportPath = filepath.Join(out.Dir, out.ReportFile)
	if err := os.WriteFile(result.ReportPath, []byte(RenderMarkdown(report)), 0o644); err != nil {
		return errors.ExportFailed("markdown report", err)
	}

	result.JSONPath = filepath.Join(out.Dir, out.ReportJSON)
	if err := writeJSON(result.JSONPath, report); err != nil {
		return err
	}

	result.WorkbookPath = filepath.Join(out.Dir, out.WorkbookFile)
	if err := excel.WriteWorkbook(result.WorkbookPath, report); err != nil {
		return err
	}

	p.log.Info("Report written to %s", result.ReportPath)
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.ExportFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.ExportFailed(path, err)
	}
	return nil
}
