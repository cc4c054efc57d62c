// Package testkit provides fixtures and fake port implementations
// shared by tests across packages.
package testkit

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"savantfnc/domain/aiexp"
	"savantfnc/domain/savant"
	"savantfnc/domain/tms"
	"savantfnc/internal/errors"
	"savantfnc/models"
	"savantfnc/ports"
)

// FakeRenderer implements the figure renderer without drawing. It
// records call names and fabricates paths under Dir; setting FailName
// turns that figure into a render error.
type FakeRenderer struct {
	Dir      string
	FailName string

	mu    sync.Mutex
	calls []string
}

func NewFakeRenderer(dir string) *FakeRenderer {
	return &FakeRenderer{Dir: dir}
}

// Calls returns the figure names rendered so far, in call order
func (f *FakeRenderer) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeRenderer) render(name string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
	if f.FailName == name {
		return "", errors.RenderFailed(name, os.ErrInvalid)
	}
	return filepath.Join(f.Dir, name+".png"), nil
}

func (f *FakeRenderer) DomainRadar([]savant.DomainShare, string) (string, error) {
	return f.render("domain_radar")
}

func (f *FakeRenderer) IndividualProfile(string, map[savant.SavantDomain]float64, string) (string, error) {
	return f.render("profile")
}

func (f *FakeRenderer) LesionMap([]savant.BrodmannRegion, string) (string, error) {
	return f.render("lesion_map")
}

func (f *FakeRenderer) Lateralization([]savant.Lateralization, string) (string, error) {
	return f.render("lateralization")
}

func (f *FakeRenderer) CaseTimeline([]savant.Case, string) (string, error) {
	return f.render("case_timeline")
}

func (f *FakeRenderer) OnsetComparison([]savant.Case, string) (string, error) {
	return f.render("onset_comparison")
}

func (f *FakeRenderer) TuningSpectrum([]savant.TuningProfile, string) (string, error) {
	return f.render("tuning_spectrum")
}

func (f *FakeRenderer) AxisHeatmap([]string, string) (string, error) {
	return f.render("axis_heatmap")
}

func (f *FakeRenderer) EffectForest([]tms.Study, string) (string, error) {
	return f.render("effect_forest")
}

var _ ports.FigureRenderer = (*FakeRenderer)(nil)

// SampleReport returns a small fully-populated report that passes
// validation. Tests mutate it to cover partial runs.
func SampleReport() *models.AnalysisReport {
	return &models.AnalysisReport{
		Run: models.RunInfo{
			ID:          "run-01",
			Version:     "0.1.0",
			GeneratedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
			ConfigHash:  "a3c9",
			Stages:      []string{models.StageStats, models.StageGenetics, models.StageAI},
		},
		Summary: "Convergent evidence for tuned field access.",
		Stats: &models.StatsSection{
			Results: []ports.AnalysisResult{
				{
					Analysis:   "autism_savant_association",
					EffectSize: 11.6, EffectUnit: "log_odds",
					PValue: 1e-90, Confidence: 0.99, Signal: "very_strong",
					Description: "Savant skills against the general population",
					Metadata:    map[string]interface{}{"odds_ratio": 109444.4, "a": 1500},
				},
				{
					Analysis:   "tms_enhancement",
					EffectSize: 1.64, EffectUnit: "cohens_d",
					PValue: 0.0003, Confidence: 0.99, Signal: "very_strong",
				},
			},
			OddsRatio:     109444.4,
			WeightedMeanD: 1.64,
		},
		Genetics: &models.GeneticsSection{
			PanelGenes: []string{"CACNA1C", "SHANK3"},
			Enrichment: []models.EnrichmentRow{
				{Pathway: "ion_channels", Name: "Ion channel function", Hits: []string{"CACNA1C"}, K: 1, PathwaySize: 120, Fold: 8.3, PValue: 0.002, Significant: true},
			},
			AxisScores: []models.AxisScore{
				{Axis: "frequency", Raw: 0.9, Normalized: 1.0},
				{Axis: "integration", Raw: 0.51, Normalized: 0.57},
			},
			DominantAxis:    "frequency",
			PredictedDomain: "Music/Mathematics",
		},
		AI: &models.AISection{
			Conditions: []models.ConditionSummary{
				{Condition: "neutral", Answered: 12, Correct: 10, Accuracy: 0.833, MeanOverall: 0.46, Profile: aiexp.DimensionProfile{Directness: 0.4}, AccessType: "filtered processing"},
				{Condition: "tuned", Answered: 12, Correct: 12, Accuracy: 1, MeanOverall: 0.8, Profile: aiexp.DimensionProfile{Directness: 1}, AccessType: "direct field access"},
			},
			AccuracyDelta: 0.167,
			OverallDelta:  0.34,
		},
		Figures: []models.Figure{
			{Name: "Domain radar", Path: "/tmp/figures/domain_radar_population.png"},
		},
	}
}
