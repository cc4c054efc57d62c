package viz

import (
	"os"
	"path/filepath"
	"testing"

	"savantfnc/domain/savant"
	"savantfnc/domain/tms"
	"savantfnc/internal/config"
	"savantfnc/ports"
)

var _ ports.FigureRenderer = (*Renderer)(nil)

func testRenderer(t *testing.T) (*Renderer, string) {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Dir = t.TempDir()
	cfg.Figures.WidthInches = 4
	cfg.Figures.HeightInches = 3
	return NewRenderer(cfg), cfg.Output.Dir
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("figure not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("figure %s is empty", path)
	}
}

// TestRenderer_DefaultPaths renders the full figure set with embedded
// data and default names under the configured directory
func TestRenderer_DefaultPaths(t *testing.T) {
	r, dir := testRenderer(t)

	renders := []struct {
		name string
		call func() (string, error)
		file string
	}{
		{"DomainRadar", func() (string, error) { return r.DomainRadar(nil, "") }, "domain_radar_population.png"},
		{"IndividualProfile", func() (string, error) { return r.IndividualProfile("", nil, "") }, "profile_jason_padgett.png"},
		{"LesionMap", func() (string, error) { return r.LesionMap(nil, "") }, "lesion_involvement.png"},
		{"Lateralization", func() (string, error) { return r.Lateralization(nil, "") }, "lateralization.png"},
		{"CaseTimeline", func() (string, error) { return r.CaseTimeline(nil, "") }, "case_timelines.png"},
		{"OnsetComparison", func() (string, error) { return r.OnsetComparison(nil, "") }, "onset_comparison.png"},
		{"TuningSpectrum", func() (string, error) { return r.TuningSpectrum(nil, "") }, "fnc_tuning_spectrum.png"},
		{"AxisHeatmap", func() (string, error) { return r.AxisHeatmap(nil, "") }, "axis_heatmap.png"},
		{"EffectForest", func() (string, error) { return r.EffectForest(nil, "") }, "tms_effect_forest.png"},
	}

	for _, render := range renders {
		path, err := render.call()
		if err != nil {
			t.Fatalf("%s: %v", render.name, err)
		}
		want := filepath.Join(dir, render.file)
		if path != want {
			t.Errorf("%s: expected %s, got %s", render.name, want, path)
		}
		assertPNG(t, path)
	}
}

// TestRenderer_OverridePath honors an explicit destination and creates
// missing parent directories
func TestRenderer_OverridePath(t *testing.T) {
	r, dir := testRenderer(t)

	override := filepath.Join(dir, "nested", "deep", "radar.png")
	path, err := r.DomainRadar(nil, override)
	if err != nil {
		t.Fatalf("DomainRadar: %v", err)
	}
	if path != override {
		t.Errorf("expected override path %s, got %s", override, path)
	}
	assertPNG(t, path)
}

// TestRenderer_SilentOverwrite re-renders onto an existing file without
// error
func TestRenderer_SilentOverwrite(t *testing.T) {
	r, _ := testRenderer(t)

	first, err := r.Lateralization(nil, "")
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := r.Lateralization(nil, "")
	if err != nil {
		t.Fatalf("overwrite render: %v", err)
	}
	if first != second {
		t.Errorf("overwrite should reuse the path: %s vs %s", first, second)
	}
	assertPNG(t, second)
}

// TestRenderer_DataOverrides renders caller-supplied datasets instead
// of the embedded tables
func TestRenderer_DataOverrides(t *testing.T) {
	r, _ := testRenderer(t)

	regions := []savant.BrodmannRegion{
		{Area: "BA 21/22", Involvement: 0.7},
		{Area: "BA 7", Involvement: 0.4},
	}
	path, err := r.LesionMap(regions, "")
	if err != nil {
		t.Fatalf("LesionMap with override data: %v", err)
	}
	assertPNG(t, path)

	studies := []tms.Study{{
		Label: "Pilot", Task: "Drawing", N: 10,
		PreMean: 1, PreSD: 1, PostMean: 2, PostSD: 1,
	}}
	path, err = r.EffectForest(studies, "")
	if err != nil {
		t.Fatalf("EffectForest with override data: %v", err)
	}
	assertPNG(t, path)
}

// TestRenderer_ProfileNameInPath slugs the subject name into the
// default profile filename
func TestRenderer_ProfileNameInPath(t *testing.T) {
	r, dir := testRenderer(t)

	path, err := r.IndividualProfile("Derek Amato", map[savant.SavantDomain]float64{
		savant.DomainMusic: 0.95,
	}, "")
	if err != nil {
		t.Fatalf("IndividualProfile: %v", err)
	}
	if want := filepath.Join(dir, "profile_derek_amato.png"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
	assertPNG(t, path)
}
