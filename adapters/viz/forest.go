package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"savantfnc/adapters/stats/analyses"
	"savantfnc/domain/tms"
	"savantfnc/internal/errors"
)

// forestPoints carries point estimates with asymmetric X error bars
type forestPoints struct {
	plotter.XYs
	plotter.XErrors
}

// EffectForest draws the per-study enhancement effects as a forest
// chart: Cohen's d with its 95% interval per study, zero line for
// reference, first study on top
func (r *Renderer) EffectForest(studies []tms.Study, outPath string) (string, error) {
	if len(studies) == 0 {
		studies = tms.Studies()
	}

	n := len(studies)
	points := forestPoints{
		XYs:     make(plotter.XYs, n),
		XErrors: make(plotter.XErrors, n),
	}
	labels := make([]string, n)
	for i, s := range studies {
		d, _, lo, hi := analyses.CohensDPaired(
			s.PreMean, s.PostMean, s.PreSD, s.PostSD, s.N,
			r.cfg.Stats.PairedCorrelation, r.cfg.Stats.ZCritical)

		row := n - 1 - i // first study renders on the top track
		points.XYs[row] = plotter.XY{X: d, Y: float64(row)}
		points.XErrors[row] = struct{ Low, High float64 }{Low: d - lo, High: hi - d}
		labels[row] = s.Label
	}

	p := plot.New()
	p.Title.Text = "Savant-like gains under frontotemporal suppression"
	p.X.Label.Text = "Cohen's d (95% CI)"

	bars, err := plotter.NewXErrorBars(points)
	if err != nil {
		return "", errors.RenderFailed("effect forest", err)
	}
	marks, err := plotter.NewScatter(points.XYs)
	if err != nil {
		return "", errors.RenderFailed("effect forest", err)
	}
	marks.GlyphStyle.Radius = vg.Points(3.5)
	marks.GlyphStyle.Color = color.NRGBA{R: 0, G: 90, B: 50, A: 255}

	zero, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: -0.5},
		{X: 0, Y: float64(n) - 0.5},
	})
	if err != nil {
		return "", errors.RenderFailed("effect forest", err)
	}
	zero.LineStyle.Color = color.Gray{Y: 120}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(zero, bars, marks)
	p.NominalY(labels...)

	return r.save(p, "effect forest", "tms_effect_forest.png", outPath)
}
