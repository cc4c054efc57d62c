package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"savantfnc/domain/savant"
	"savantfnc/internal/errors"
)

var spectrumColor = color.NRGBA{R: 85, G: 26, B: 139, A: 255}

// TuningSpectrum places the five phenotype profiles on the breadth vs
// depth plane, connected in spectrum order from typical to prodigious
func (r *Renderer) TuningSpectrum(profiles []savant.TuningProfile, outPath string) (string, error) {
	if len(profiles) == 0 {
		profiles = savant.TuningProfiles()
	}

	points := make(plotter.XYs, len(profiles))
	labels := plotter.XYLabels{XYs: make(plotter.XYs, len(profiles)), Labels: make([]string, len(profiles))}
	for i, prof := range profiles {
		points[i] = plotter.XY{X: prof.FieldBreadth, Y: prof.NodeDepth}
		labels.XYs[i] = plotter.XY{X: prof.FieldBreadth + 0.015, Y: prof.NodeDepth + 0.015}
		labels.Labels[i] = prof.Label
	}

	p := plot.New()
	p.Title.Text = "Field access spectrum"
	p.X.Label.Text = "Field breadth (filtered, summarized input)"
	p.Y.Label.Text = "Node depth (direct single-domain access)"

	path, err := plotter.NewLine(points)
	if err != nil {
		return "", errors.RenderFailed("tuning spectrum", err)
	}
	path.LineStyle.Color = spectrumColor
	path.LineStyle.Width = vg.Points(1)
	path.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	marks, err := plotter.NewScatter(points)
	if err != nil {
		return "", errors.RenderFailed("tuning spectrum", err)
	}
	marks.GlyphStyle.Color = spectrumColor
	marks.GlyphStyle.Radius = vg.Points(4)

	names, err := plotter.NewLabels(labels)
	if err != nil {
		return "", errors.RenderFailed("tuning spectrum", err)
	}

	p.Add(path, marks, names)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1.05

	return r.save(p, "tuning spectrum", "fnc_tuning_spectrum.png", outPath)
}
