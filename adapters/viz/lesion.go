package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"savantfnc/domain/savant"
	"savantfnc/internal/errors"
)

var lesionBarColor = color.NRGBA{R: 178, G: 34, B: 34, A: 220}

// LesionMap draws Brodmann region involvement across mapped lesion
// cases as a horizontal bar chart, highest involvement on top
func (r *Renderer) LesionMap(regions []savant.BrodmannRegion, outPath string) (string, error) {
	if len(regions) == 0 {
		regions = savant.BrodmannInvolvement()
	}

	values := make(plotter.Values, 0, len(regions))
	labels := make([]string, 0, len(regions))
	for i := len(regions) - 1; i >= 0; i-- {
		values = append(values, regions[i].Involvement)
		labels = append(labels, regions[i].Area)
	}

	p := plot.New()
	p.Title.Text = "Cortical regions implicated in acquired savant lesions"
	p.X.Label.Text = "Fraction of mapped cases"

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return "", errors.RenderFailed("lesion map", err)
	}
	bars.Horizontal = true
	bars.Color = lesionBarColor
	p.Add(bars)
	p.NominalY(labels...)
	p.X.Min = 0

	return r.save(p, "lesion map", "lesion_involvement.png", outPath)
}

// Lateralization draws the hemispheric split of mapped lesion cases
func (r *Renderer) Lateralization(split []savant.Lateralization, outPath string) (string, error) {
	if len(split) == 0 {
		split = savant.LateralizationSplit()
	}

	values := make(plotter.Values, len(split))
	labels := make([]string, len(split))
	for i, s := range split {
		values[i] = s.Proportion
		labels[i] = s.Side
	}

	p := plot.New()
	p.Title.Text = "Lesion lateralization across acquired savant cases"
	p.Y.Label.Text = "Proportion of mapped cases"

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return "", errors.RenderFailed("lateralization", err)
	}
	bars.Color = lesionBarColor
	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0

	return r.save(p, "lateralization", "lateralization.png", outPath)
}
