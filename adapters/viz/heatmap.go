package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"savantfnc/domain/genetics"
)

// axisGrid exposes the gene-by-axis weight table as a plotter grid.
// Cell value is the gene's weight on that axis, zero off-axis.
type axisGrid struct {
	genes []string
	axes  []genetics.Axis
}

func (g *axisGrid) Dims() (c, r int) { return len(g.axes), len(g.genes) }

func (g *axisGrid) Z(c, r int) float64 {
	axis, weight, ok := genetics.AxisWeight(g.genes[r])
	if !ok || axis != g.axes[c] {
		return 0
	}
	return weight
}

func (g *axisGrid) X(c int) float64 { return float64(c) }
func (g *axisGrid) Y(r int) float64 { return float64(r) }

// AxisHeatmap draws the tuning-model weight of each gene on each of the
// four axes. Genes outside the model render as empty rows.
func (r *Renderer) AxisHeatmap(genes []string, outPath string) (string, error) {
	if len(genes) == 0 {
		genes = genetics.KnownGenes()
	}
	axes := genetics.Axes()

	grid := &axisGrid{genes: genes, axes: axes}
	heat := plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255))

	p := plot.New()
	p.Title.Text = "Gene weights across the node tuning axes"

	p.Add(heat)

	axisNames := make([]string, len(axes))
	for i, a := range axes {
		axisNames[i] = string(a)
	}
	p.NominalX(axisNames...)
	p.NominalY(genes...)

	return r.save(p, "axis heatmap", "axis_heatmap.png", outPath)
}
