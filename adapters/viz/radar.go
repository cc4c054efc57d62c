package viz

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"savantfnc/domain/savant"
	"savantfnc/internal/errors"
)

var (
	radarGridColor = color.Gray{Y: 200}
	radarFillColor = color.NRGBA{R: 70, G: 130, B: 180, A: 90}
	radarLineColor = color.NRGBA{R: 70, G: 130, B: 180, A: 255}
)

// radarPlot lays values out on spokes around the origin, scaled so
// ringMax touches the outer ring. Axes are hidden; the grid is drawn as
// concentric polygons through the spoke angles.
func radarPlot(title string, axes []string, values []float64, ringMax float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	n := len(axes)
	if n == 0 || len(values) != n {
		return nil, errors.InvalidInput("radar needs one value per axis")
	}

	angle := func(i int) float64 {
		return math.Pi/2 - 2*math.Pi*float64(i)/float64(n)
	}
	point := func(i int, radius float64) plotter.XY {
		return plotter.XY{X: radius * math.Cos(angle(i)), Y: radius * math.Sin(angle(i))}
	}

	for _, frac := range []float64{0.25, 0.5, 0.75, 1.0} {
		ring := make(plotter.XYs, 0, n+1)
		for i := 0; i <= n; i++ {
			ring = append(ring, point(i%n, frac))
		}
		line, err := plotter.NewLine(ring)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = radarGridColor
		line.LineStyle.Width = vg.Points(0.5)
		p.Add(line)
	}

	for i := 0; i < n; i++ {
		spoke, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, point(i, 1.0)})
		if err != nil {
			return nil, err
		}
		spoke.LineStyle.Color = radarGridColor
		spoke.LineStyle.Width = vg.Points(0.5)
		p.Add(spoke)
	}

	data := make(plotter.XYs, n)
	for i, v := range values {
		radius := 0.0
		if ringMax > 0 {
			radius = v / ringMax
		}
		data[i] = point(i, radius)
	}
	poly, err := plotter.NewPolygon(data)
	if err != nil {
		return nil, err
	}
	poly.Color = radarFillColor
	poly.LineStyle.Color = radarLineColor
	poly.LineStyle.Width = vg.Points(1.5)
	p.Add(poly)

	labels := plotter.XYLabels{XYs: make(plotter.XYs, n), Labels: make([]string, n)}
	for i, name := range axes {
		labels.XYs[i] = point(i, 1.18)
		labels.Labels[i] = name
	}
	axisLabels, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(axisLabels)

	p.X.Min, p.X.Max = -1.6, 1.6
	p.Y.Min, p.Y.Max = -1.45, 1.35
	return p, nil
}

// DomainRadar draws the population skill domain distribution on six
// spokes, scaled so the largest share touches the outer ring
func (r *Renderer) DomainRadar(data []savant.DomainShare, outPath string) (string, error) {
	if len(data) == 0 {
		data = savant.Distribution()
	}

	axes := make([]string, len(data))
	values := make([]float64, len(data))
	ringMax := 0.0
	for i, row := range data {
		axes[i] = fmt.Sprintf("%s (%.0f%%)", row.Domain, row.Share*100)
		values[i] = row.Share
		if row.Share > ringMax {
			ringMax = row.Share
		}
	}

	p, err := radarPlot("Savant skill domain distribution", axes, values, ringMax)
	if err != nil {
		return "", errors.RenderFailed("domain radar", err)
	}
	return r.save(p, "domain radar", "domain_radar_population.png", outPath)
}

// IndividualProfile draws one case's per-domain abilities on the fixed
// six-domain spokes. Empty inputs fall back to the Padgett case.
func (r *Renderer) IndividualProfile(name string, profile map[savant.SavantDomain]float64, outPath string) (string, error) {
	if name == "" {
		name = "Jason Padgett"
	}
	if len(profile) == 0 {
		profile = savant.PadgettAbilities()
	}

	domains := savant.Domains()
	axes := make([]string, len(domains))
	values := make([]float64, len(domains))
	for i, d := range domains {
		axes[i] = string(d)
		values[i] = profile[d]
	}

	p, err := radarPlot(fmt.Sprintf("Ability profile: %s", name), axes, values, 1.0)
	if err != nil {
		return "", errors.RenderFailed("individual profile", err)
	}
	return r.save(p, "individual profile", fmt.Sprintf("profile_%s.png", slug(name)), outPath)
}
