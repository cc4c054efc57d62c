package viz

import (
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"savantfnc/domain/savant"
	"savantfnc/internal/errors"
)

func yearOf(t time.Time) float64 {
	return float64(t.Year()) + float64(t.YearDay())/365.25
}

// CaseTimeline draws one horizontal event track per case, injury
// through documentation
func (r *Renderer) CaseTimeline(cases []savant.Case, outPath string) (string, error) {
	if len(cases) == 0 {
		cases = savant.Cases()
	}

	p := plot.New()
	p.Title.Text = "Acquired savant case timelines"
	p.X.Label.Text = "Year"

	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
		points := make(plotter.XYs, len(c.Events))
		for j, e := range c.Events {
			points[j] = plotter.XY{X: yearOf(e.Date), Y: float64(i)}
		}

		track, err := plotter.NewLine(points)
		if err != nil {
			return "", errors.RenderFailed("case timeline", err)
		}
		track.LineStyle.Color = plotutil.Color(i)
		track.LineStyle.Width = vg.Points(1.5)

		marks, err := plotter.NewScatter(points)
		if err != nil {
			return "", errors.RenderFailed("case timeline", err)
		}
		marks.GlyphStyle.Color = plotutil.Color(i)
		marks.GlyphStyle.Radius = vg.Points(3)

		p.Add(track, marks)
	}
	p.NominalY(names...)

	return r.save(p, "case timeline", "case_timelines.png", outPath)
}

// OnsetComparison compares the injury-to-onset latency across cases:
// days between the injury event and the first reported ability
func (r *Renderer) OnsetComparison(cases []savant.Case, outPath string) (string, error) {
	if len(cases) == 0 {
		cases = savant.Cases()
	}

	values := make(plotter.Values, 0, len(cases))
	labels := make([]string, 0, len(cases))
	for _, c := range cases {
		days := 0.0
		if len(c.Events) >= 2 {
			days = c.Events[1].Date.Sub(c.Events[0].Date).Hours() / 24
		}
		values = append(values, days)
		labels = append(labels, c.Name)
	}

	p := plot.New()
	p.Title.Text = "Latency from injury to first reported ability"
	p.Y.Label.Text = "Days"

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return "", errors.RenderFailed("onset comparison", err)
	}
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0

	return r.save(p, "onset comparison", "onset_comparison.png", outPath)
}
