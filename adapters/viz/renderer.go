// Package viz renders the static figure set with gonum/plot. Every
// renderer method satisfies the ports.FigureRenderer contract: dataset
// overrides fall back to the embedded domain tables, empty output paths
// fall back to a default name under the configured figures directory,
// and the absolute written path comes back on success.
package viz

import (
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"savantfnc/internal/config"
	"savantfnc/internal/errors"
)

// Renderer writes the chart set as PNG files
type Renderer struct {
	cfg *config.Config
}

// NewRenderer creates a renderer over the pipeline configuration
func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// outPath resolves the destination for one figure and ensures its
// parent directory exists. Existing files are overwritten by Save.
func (r *Renderer) outPath(defaultName, override string) (string, error) {
	path := override
	if path == "" {
		path = filepath.Join(r.cfg.Output.Dir, defaultName)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	return abs, nil
}

// save writes the plot at the configured geometry and returns the
// absolute path it wrote
func (r *Renderer) save(p *plot.Plot, figure, defaultName, override string) (string, error) {
	out, err := r.outPath(defaultName, override)
	if err != nil {
		return "", errors.RenderFailed(figure, err)
	}
	w := vg.Length(r.cfg.Figures.WidthInches) * vg.Inch
	h := vg.Length(r.cfg.Figures.HeightInches) * vg.Inch
	if err := p.Save(w, h, out); err != nil {
		return "", errors.RenderFailed(figure, err)
	}
	return out, nil
}

// slug lowercases a display name into a file-name fragment
func slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(s, " ", "_")
}
