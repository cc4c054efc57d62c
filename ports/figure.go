package ports

import (
	"savantfnc/domain/savant"
	"savantfnc/domain/tms"
)

// FigureRenderer renders the static chart set. Every method accepts an
// optional dataset override (nil or empty falls back to the embedded
// tables) and an output path (empty falls back to the default name under
// the configured figures directory), writes a PNG, and returns the path
// it wrote. Existing files are overwritten silently.
type FigureRenderer interface {
	DomainRadar(data []savant.DomainShare, outPath string) (string, error)
	IndividualProfile(name string, profile map[savant.SavantDomain]float64, outPath string) (string, error)
	LesionMap(regions []savant.BrodmannRegion, outPath string) (string, error)
	Lateralization(split []savant.Lateralization, outPath string) (string, error)
	CaseTimeline(cases []savant.Case, outPath string) (string, error)
	OnsetComparison(cases []savant.Case, outPath string) (string, error)
	TuningSpectrum(profiles []savant.TuningProfile, outPath string) (string, error)
	AxisHeatmap(genes []string, outPath string) (string, error)
	EffectForest(studies []tms.Study, outPath string) (string, error)
}
