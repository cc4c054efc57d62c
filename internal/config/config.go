package config

import (
	"math"
	"os"
	"strconv"
	"time"

	"savantfnc/internal/errors"
)

// Config represents the complete pipeline configuration. Every tunable
// constant of the analyses lives here so the domain tables stay immutable
// and the numeric assumptions are visible in one place.
type Config struct {
	Output   OutputConfig
	Figures  FigureConfig
	Stats    StatsConfig
	Genetics GeneticsConfig
	Scoring  ScoringConfig
	Server   ServerConfig
}

// OutputConfig holds file system destinations for pipeline artifacts
type OutputConfig struct {
	Dir          string // figures and reports land here
	ReportFile   string
	ReportJSON   string
	WorkbookFile string
	StatsJSON    string
}

// FigureConfig holds chart geometry and rendering settings
type FigureConfig struct {
	WidthInches   float64
	HeightInches  float64
	RenderWorkers int64 // semaphore bound for concurrent figure rendering
}

// StatsConfig holds the epidemiological assumptions behind the
// statistical analyses
type StatsConfig struct {
	Population           int     // simulated population size for the 2x2 table
	AutismPrevalence     float64 // proportion of the population with autism
	SavantInAutism       float64 // proportion of autistic individuals with savant skills
	GeneralSavantRate    float64 // savant rate outside autism
	ContinuityCorrection float64 // added to every cell when any cell is zero
	ZCritical            float64 // two-sided 95% normal quantile
	DomainSampleSize     int     // case count the domain shares are scaled to
	PairedCorrelation    float64 // assumed pre/post correlation for paired d SEs
}

// GeneticsConfig holds enrichment and variant filtering settings
type GeneticsConfig struct {
	BackgroundGenes int     // protein-coding background for enrichment
	PathwayScale    int     // genes per catalog entry when sizing a pathway
	EnrichmentAlpha float64
	MinCADD         float64 // variant filter: minimum CADD score
	MaxGnomadAF     float64 // variant filter: maximum population frequency
}

// ScoringConfig holds the response-scoring dimension weights and level cuts
type ScoringConfig struct {
	WeightDirectness float64
	WeightPrecision  float64
	WeightConfidence float64
	WeightPattern    float64
	WeightOpacity    float64
	HighCut          float64 // overall above this reads highly savant-like
	ModerateCut      float64
}

// ServerConfig holds report viewer settings
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Output:   loadOutputConfig(),
		Figures:  loadFigureConfig(),
		Stats:    loadStatsConfig(),
		Genetics: loadGeneticsConfig(),
		Scoring:  loadScoringConfig(),
		Server:   loadServerConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration with every value at its default,
// bypassing the environment. Tests and library callers use it.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:          "figures",
			ReportFile:   "analysis_report.md",
			ReportJSON:   "analysis_report.json",
			WorkbookFile: "analysis_results.xlsx",
			StatsJSON:    "stats_results.json",
		},
		Figures: FigureConfig{
			WidthInches:   8,
			HeightInches:  6,
			RenderWorkers: 4,
		},
		Stats: StatsConfig{
			Population:           1_000_000,
			AutismPrevalence:     0.015,
			SavantInAutism:       0.10,
			GeneralSavantRate:    1e-6,
			ContinuityCorrection: 0.5,
			ZCritical:            1.96,
			DomainSampleSize:     1000,
			PairedCorrelation:    0.5,
		},
		Genetics: GeneticsConfig{
			BackgroundGenes: 20000,
			PathwayScale:    100,
			EnrichmentAlpha: 0.05,
			MinCADD:         15.0,
			MaxGnomadAF:     0.01,
		},
		Scoring: ScoringConfig{
			WeightDirectness: 0.25,
			WeightPrecision:  0.25,
			WeightConfidence: 0.20,
			WeightPattern:    0.15,
			WeightOpacity:    0.15,
			HighCut:          0.7,
			ModerateCut:      0.5,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

func loadOutputConfig() OutputConfig {
	return OutputConfig{
		Dir:          getEnvOrDefault("FNC_OUTPUT_DIR", "figures"),
		ReportFile:   getEnvOrDefault("FNC_REPORT_FILE", "analysis_report.md"),
		ReportJSON:   getEnvOrDefault("FNC_REPORT_JSON", "analysis_report.json"),
		WorkbookFile: getEnvOrDefault("FNC_WORKBOOK_FILE", "analysis_results.xlsx"),
		StatsJSON:    getEnvOrDefault("FNC_STATS_JSON", "stats_results.json"),
	}
}

func loadFigureConfig() FigureConfig {
	return FigureConfig{
		WidthInches:   getEnvFloatOrDefault("FNC_FIGURE_WIDTH_IN", 8),
		HeightInches:  getEnvFloatOrDefault("FNC_FIGURE_HEIGHT_IN", 6),
		RenderWorkers: int64(getEnvIntOrDefault("FNC_RENDER_WORKERS", 4)),
	}
}

func loadStatsConfig() StatsConfig {
	return StatsConfig{
		Population:           getEnvIntOrDefault("FNC_POPULATION", 1_000_000),
		AutismPrevalence:     getEnvFloatOrDefault("FNC_AUTISM_PREV", 0.015),
		SavantInAutism:       getEnvFloatOrDefault("FNC_SAVANT_IN_AUTISM", 0.10),
		GeneralSavantRate:    getEnvFloatOrDefault("FNC_GENERAL_SAVANT_RATE", 1e-6),
		ContinuityCorrection: getEnvFloatOrDefault("FNC_CONTINUITY_CORRECTION", 0.5),
		ZCritical:            getEnvFloatOrDefault("FNC_Z_CRITICAL", 1.96),
		DomainSampleSize:     getEnvIntOrDefault("FNC_DOMAIN_SAMPLE_N", 1000),
		PairedCorrelation:    getEnvFloatOrDefault("FNC_PAIRED_R", 0.5),
	}
}

func loadGeneticsConfig() GeneticsConfig {
	return GeneticsConfig{
		BackgroundGenes: getEnvIntOrDefault("FNC_BACKGROUND_GENES", 20000),
		PathwayScale:    getEnvIntOrDefault("FNC_PATHWAY_SCALE", 100),
		EnrichmentAlpha: getEnvFloatOrDefault("FNC_ENRICHMENT_ALPHA", 0.05),
		MinCADD:         getEnvFloatOrDefault("FNC_MIN_CADD", 15.0),
		MaxGnomadAF:     getEnvFloatOrDefault("FNC_MAX_GNOMAD_AF", 0.01),
	}
}

func loadScoringConfig() ScoringConfig {
	return ScoringConfig{
		WeightDirectness: getEnvFloatOrDefault("FNC_W_DIRECTNESS", 0.25),
		WeightPrecision:  getEnvFloatOrDefault("FNC_W_PRECISION", 0.25),
		WeightConfidence: getEnvFloatOrDefault("FNC_W_CONFIDENCE", 0.20),
		WeightPattern:    getEnvFloatOrDefault("FNC_W_PATTERN", 0.15),
		WeightOpacity:    getEnvFloatOrDefault("FNC_W_OPACITY", 0.15),
		HighCut:          getEnvFloatOrDefault("FNC_SCORE_HIGH_CUT", 0.7),
		ModerateCut:      getEnvFloatOrDefault("FNC_SCORE_MODERATE_CUT", 0.5),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            getEnvOrDefault("FNC_SERVE_ADDR", ":8080"),
		ShutdownTimeout: getEnvDurationOrDefault("FNC_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func validateConfig(config *Config) error {
	if config.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Figures.WidthInches <= 0 || config.Figures.HeightInches <= 0 {
		return errors.ConfigInvalid("figure dimensions must be positive")
	}
	if config.Figures.RenderWorkers < 1 {
		return errors.ConfigInvalid("render workers must be at least 1")
	}
	if config.Stats.Population <= 0 {
		return errors.ConfigInvalid("population must be positive")
	}
	for _, p := range []float64{
		config.Stats.AutismPrevalence,
		config.Stats.SavantInAutism,
		config.Stats.GeneralSavantRate,
	} {
		if p <= 0 || p >= 1 {
			return errors.ConfigInvalid("prevalence values must be in (0, 1)")
		}
	}
	if config.Stats.ContinuityCorrection < 0 {
		return errors.ConfigInvalid("continuity correction must be non-negative")
	}
	if config.Stats.DomainSampleSize < 6 {
		return errors.ConfigInvalid("domain sample size must cover all six domains")
	}
	if config.Genetics.BackgroundGenes <= 0 || config.Genetics.PathwayScale <= 0 {
		return errors.ConfigInvalid("enrichment background and pathway scale must be positive")
	}
	sum := config.Scoring.WeightDirectness + config.Scoring.WeightPrecision +
		config.Scoring.WeightConfidence + config.Scoring.WeightPattern +
		config.Scoring.WeightOpacity
	if math.Abs(sum-1.0) > 1e-9 {
		return errors.ConfigInvalid("scoring dimension weights must sum to 1.0")
	}
	if config.Scoring.ModerateCut >= config.Scoring.HighCut {
		return errors.ConfigInvalid("moderate cut must be below high cut")
	}
	if config.Server.Addr == "" {
		return errors.ConfigInvalid("server address is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
