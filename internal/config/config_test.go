package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"savantfnc/internal/errors"
)

// TestDefault_PassesValidation pins the shipped defaults to the validation
// rules so a default change that breaks an invariant fails loudly.
func TestDefault_PassesValidation(t *testing.T) {
	assert.NoError(t, validateConfig(Default()))
}

// TestLoad_MatchesDefaults catches drift between the environment loader
// defaults and Default.
func TestLoad_MatchesDefaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FNC_OUTPUT_DIR", "out")
	t.Setenv("FNC_RENDER_WORKERS", "2")
	t.Setenv("FNC_MIN_CADD", "20")
	t.Setenv("FNC_SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, int64(2), cfg.Figures.RenderWorkers)
	assert.Equal(t, 20.0, cfg.Genetics.MinCADD)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 1_000_000, cfg.Stats.Population, "untouched keys keep their defaults")
}

// TestLoad_MalformedValuesFallBack verifies that unparseable numeric and
// duration values are ignored rather than failing the load.
func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("FNC_POPULATION", "a lot")
	t.Setenv("FNC_Z_CRITICAL", "two")
	t.Setenv("FNC_SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 1_000_000, cfg.Stats.Population)
	assert.Equal(t, 1.96, cfg.Stats.ZCritical)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"zero figure width", "FNC_FIGURE_WIDTH_IN", "0"},
		{"zero render workers", "FNC_RENDER_WORKERS", "0"},
		{"negative population", "FNC_POPULATION", "-5"},
		{"prevalence above one", "FNC_AUTISM_PREV", "1.5"},
		{"negative continuity correction", "FNC_CONTINUITY_CORRECTION", "-0.5"},
		{"domain sample below domain count", "FNC_DOMAIN_SAMPLE_N", "5"},
		{"weights off balance", "FNC_W_DIRECTNESS", "0.5"},
		{"moderate cut above high cut", "FNC_SCORE_MODERATE_CUT", "0.9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()

			assert.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

// TestValidate_RequiredStrings covers rules the environment loader cannot
// trigger, since empty env values fall back to defaults.
func TestValidate_RequiredStrings(t *testing.T) {
	cfg := Default()
	cfg.Output.Dir = ""
	assert.Error(t, validateConfig(cfg))

	cfg = Default()
	cfg.Server.Addr = ""
	assert.Error(t, validateConfig(cfg))
}
