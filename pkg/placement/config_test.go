package placement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeClampsNumbers(t *testing.T) {
	cfg := Config{
		SearchStepSize:    -1,
		MaxSearchDistance: 0,
		VerticalStepSize:  0,
		AnimationDuration: -time.Second,
	}.sanitize()

	assert.Equal(t, float32(0.01), cfg.SearchStepSize)
	assert.Equal(t, float32(1), cfg.MaxSearchDistance)
	assert.Equal(t, float32(0.01), cfg.VerticalStepSize)
	assert.Equal(t, time.Duration(0), cfg.AnimationDuration)
}

func TestSanitizeRepairsEnums(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SearchPattern = "zigzag"
	cfg.ResolutionPriority = "sideways"
	cfg = cfg.sanitize()

	assert.Equal(t, PatternSpiral, cfg.SearchPattern)
	assert.Equal(t, PriorityHorizontal, cfg.ResolutionPriority)
}

func TestApplyMergesShallowly(t *testing.T) {
	base := DefaultConfig()
	got := base.apply(Overrides{
		SearchPattern:     ptr(PatternGrid),
		MaxSearchDistance: ptr(float32(25)),
	})

	assert.Equal(t, PatternGrid, got.SearchPattern)
	assert.Equal(t, float32(25), got.MaxSearchDistance)
	// Untouched fields keep their base values.
	assert.Equal(t, base.SearchStepSize, got.SearchStepSize)
	assert.Equal(t, base.ExcludeTypes, got.ExcludeTypes)
}

func TestApplySanitizesOverrides(t *testing.T) {
	got := DefaultConfig().apply(Overrides{
		SearchStepSize: ptr(float32(-5)),
		SearchPattern:  ptr(SearchPattern("bogus")),
	})

	assert.Equal(t, float32(0.01), got.SearchStepSize)
	assert.Equal(t, PatternSpiral, got.SearchPattern)
}

func TestPreset(t *testing.T) {
	dense := Preset("dense")
	assert.Equal(t, PatternGrid, dense.SearchPattern)
	assert.Equal(t, float32(0.25), dense.SearchStepSize)
	// Fields the preset does not name stay at defaults.
	assert.Equal(t, DefaultConfig().ExcludeTypes, dense.ExcludeTypes)

	assert.Equal(t, DefaultConfig(), Preset("no-such-preset"))
}

func TestParseConfigPartialDocument(t *testing.T) {
	cfg, err := ParseConfig([]byte("search_pattern: radial\nmax_search_distance: 8\n"))
	require.NoError(t, err)

	assert.Equal(t, PatternRadial, cfg.SearchPattern)
	assert.Equal(t, float32(8), cfg.MaxSearchDistance)
	assert.Equal(t, DefaultConfig().SearchStepSize, cfg.SearchStepSize)
}

func TestParseConfigBadYAML(t *testing.T) {
	_, err := ParseConfig([]byte("search_pattern: [unterminated"))
	require.Error(t, err)
}

func TestExcludesCategory(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.excludesCategory("ground"))
	assert.False(t, cfg.excludesCategory("tree"))
}
