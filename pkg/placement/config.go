package placement

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// SearchPattern selects the candidate traversal order.
type SearchPattern string

const (
	PatternSpiral SearchPattern = "spiral"
	PatternRadial SearchPattern = "radial"
	PatternGrid   SearchPattern = "grid"
)

// Priority governs whether vertical offset passes run before, after, or
// not at all relative to the horizontal pass.
type Priority string

const (
	PriorityHorizontal Priority = "horizontal"
	PriorityVertical   Priority = "vertical"
	PriorityNearest    Priority = "nearest"
)

// GridSnapUnit is the coordinate quantum applied when RespectGridSnap is on.
const GridSnapUnit = 0.5

// Config holds the tunable placement parameters. Values written through
// UpdateConfig or per-call overrides are always sanitized first, so a
// Config held by a Resolver is valid by construction.
type Config struct {
	Enabled            bool          `yaml:"enabled"`
	SearchStepSize     float32       `yaml:"search_step_size"`
	MaxSearchDistance  float32       `yaml:"max_search_distance"`
	SearchPattern      SearchPattern `yaml:"search_pattern"`
	SearchVertical     bool          `yaml:"search_vertical"`
	VerticalStepSize   float32       `yaml:"vertical_step_size"`
	ResolutionPriority Priority      `yaml:"resolution_priority"`
	ExcludeTypes       []string      `yaml:"exclude_types"`
	RespectGridSnap    bool          `yaml:"respect_grid_snap"`

	// AnimationDuration is carried for host editors that animate the
	// move; the search itself ignores it.
	AnimationDuration time.Duration `yaml:"animation_duration"`
}

// Overrides is a partial Config: nil fields keep the base value.
type Overrides struct {
	Enabled            *bool          `yaml:"enabled"`
	SearchStepSize     *float32       `yaml:"search_step_size"`
	MaxSearchDistance  *float32       `yaml:"max_search_distance"`
	SearchPattern      *SearchPattern `yaml:"search_pattern"`
	SearchVertical     *bool          `yaml:"search_vertical"`
	VerticalStepSize   *float32       `yaml:"vertical_step_size"`
	ResolutionPriority *Priority      `yaml:"resolution_priority"`
	ExcludeTypes       []string       `yaml:"exclude_types"`
	RespectGridSnap    *bool          `yaml:"respect_grid_snap"`
	AnimationDuration  *time.Duration `yaml:"animation_duration"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:            true,
		SearchStepSize:     0.5,
		MaxSearchDistance:  10,
		SearchPattern:      PatternSpiral,
		SearchVertical:     true,
		VerticalStepSize:   1,
		ResolutionPriority: PriorityHorizontal,
		ExcludeTypes:       []string{"ground", "terrain"},
		RespectGridSnap:    true,
		AnimationDuration:  300 * time.Millisecond,
	}
}

// presets are named partial configurations merged shallowly over the
// defaults. Unknown names fall back to the plain defaults.
var presets = map[string]Overrides{
	"editor": {
		RespectGridSnap: ptr(true),
		SearchVertical:  ptr(false),
	},
	"dense": {
		SearchStepSize:    ptr(float32(0.25)),
		MaxSearchDistance: ptr(float32(20)),
		SearchPattern:     ptr(PatternGrid),
	},
	"terrain": {
		SearchVertical:     ptr(true),
		VerticalStepSize:   ptr(float32(2)),
		ResolutionPriority: ptr(PriorityVertical),
		SearchPattern:      ptr(PatternRadial),
	},
}

// Preset returns the named preset merged over the defaults, already
// sanitized. Unknown names return DefaultConfig.
func Preset(name string) Config {
	cfg := DefaultConfig()
	if o, ok := presets[name]; ok {
		cfg = cfg.apply(o)
	}
	return cfg
}

// ParseConfig unmarshals a YAML document as overrides onto the defaults.
// Fields absent from the document keep their default values.
func ParseConfig(data []byte) (Config, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Config{}, fmt.Errorf("placement: parse config: %w", err)
	}
	return DefaultConfig().apply(o), nil
}

// apply merges non-nil override fields onto c and sanitizes the result.
func (c Config) apply(o Overrides) Config {
	if o.Enabled != nil {
		c.Enabled = *o.Enabled
	}
	if o.SearchStepSize != nil {
		c.SearchStepSize = *o.SearchStepSize
	}
	if o.MaxSearchDistance != nil {
		c.MaxSearchDistance = *o.MaxSearchDistance
	}
	if o.SearchPattern != nil {
		c.SearchPattern = *o.SearchPattern
	}
	if o.SearchVertical != nil {
		c.SearchVertical = *o.SearchVertical
	}
	if o.VerticalStepSize != nil {
		c.VerticalStepSize = *o.VerticalStepSize
	}
	if o.ResolutionPriority != nil {
		c.ResolutionPriority = *o.ResolutionPriority
	}
	if o.ExcludeTypes != nil {
		c.ExcludeTypes = append([]string(nil), o.ExcludeTypes...)
	}
	if o.RespectGridSnap != nil {
		c.RespectGridSnap = *o.RespectGridSnap
	}
	if o.AnimationDuration != nil {
		c.AnimationDuration = *o.AnimationDuration
	}
	return c.sanitize()
}

// sanitize clamps numeric fields to workable minimums and replaces
// unrecognized enum values with the defaults. Invalid input is repaired,
// never rejected.
func (c Config) sanitize() Config {
	const minStep = 0.01
	if c.SearchStepSize < minStep {
		c.SearchStepSize = minStep
	}
	if c.MaxSearchDistance < 1 {
		c.MaxSearchDistance = 1
	}
	if c.VerticalStepSize < minStep {
		c.VerticalStepSize = minStep
	}
	if c.AnimationDuration < 0 {
		c.AnimationDuration = 0
	}
	switch c.SearchPattern {
	case PatternSpiral, PatternRadial, PatternGrid:
	default:
		c.SearchPattern = PatternSpiral
	}
	switch c.ResolutionPriority {
	case PriorityHorizontal, PriorityVertical, PriorityNearest:
	default:
		c.ResolutionPriority = PriorityHorizontal
	}
	return c
}

func (c Config) excludesCategory(cat string) bool {
	for _, t := range c.ExcludeTypes {
		if t == cat {
			return true
		}
	}
	return false
}

func ptr[T any](v T) *T { return &v }
