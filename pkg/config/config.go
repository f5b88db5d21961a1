// Package config loads host-side settings for the CLI from a YAML
// file. The library core never reads configuration itself; everything
// reaches it as explicit parameters.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/numspan/numspan/pkg/types"
)

// Settings is the YAML settings file layout.
type Settings struct {
	// GroupSize is the number of digits per decimal group.
	GroupSize int `yaml:"group_size"`

	// Threshold is the minimum digit-run length before grouping applies.
	Threshold int `yaml:"threshold"`

	// Kinds restricts reporting to the named literal kinds. Empty means
	// all kinds.
	Kinds []string `yaml:"kinds,omitempty"`
}

// Default returns the standard settings.
func Default() Settings {
	return Settings{
		GroupSize: types.DefaultGroupSize,
		Threshold: types.DefaultThreshold,
	}
}

// Load reads settings from a YAML file. Absent fields keep their
// defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// Config converts the settings into a validated grouping configuration.
func (s Settings) Config() (types.Config, error) {
	cfg := types.Config{GroupSize: s.GroupSize, Threshold: s.Threshold}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// KindFilter resolves the Kinds allow-list. A nil filter admits every
// kind.
func (s Settings) KindFilter() (map[types.Kind]bool, error) {
	if len(s.Kinds) == 0 {
		return nil, nil
	}
	allow := make(map[types.Kind]bool, len(s.Kinds))
	for _, name := range s.Kinds {
		k, err := types.ParseKind(name)
		if err != nil {
			return nil, err
		}
		allow[k] = true
	}
	return allow, nil
}
