package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset describes fixed seed content loaded from a YAML file. Presets let
// demo environments start with recognizable groups and users instead of
// purely random content.
type Preset struct {
	Users []struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Bio      string `yaml:"bio"`
	} `yaml:"users"`
	Groups []struct {
		Title       string `yaml:"title"`
		Slug        string `yaml:"slug"`
		Description string `yaml:"description"`
	} `yaml:"groups"`
}

// LoadPreset reads and parses a seed preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path) // #nosec G304: path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read preset %s: %w", path, err)
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return &preset, nil
}
