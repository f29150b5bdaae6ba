package ioplacer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the full set of recognised Parameters from SPEC_FULL.md §6.2.
type Config struct {
	InputDefFile  string `yaml:"inputDefFile"`
	OutputDefFile string `yaml:"outputDefFile"`

	HorizontalMetalLayer int `yaml:"horizontalMetalLayer"`
	VerticalMetalLayer   int `yaml:"verticalMetalLayer"`

	ReturnHPWL bool `yaml:"returnHPWL"`

	SlotsPerSection     float64 `yaml:"slotsPerSection"`
	SlotsIncreaseFactor float64 `yaml:"slotsIncreaseFactor"`
	UsagePerSection     float64 `yaml:"usagePerSection"`
	UsageIncreaseFactor float64 `yaml:"usageIncreaseFactor"`
	ForcePinSpread      bool    `yaml:"forcePinSpread"`

	BlockagesFile string `yaml:"blockagesFile"`
}

// HorizontalMetalLayerName formats Config.HorizontalMetalLayer as the
// "Metal<N>" layer name string expected by a Writer.
func (c Config) HorizontalMetalLayerName() string { return metalLayerName(c.HorizontalMetalLayer) }

// VerticalMetalLayerName formats Config.VerticalMetalLayer the same way.
func (c Config) VerticalMetalLayerName() string { return metalLayerName(c.VerticalMetalLayer) }

func metalLayerName(n int) string { return fmt.Sprintf("Metal%d", n) }

// DefaultConfig returns the Parameters defaults from SPEC_FULL.md §6.2.
func DefaultConfig() Config {
	return Config{
		SlotsPerSection:     200,
		SlotsIncreaseFactor: 0.01,
		UsagePerSection:     0.8,
		UsageIncreaseFactor: 0.01,
		ForcePinSpread:      true,
	}
}

// LoadConfig reads a YAML configuration file, overlaying its fields
// onto DefaultConfig so that a file only needs to name the parameters
// it overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, newError(InvalidConfiguration, fmt.Errorf("reading config %s: %w", path, err))
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, newError(InvalidConfiguration, fmt.Errorf("parsing config %s: %w", path, err))
	}
	return cfg, nil
}
