package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sudoku-engine/pkg/constants"
)

type Config struct {
	Port     string
	DBPath   string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", constants.DefaultPort),
		DBPath:   getEnv("PUZZLES_DB", "puzzles.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// Preset describes one batch-generation job in a preset file.
type Preset struct {
	Name       string `yaml:"name"`
	Dimension  int    `yaml:"dimension"` // subgrid size k
	Difficulty string `yaml:"difficulty"`
	Count      int    `yaml:"count"`
	Seed       int64  `yaml:"seed"`
}

// PresetFile is the top-level structure of a yaml preset file.
type PresetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets reads a batch-generation preset file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	var file PresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}
	for i, p := range file.Presets {
		if p.Dimension == 0 {
			file.Presets[i].Dimension = constants.DefaultSubgridSize
		}
		if p.Count == 0 {
			file.Presets[i].Count = 1
		}
	}
	return file.Presets, nil
}
