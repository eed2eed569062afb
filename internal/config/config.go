package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the viewer
type Config struct {
	Window WindowConfig `yaml:"window"`
	Table  TableConfig  `yaml:"table"`
	Loader LoaderConfig `yaml:"loader"`
	Dialog DialogConfig `yaml:"dialog"`
}

// WindowConfig describes the main window and its control row
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Width      float32 `yaml:"width"`
	Height     float32 `yaml:"height"`
	PathLabel  string  `yaml:"path_label"`
	BrowseText string  `yaml:"browse_text"`
	ReadText   string  `yaml:"read_text"`
}

// TableConfig defines the grid column widths
type TableConfig struct {
	IndexWidth  float32 `yaml:"index_width"`
	ColumnWidth float32 `yaml:"column_width"`
}

// LoaderConfig defines which files are accepted and how they are split
type LoaderConfig struct {
	Extension     string `yaml:"extension"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Delimiter     string `yaml:"delimiter"`
}

// DialogConfig defines the file dialog and warning texts
type DialogConfig struct {
	StartDir        string `yaml:"start_dir"`
	WarningTitle    string `yaml:"warning_title"`
	InvalidPathText string `yaml:"invalid_path_text"`
}

// Default parses the embedded defaults
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid default config: %w", err)
	}

	return &cfg, nil
}

// Load reads a YAML file and overlays it on the embedded defaults.
// Keys missing from the file keep their default values.
func Load(filename string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// validateConfig performs basic validation on the configuration
func validateConfig(cfg *Config) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", cfg.Window.Width, cfg.Window.Height)
	}

	if cfg.Table.IndexWidth <= 0 {
		return fmt.Errorf("table.index_width must be positive")
	}
	if cfg.Table.ColumnWidth <= 0 {
		return fmt.Errorf("table.column_width must be positive")
	}

	if !strings.HasPrefix(cfg.Loader.Extension, ".") || len(cfg.Loader.Extension) < 2 {
		return fmt.Errorf("loader.extension must start with a dot: %q", cfg.Loader.Extension)
	}

	if utf8.RuneCountInString(cfg.Loader.Delimiter) != 1 {
		return fmt.Errorf("loader.delimiter must be a single character: %q", cfg.Loader.Delimiter)
	}
	switch d := cfg.Loader.Comma(); d {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("invalid loader.delimiter: %q", d)
	}

	return nil
}

// Comma returns the delimiter as a rune
func (lc LoaderConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(lc.Delimiter)
	return r
}
