// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all caseworks settings. Consuming code either constructs a
// Config in Go and passes it to New(), or places a caseworks.yaml at the
// workspace root and calls LoadConfig(). Every component receives the
// Config explicitly; there is no process-wide path state, so tests can run
// against temporary directories.
type Config struct {
	// BaseDir is the workspace root (default ".").
	BaseDir string `yaml:"base_dir"`

	// CasesDir is the directory holding case folders
	// (default "<base_dir>/案例").
	CasesDir string `yaml:"cases_dir"`

	// MethodologyFile is the path to the three-tier methodology document.
	// When set, the file must exist. When empty, the workspace default
	// location is tried and the embedded methodology is used as fallback.
	MethodologyFile string `yaml:"methodology_file"`

	// ContentExtensions are the material extensions whose files are decoded
	// into prompt content (default [".txt", ".md"]).
	ContentExtensions []string `yaml:"content_extensions"`

	// ListingExtensions are additional material extensions that are
	// discovered and counted but never decoded
	// (default [".docx", ".doc", ".pdf"]).
	ListingExtensions []string `yaml:"listing_extensions"`

	// Generator selects and configures the text-generation backend.
	Generator GeneratorConfig `yaml:"generator"`

	// ServerAddr is the listen address for the static server (default ":8000").
	ServerAddr string `yaml:"server_addr"`

	// LogDir is the directory for per-run pipeline logs
	// (default "<base_dir>/.caseworks"). Empty after defaults only when
	// explicitly set to "-", which disables the log sink.
	LogDir string `yaml:"log_dir"`
}

// GeneratorConfig selects the text-generation backend.
type GeneratorConfig struct {
	// Backend is "template" (fixed example report, no network) or "gemini".
	Backend string `yaml:"backend"`

	// Model is the model name for the gemini backend
	// (default "gemini-2.5-flash").
	Model string `yaml:"model"`
}

func (c *Config) applyDefaults() {
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
	if c.CasesDir == "" {
		c.CasesDir = filepath.Join(c.BaseDir, casesDirName)
	}
	if len(c.ContentExtensions) == 0 {
		c.ContentExtensions = []string{".txt", ".md"}
	}
	if len(c.ListingExtensions) == 0 {
		c.ListingExtensions = []string{".docx", ".doc", ".pdf"}
	}
	if c.Generator.Backend == "" {
		c.Generator.Backend = "template"
	}
	if c.Generator.Model == "" {
		c.Generator.Model = "gemini-2.5-flash"
	}
	if c.ServerAddr == "" {
		c.ServerAddr = ":8000"
	}
	switch c.LogDir {
	case "":
		c.LogDir = filepath.Join(c.BaseDir, ".caseworks")
	case "-":
		c.LogDir = ""
	}
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a configuration YAML file and returns a Config with
// defaults applied.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}
