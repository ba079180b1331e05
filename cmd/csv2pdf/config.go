package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ai4bordon/csv2pdf-cli/internal/fileutil"
	"github.com/ai4bordon/csv2pdf-cli/internal/yamlutil"
)

// Config holds all configuration for receipt generation.
// Every field is optional; command-line flags take precedence.
type Config struct {
	Input      string     `yaml:"input"`      // CSV path
	Template   string     `yaml:"template"`   // template path
	OutputDir  string     `yaml:"outputDir"`  // directory for generated PDFs
	Delimiter  string     `yaml:"delimiter"`  // "," or ";" (empty = auto-detect)
	Open       bool       `yaml:"open"`       // open the PDF after generation
	Timeout    string     `yaml:"timeout"`    // e.g. "45s"
	DateFormat string     `yaml:"dateFormat"` // tokens: YYYY-MM-DD HH:mm:ss
	Page       PageConfig `yaml:"page"`
}

// PageConfig defines PDF page layout options.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// DefaultConfig returns a neutral configuration; all effective defaults live
// in the flag definitions.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/csv2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "csv2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
