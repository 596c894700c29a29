package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "aionmotion.yaml"

type ProjectConfig struct {
	Project       string         `yaml:"project"`
	Version       int            `yaml:"version"`
	Grammar       string         `yaml:"grammar"`
	Strict        bool           `yaml:"strict"`
	ReducedMotion bool           `yaml:"reduced_motion"`
	LogLevel      string         `yaml:"log_level"`
	Database      DatabaseConfig `yaml:"database"`
	Content       ContentConfig  `yaml:"content"`
	HTTP          HTTPConfig     `yaml:"http"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type ContentConfig struct {
	Paths []string `yaml:"paths"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Project:  "aion",
		Version:  1,
		LogLevel: "info",
		HTTP:     HTTPConfig{Addr: ":8760"},
	}
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to DefaultProjectConfig when the
// file does not exist and optional is set.
func LoadOrDefault(path string, optional bool) (*ProjectConfig, error) {
	cfg, err := LoadProjectConfig(path)
	if err != nil && optional && errors.Is(err, fs.ErrNotExist) {
		return DefaultProjectConfig(), nil
	}
	return cfg, err
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", cfg.LogLevel)
	}
	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" && !SupportedDSN(dsn) {
		return fmt.Errorf("unsupported database dsn scheme: %s", dsn)
	}
	for i, path := range cfg.Content.Paths {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("content path %d is empty", i)
		}
	}
	return nil
}

func SupportedDSN(dsn string) bool {
	for _, prefix := range []string{"postgres://", "postgresql://", "sqlite://"} {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
