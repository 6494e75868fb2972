// Package config provides configuration for the catalog generator.
// An optional YAML file at the repository root overrides the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kumo-ai/kumo-skills-catalog/internal/catalog"
	"github.com/kumo-ai/kumo-skills-catalog/internal/readme"
)

// FileName is the name of the optional config file at the repository root.
const FileName = ".skillcatalog.yaml"

// Config represents the complete generator configuration.
type Config struct {
	// Output is the generated document, relative to the repository root
	Output string `yaml:"output"`
	// SkillFile is the exact file name of skill definitions
	SkillFile string `yaml:"skill_file"`
	// Title is the level-one heading of the generated document
	Title string `yaml:"title"`
	// Intro is the paragraph placed between the title and the table
	Intro string `yaml:"intro"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output:    "README.md",
		SkillFile: catalog.DefaultSkillFile,
		Title:     "Kumo Skills Catalog",
		Intro:     "Reusable [agentskills.io](https://agentskills.io) skills for Claude Code and Codex agents working with Kumo infrastructure.",
	}
}

// LoadFromDir loads FileName from root, merging it over defaults.
// If the file doesn't exist, returns the default configuration.
func LoadFromDir(root string) (*Config, error) {
	cfg, err := LoadFromPath(filepath.Join(root, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML over defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configured names can be used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output cannot be empty")
	}
	if c.SkillFile == "" {
		return errors.New("skill_file cannot be empty")
	}
	if strings.ContainsAny(c.SkillFile, `/\`) {
		return fmt.Errorf("skill_file must be a file name, not a path: %q", c.SkillFile)
	}
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("title cannot be empty")
	}
	return nil
}

// OutputPath returns the output document path resolved against root.
func (c *Config) OutputPath(root string) string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(root, filepath.FromSlash(c.Output))
}

// OutputName returns the base name of the output document, as shown in
// status messages.
func (c *Config) OutputName() string {
	return filepath.Base(filepath.FromSlash(c.Output))
}

// Header returns the static README text settings.
func (c *Config) Header() readme.Header {
	return readme.Header{
		Title: c.Title,
		Intro: strings.TrimSpace(c.Intro),
	}
}
