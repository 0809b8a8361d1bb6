package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-longdoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrNoFolders       = errors.New("no topic folders configured")
	ErrInvalidFolder   = errors.New("invalid topic folder name")
)

// Field length limits.
const (
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxIntroLength      = 2000 // One introductory paragraph
	MaxFolderNameLength = 255  // NAME_MAX
	MaxFolders          = 200
	MaxStyleNameLength  = 50
)

// Default values, matching the layout of the Hugo documentation repository.
const (
	DefaultInput     = "./"
	DefaultOutput    = "README.md"
	DefaultCodeStyle = "github"
	DefaultIntro     = "This is the documentation of [Hugo](http://gohugo.io/) condensed into one long page. " +
		"I did this to make the documentation easier to search and navigate. " +
		"This page was automatically generated using the documentation available at Hugo's GitHub repository."
)

// DefaultFolders lists the topic folders in the order they appear in the
// combined document.
var DefaultFolders = []string{
	"about",
	"getting-started",
	"themes",
	"content-management",
	"templates",
	"functions",
	"variables",
	"commands",
	"troubleshooting",
	"tools",
	"hosting-and-deployment",
	"contribute",
}

// Config holds all configuration for one document build.
type Config struct {
	Input   string     `yaml:"input"`   // Root containing the topic folders
	Output  string     `yaml:"output"`  // Combined Markdown file
	Intro   string     `yaml:"intro"`   // Sentence placed before the index
	Folders []string   `yaml:"folders"` // Topic folders, in document order
	HTML    HTMLConfig `yaml:"html"`
}

// HTMLConfig defines the optional HTML rendition.
type HTMLConfig struct {
	Output    string `yaml:"output"`    // Empty = no HTML rendition
	Title     string `yaml:"title"`     // <title> of the page (default: output file name)
	Style     string `yaml:"style"`     // Stylesheet name (default: longdoc)
	CodeStyle string `yaml:"codeStyle"` // Chroma style for fenced code (default: github)
	AssetPath string `yaml:"assetPath"` // Custom asset directory, empty = embedded
}

// Validate checks folder names and field lengths. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input", c.Input, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output", c.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("intro", c.Intro, MaxIntroLength); err != nil {
		return err
	}

	if len(c.Folders) == 0 {
		return ErrNoFolders
	}
	if len(c.Folders) > MaxFolders {
		return fmt.Errorf("folders: %d entries (max %d)", len(c.Folders), MaxFolders)
	}
	seen := make(map[string]bool, len(c.Folders))
	for i, folder := range c.Folders {
		field := fmt.Sprintf("folders[%d]", i)
		if err := validateFolderName(field, folder); err != nil {
			return err
		}
		if seen[folder] {
			return fmt.Errorf("%w: %s: duplicate %q", ErrInvalidFolder, field, folder)
		}
		seen[folder] = true
	}

	if err := validateFieldLength("html.output", c.HTML.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("html.title", c.HTML.Title, MaxIntroLength); err != nil {
		return err
	}
	if err := validateFieldLength("html.style", c.HTML.Style, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("html.codeStyle", c.HTML.CodeStyle, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("html.assetPath", c.HTML.AssetPath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFolderName rejects names that would escape the input root or
// produce ambiguous anchors.
func validateFolderName(field, name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %s: %q", ErrInvalidFolder, field, name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %s: %q contains a path separator", ErrInvalidFolder, field, name)
	}
	return validateFieldLength(field, name, MaxFolderNameLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:   DefaultInput,
		Output:  DefaultOutput,
		Intro:   DefaultIntro,
		Folders: append([]string(nil), DefaultFolders...),
		HTML: HTMLConfig{
			CodeStyle: DefaultCodeStyle,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their defaults.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if IsFilePath(nameOrPath) {
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

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsFilePath returns true if the string looks like a file path rather than a
// config name.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths returns the locations tried for a config name, in order:
// ./<name>.yaml, ./<name>.yml, then the same names under
// <user config dir>/go-longdoc/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-longdoc", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing path from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
