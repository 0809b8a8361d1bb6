package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-longdoc/internal/config"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "LONGDOC_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // LONGDOC_CONFIG: config file name or path
	Input      string // LONGDOC_INPUT: root containing the topic folders
	Output     string // LONGDOC_OUTPUT: combined Markdown file
	HTML       string // LONGDOC_HTML: HTML rendition file
}

// knownEnvVars lists valid LONGDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"LONGDOC_CONFIG": true,
	"LONGDOC_INPUT":  true,
	"LONGDOC_OUTPUT": true,
	"LONGDOC_HTML":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(env *Environment) *envConfig {
	return &envConfig{
		ConfigPath: env.Getenv("LONGDOC_CONFIG"),
		Input:      env.Getenv("LONGDOC_INPUT"),
		Output:     env.Getenv("LONGDOC_OUTPUT"),
		HTML:       env.Getenv("LONGDOC_HTML"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized LONGDOC_* variable.
// Helps catch typos like LONGDOC_OUPUT.
func warnUnknownEnvVars(env *Environment) {
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(env.Stderr, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with the environment.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via applyFlags)
func applyEnvConfig(ec *envConfig, cfg *config.Config) {
	if ec.Input != "" {
		cfg.Input = ec.Input
	}
	if ec.Output != "" {
		cfg.Output = ec.Output
	}
	if ec.HTML != "" {
		cfg.HTML.Output = ec.HTML
	}
}
