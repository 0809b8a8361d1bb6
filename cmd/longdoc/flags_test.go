package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-longdoc/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Command line parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want cliFlags
	}{
		{
			name: "defaults",
			args: nil,
			want: cliFlags{input: config.DefaultInput, output: config.DefaultOutput},
		},
		{
			name: "input and output",
			args: []string{"--input=hugoDocs/content/", "--output", "long.md"},
			want: cliFlags{
				input: "hugoDocs/content/", inputSet: true,
				output: "long.md", outputSet: true,
			},
		},
		{
			name: "html and config",
			args: []string{"--html", "long.html", "-c", "team"},
			want: cliFlags{
				input: config.DefaultInput, output: config.DefaultOutput,
				html: "long.html", htmlSet: true, config: "team",
			},
		},
		{
			name: "output control",
			args: []string{"-q", "-v", "--version"},
			want: cliFlags{
				input: config.DefaultInput, output: config.DefaultOutput,
				quiet: true, verbose: true, version: true,
			},
		},
		{
			name: "explicit default still counts as set",
			args: []string{"--output", "README.md"},
			want: cliFlags{input: config.DefaultInput, output: "README.md", outputSet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.args, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := parseFlags([]string{"--help"}, &buf)
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("parseFlags() error = %v, want ErrHelp", err)
		}
		if !strings.Contains(buf.String(), "Usage: longdoc") {
			t.Errorf("usage not printed: %q", buf.String())
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		if _, err := parseFlags([]string{"--nope"}, &bytes.Buffer{}); err == nil {
			t.Error("expected error for unknown flag")
		}
	})

	t.Run("positional argument", func(t *testing.T) {
		t.Parallel()

		_, err := parseFlags([]string{"docs/"}, &bytes.Buffer{})
		if !errors.Is(err, ErrUnexpectedArgs) {
			t.Errorf("parseFlags() error = %v, want ErrUnexpectedArgs", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyFlags - Only explicit flags override
// ---------------------------------------------------------------------------

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Input = "from-env"
	cfg.Output = "from-env.md"

	applyFlags(&cliFlags{
		input:  config.DefaultInput, // not set explicitly
		output: "from-flag.md", outputSet: true,
		html: "x.html", htmlSet: true,
	}, cfg)

	if cfg.Input != "from-env" {
		t.Errorf("Input = %q, want from-env", cfg.Input)
	}
	if cfg.Output != "from-flag.md" {
		t.Errorf("Output = %q, want from-flag.md", cfg.Output)
	}
	if cfg.HTML.Output != "x.html" {
		t.Errorf("HTML.Output = %q, want x.html", cfg.HTML.Output)
	}
}
