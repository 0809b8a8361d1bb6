package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func page(title, body string) string {
	return "---\ntitle: " + title + "\n---\n" + body
}

// twoFolderTree is a minimal input tree used with a matching config.
func twoFolderTree() map[string]string {
	return map[string]string{
		"/docs/about/intro.md":   page("Intro", "Hello {{ .Foo }} world\n"),
		"/docs/about/more.md":    page("More", "See [intro](/about/intro/).\n"),
		"/docs/commands/hugo.md": page("hugo", "Build the site.\n"),
		"/out/":                  "",
	}
}

// writeConfigFile writes a config file on disk and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "longdoc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const twoFolderConfig = `folders:
  - about
  - commands
intro: "Everything in one page."
`

// ---------------------------------------------------------------------------
// TestExecute - End-to-end runs over an in-memory tree
// ---------------------------------------------------------------------------

func TestExecute_WritesDocument(t *testing.T) {
	t.Parallel()

	env, _, stderr := newTestEnv(t, nil, twoFolderTree())
	cfgPath := writeConfigFile(t, twoFolderConfig)

	code := execute(context.Background(), &cliFlags{
		input: "/docs", inputSet: true,
		output: "/out/README.md", outputSet: true,
		config: cfgPath,
	}, env)
	if code != ExitSuccess {
		t.Fatalf("execute() = %d, want %d; stderr:\n%s", code, ExitSuccess, stderr.String())
	}

	data, err := afero.ReadFile(env.Fs, "/out/README.md")
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	got := string(data)

	for _, want := range []string{
		"Everything in one page.\n# Index\n\n## about\n\n",
		"  * <a href=\"#about.intro.md\">Intro</a>\n  * <a href=\"#about.more.md\">More</a>\n",
		"\n## commands\n\n  * <a href=\"#commands.hugo.md\">hugo</a>\n",
		"<a name=\"about.intro.md\"></a>\n\n# Intro\n\nHello \n```\n{{ .Foo }}\n```\n world\n",
		"See [intro](#about.intro.md).\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}

	if !strings.Contains(stderr.String(), "msg=reading path=/docs/about/intro.md") {
		t.Errorf("expected progress log, got:\n%s", stderr.String())
	}
}

func TestExecute_HTML(t *testing.T) {
	t.Parallel()

	env, _, stderr := newTestEnv(t, nil, twoFolderTree())
	cfgPath := writeConfigFile(t, twoFolderConfig)

	code := execute(context.Background(), &cliFlags{
		input: "/docs", inputSet: true,
		output: "/out/README.md", outputSet: true,
		html: "/out/long.html", htmlSet: true,
		config: cfgPath,
	}, env)
	if code != ExitSuccess {
		t.Fatalf("execute() = %d; stderr:\n%s", code, stderr.String())
	}

	data, err := afero.ReadFile(env.Fs, "/out/long.html")
	if err != nil {
		t.Fatalf("reading HTML: %v", err)
	}
	for _, want := range []string{"<title>long.html</title>", `id="about.intro.md"`, `href="#commands.hugo.md"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestExecute_EnvOverridesConfig(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfigFile(t, twoFolderConfig+"input: /wrong\noutput: /wrong/out.md\n")
	env, _, stderr := newTestEnv(t, map[string]string{
		"LONGDOC_CONFIG": cfgPath,
		"LONGDOC_INPUT":  "/docs",
		"LONGDOC_OUTPUT": "/out/env.md",
	}, twoFolderTree())

	f, err := parseFlags(nil, stderr)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if code := execute(context.Background(), f, env); code != ExitSuccess {
		t.Fatalf("execute() = %d; stderr:\n%s", code, stderr.String())
	}
	if ok, _ := afero.Exists(env.Fs, "/out/env.md"); !ok {
		t.Error("expected output at LONGDOC_OUTPUT path")
	}
}

func TestExecute_FlagsOverrideEnv(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfigFile(t, twoFolderConfig)
	env, _, stderr := newTestEnv(t, map[string]string{
		"LONGDOC_INPUT":  "/docs",
		"LONGDOC_OUTPUT": "/out/env.md",
	}, twoFolderTree())

	f, err := parseFlags([]string{"-c", cfgPath, "--output", "/out/flag.md"}, stderr)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if code := execute(context.Background(), f, env); code != ExitSuccess {
		t.Fatalf("execute() = %d; stderr:\n%s", code, stderr.String())
	}
	if ok, _ := afero.Exists(env.Fs, "/out/flag.md"); !ok {
		t.Error("expected output at --output path")
	}
	if ok, _ := afero.Exists(env.Fs, "/out/env.md"); ok {
		t.Error("env output path should be overridden by the flag")
	}
}

// ---------------------------------------------------------------------------
// TestExecute_Errors - Diagnostics and exit codes
// ---------------------------------------------------------------------------

func TestExecute_MissingFolder(t *testing.T) {
	t.Parallel()

	env, _, stderr := newTestEnv(t, nil, map[string]string{"/docs/about/a.md": page("A", "")})

	code := execute(context.Background(), &cliFlags{
		input: "/docs", inputSet: true,
		output: "/docs/README.md", outputSet: true,
	}, env)

	if code != ExitIO {
		t.Errorf("execute() = %d, want %d", code, ExitIO)
	}
	msg := stderr.String()
	if !strings.Contains(msg, `Folder "/docs/getting-started" not found.`) {
		t.Errorf("stderr missing folder message:\n%s", msg)
	}
	if !strings.Contains(msg, "hint: use --input to specify the input path") {
		t.Errorf("stderr missing hint:\n%s", msg)
	}
	if ok, _ := afero.Exists(env.Fs, "/docs/README.md"); ok {
		t.Error("no output must be written when a folder is missing")
	}
}

func TestExecute_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flags      *cliFlags
		configYAML string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "config not found",
			flags:      &cliFlags{config: "/nonexistent/longdoc.yaml"},
			wantCode:   ExitUsage,
			wantStderr: "hint: use --config",
		},
		{
			name:       "invalid folder in config",
			flags:      &cliFlags{},
			configYAML: "folders: [\"../etc\"]\n",
			wantCode:   ExitUsage,
			wantStderr: "hint: folders are plain directory names",
		},
		{
			name: "output parent missing",
			flags: &cliFlags{
				input: "/docs", inputSet: true,
				output: "/missing/README.md", outputSet: true,
			},
			configYAML: twoFolderConfig,
			wantCode:   ExitIO,
			wantStderr: "hint: check parent directory",
		},
		{
			name: "unknown code style",
			flags: &cliFlags{
				input: "/docs", inputSet: true,
				output: "/out/README.md", outputSet: true,
				html: "/out/x.html", htmlSet: true,
			},
			configYAML: twoFolderConfig + "html:\n  codeStyle: no-such-style\n",
			wantCode:   ExitUsage,
			wantStderr: "available:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := newTestEnv(t, nil, twoFolderTree())
			if tt.configYAML != "" {
				tt.flags.config = writeConfigFile(t, tt.configYAML)
			}

			code := execute(context.Background(), tt.flags, env)
			if code != tt.wantCode {
				t.Errorf("execute() = %d, want %d; stderr:\n%s", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestExecute_CancelledContext(t *testing.T) {
	t.Parallel()

	env, _, _ := newTestEnv(t, nil, twoFolderTree())
	cfgPath := writeConfigFile(t, twoFolderConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := execute(ctx, &cliFlags{
		input: "/docs", inputSet: true,
		output: "/out/README.md", outputSet: true,
		config: cfgPath,
	}, env)

	if code != ExitGeneral {
		t.Errorf("execute() = %d, want %d", code, ExitGeneral)
	}
	if ok, _ := afero.Exists(env.Fs, "/out/README.md"); ok {
		t.Error("no output must be written after cancellation")
	}
}

// ---------------------------------------------------------------------------
// TestExecute_OutputControl - Version, quiet, verbose
// ---------------------------------------------------------------------------

func TestExecute_Version(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv(t, nil, nil)

	if code := execute(context.Background(), &cliFlags{version: true}, env); code != ExitSuccess {
		t.Errorf("execute() = %d, want %d", code, ExitSuccess)
	}
	if !strings.HasPrefix(stdout.String(), "longdoc ") {
		t.Errorf("stdout = %q, want version line", stdout.String())
	}
}

func TestExecute_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		quiet       bool
		verbose     bool
		wantReading bool
		wantDebug   bool
	}{
		{name: "default", wantReading: true},
		{name: "quiet", quiet: true},
		{name: "verbose", verbose: true, wantReading: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := newTestEnv(t, nil, twoFolderTree())
			code := execute(context.Background(), &cliFlags{
				input: "/docs", inputSet: true,
				output: "/out/README.md", outputSet: true,
				config:  writeConfigFile(t, twoFolderConfig),
				quiet:   tt.quiet,
				verbose: tt.verbose,
			}, env)
			if code != ExitSuccess {
				t.Fatalf("execute() = %d; stderr:\n%s", code, stderr.String())
			}

			out := stderr.String()
			if got := strings.Contains(out, "msg=reading"); got != tt.wantReading {
				t.Errorf("reading logged = %v, want %v\n%s", got, tt.wantReading, out)
			}
			if got := strings.Contains(out, "level=DEBUG"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v\n%s", got, tt.wantDebug, out)
			}
		})
	}
}
