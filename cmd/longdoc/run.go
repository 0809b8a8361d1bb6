package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/styles"

	longdoc "github.com/alnah/go-longdoc"
	"github.com/alnah/go-longdoc/internal/assets"
	"github.com/alnah/go-longdoc/internal/config"
	"github.com/alnah/go-longdoc/internal/fileutil"
	"github.com/alnah/go-longdoc/internal/hints"
	"github.com/alnah/go-longdoc/internal/pipeline"
)

// outputPerm is the permission of written documents.
const outputPerm = 0o644

// execute runs the command and reports errors on env.Stderr.
// Returns the process exit code.
func execute(ctx context.Context, f *cliFlags, env *Environment) int {
	if f.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}

	err := run(ctx, f, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, formatError(err, f, env))
	}
	return exitCodeFor(err)
}

// run resolves the configuration, assembles the document and writes it.
func run(ctx context.Context, f *cliFlags, env *Environment) error {
	warnUnknownEnvVars(env)

	cfg, err := resolveConfig(f, env)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, f)
	logger.Debug("resolved configuration", "input", cfg.Input, "output", cfg.Output, "folders", len(cfg.Folders))

	asm := longdoc.NewAssembler(
		longdoc.WithFs(env.Fs),
		longdoc.WithFolders(cfg.Folders),
		longdoc.WithIntro(cfg.Intro),
		longdoc.WithLogger(logger),
	)

	doc, err := asm.Assemble(ctx, cfg.Input)
	if err != nil {
		return err
	}

	if err := writeDocument(env, cfg.Output, []byte(doc.Markdown())); err != nil {
		return err
	}
	logger.Info("wrote document", "path", cfg.Output, "pages", doc.PageCount())

	if cfg.HTML.Output == "" {
		return nil
	}

	renderer, err := longdoc.NewHTMLRenderer(env.Fs, longdoc.HTMLOptions{
		Title:     htmlTitle(cfg.HTML),
		Style:     cfg.HTML.Style,
		CodeStyle: cfg.HTML.CodeStyle,
		AssetPath: cfg.HTML.AssetPath,
	})
	if err != nil {
		return err
	}

	page, err := renderer.Render(ctx, doc)
	if err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	if err := writeDocument(env, cfg.HTML.Output, page); err != nil {
		return err
	}
	logger.Info("wrote HTML", "path", cfg.HTML.Output)

	return nil
}

// resolveConfig merges defaults, the config file, env vars and flags, in
// increasing order of precedence, then validates the result.
func resolveConfig(f *cliFlags, env *Environment) (*config.Config, error) {
	ec := loadEnvConfig(env)

	configName := f.config
	if configName == "" {
		configName = ec.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(ec, cfg)
	applyFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns the progress logger: info by default, debug when
// verbose, errors only when quiet.
func newLogger(w io.Writer, f *cliFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// writeDocument writes data to path atomically.
func writeDocument(env *Environment, path string, data []byte) error {
	if err := fileutil.WriteFileAtomic(env.Fs, path, data, outputPerm); err != nil {
		return fmt.Errorf("%w: %s: %w", longdoc.ErrWriteDocument, path, err)
	}
	return nil
}

// htmlTitle returns the configured title, or the output file name.
func htmlTitle(h config.HTMLConfig) string {
	if h.Title != "" {
		return h.Title
	}
	return filepath.Base(h.Output)
}

// formatError returns the error message with an actionable hint appended
// when one applies.
func formatError(err error, f *cliFlags, env *Environment) string {
	msg := err.Error()

	var folderErr *longdoc.FolderError
	switch {
	case errors.As(err, &folderErr):
		return msg + hints.ForFolderNotFound()
	case errors.Is(err, config.ErrConfigNotFound):
		name := f.config
		if name == "" {
			name = env.Getenv("LONGDOC_CONFIG")
		}
		var searched []string
		if name != "" && !config.IsFilePath(name) {
			searched = config.SearchPaths(name)
		}
		return msg + hints.ForConfigNotFound(searched)
	case errors.Is(err, config.ErrInvalidFolder), errors.Is(err, config.ErrNoFolders):
		return msg + hints.ForInvalidFolder()
	case errors.Is(err, pipeline.ErrCodeStyle):
		return msg + hints.ForStyleNotFound(styles.Names())
	case errors.Is(err, assets.ErrStyleNotFound):
		return msg + hints.ForStyleNotFound([]string{assets.DefaultStyleName})
	case errors.Is(err, longdoc.ErrWriteDocument):
		return msg + hints.ForOutputDirectory()
	}
	return msg
}
