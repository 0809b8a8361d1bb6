package main

import (
	"errors"
	"os"

	longdoc "github.com/alnah/go-longdoc"
	"github.com/alnah/go-longdoc/internal/assets"
	"github.com/alnah/go-longdoc/internal/config"
	"github.com/alnah/go-longdoc/internal/pipeline"
)

// Exit codes for the longdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing topic folder, read or write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, longdoc.ErrFolderNotFound) ||
		errors.Is(err, longdoc.ErrReadFolder) ||
		errors.Is(err, longdoc.ErrReadPage) ||
		errors.Is(err, longdoc.ErrWriteDocument) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrNoFolders) ||
		errors.Is(err, config.ErrInvalidFolder) ||
		errors.Is(err, longdoc.ErrNoFolders) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, pipeline.ErrCodeStyle) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
