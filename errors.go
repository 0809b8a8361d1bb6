package longdoc

import "errors"

// Sentinel errors for library operations.
var (
	ErrFolderNotFound = errors.New("topic folder not found")
	ErrReadFolder     = errors.New("failed to list topic folder")
	ErrReadPage       = errors.New("failed to read page")
	ErrWriteDocument  = errors.New("failed to write document")
	ErrNoFolders      = errors.New("no topic folders configured")
	ErrNilDocument    = errors.New("document cannot be nil")
)

// FolderError reports a declared topic folder missing under the input root.
// It matches ErrFolderNotFound with errors.Is.
type FolderError struct {
	Path string
}

func (e *FolderError) Error() string {
	return "Folder \"" + e.Path + "\" not found."
}

func (e *FolderError) Unwrap() error {
	return ErrFolderNotFound
}
