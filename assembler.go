package longdoc

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/alnah/go-longdoc/internal/config"
	"github.com/alnah/go-longdoc/internal/fileutil"
	"github.com/alnah/go-longdoc/internal/pipeline"
)

// DefaultIntro is the sentence placed before the index.
const DefaultIntro = config.DefaultIntro

// DefaultFolders returns the topic folders of the Hugo documentation, in
// document order.
func DefaultFolders() []string {
	return slices.Clone(config.DefaultFolders)
}

// Assembler walks the topic folders under a root and builds the combined
// document. Create with NewAssembler; an Assembler holds no per-run state and
// may be reused.
type Assembler struct {
	fs      afero.Fs
	folders []string
	intro   string
	logger  *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithFs sets the filesystem pages are read from. Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(a *Assembler) {
		if fsys != nil {
			a.fs = fsys
		}
	}
}

// WithFolders sets the topic folders, in document order.
func WithFolders(folders []string) Option {
	return func(a *Assembler) {
		a.folders = slices.Clone(folders)
	}
}

// WithIntro sets the sentence placed before the index.
func WithIntro(intro string) Option {
	return func(a *Assembler) {
		a.intro = intro
	}
}

// WithLogger sets the logger for progress messages. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAssembler creates an Assembler with the Hugo defaults.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		fs:      afero.NewOsFs(),
		folders: DefaultFolders(),
		intro:   DefaultIntro,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble reads every topic folder under root and returns the combined
// document. A missing folder aborts the run with a *FolderError; nothing of
// the partial document is returned. The context is checked between files.
func (a *Assembler) Assemble(ctx context.Context, root string) (*Document, error) {
	if len(a.folders) == 0 {
		return nil, ErrNoFolders
	}

	doc := &Document{
		Intro:    a.intro,
		Sections: make([]Section, 0, len(a.folders)),
	}
	for _, folder := range a.folders {
		section, err := a.assembleFolder(ctx, root, folder)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section)
	}

	a.logger.Debug("assembled document", "sections", len(doc.Sections), "pages", doc.PageCount())
	return doc, nil
}

func (a *Assembler) assembleFolder(ctx context.Context, root, folder string) (Section, error) {
	dir := filepath.Join(root, folder)
	if !fileutil.DirExists(a.fs, dir) {
		return Section{}, &FolderError{Path: dir}
	}

	// afero.ReadDir returns entries sorted by name.
	infos, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return Section{}, fmt.Errorf("%w: %s: %v", ErrReadFolder, dir, err)
	}

	section := Section{Folder: folder}
	used := make(weightSet)

	for _, info := range infos {
		if err := ctx.Err(); err != nil {
			return Section{}, err
		}

		path := filepath.Join(dir, info.Name())
		if info.IsDir() {
			a.logger.Info("skipping directory", "path", path)
			continue
		}

		a.logger.Info("reading", "path", path)
		page, err := a.readPage(folder, info.Name(), path)
		if err != nil {
			return Section{}, err
		}

		rendered := RenderPage(page, used.claim(page.Weight))
		if rendered.Unbalanced() {
			a.logger.Debug("page ends inside template construct", "path", path, "state", rendered.OpenState.String())
		}

		section.Pages = append(section.Pages, rendered)
		section.Entries = append(section.Entries, IndexEntry{
			Anchor: rendered.Anchor,
			Label:  page.Label(),
			Weight: rendered.Weight,
		})
	}

	slices.SortFunc(section.Pages, func(x, y RenderedPage) int { return cmp.Compare(x.Weight, y.Weight) })
	slices.SortFunc(section.Entries, func(x, y IndexEntry) int { return cmp.Compare(x.Weight, y.Weight) })

	return section, nil
}

func (a *Assembler) readPage(folder, name, path string) (Page, error) {
	f, err := a.fs.Open(path)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s: %v", ErrReadPage, path, err)
	}
	defer func() { _ = f.Close() }()

	page, err := ParsePage(folder, name, f)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s: %v", ErrReadPage, path, err)
	}
	return page, nil
}

// ParsePage reads one page: front matter fields up to the second divider,
// then the raw body.
func ParsePage(folder, file string, r io.Reader) (Page, error) {
	fm, body, err := pipeline.SplitPage(r)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Folder:    folder,
		File:      file,
		Title:     fm.Title,
		LinkTitle: fm.LinkTitle,
		Weight:    fm.Weight,
		Body:      body,
	}, nil
}

// RenderPage quotes the page body, starting from StatePlain, rewrites its
// site links and files it under weight.
func RenderPage(page Page, weight int) RenderedPage {
	quoted, state := pipeline.QuoteBody(pipeline.NormalizeText(page.Body))
	return RenderedPage{
		Anchor:    page.Anchor(),
		Title:     page.Title,
		Weight:    weight,
		Body:      pipeline.RewriteLinks(quoted),
		OpenState: state,
	}
}
