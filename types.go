package longdoc

import (
	"io"
	"strings"

	"github.com/alnah/go-longdoc/internal/pipeline"
)

// ScanState is the quoting scanner state left at the end of a page body.
type ScanState = pipeline.State

// Scanner states, re-exported for callers inspecting RenderedPage.OpenState.
const (
	StatePlain   = pipeline.StatePlain
	StateInSpan  = pipeline.StateInSpan
	StateInBlock = pipeline.StateInBlock
)

// DefaultWeight is the ordering weight of a page that declares none.
const DefaultWeight = pipeline.DefaultWeight

// Page is one source document.
type Page struct {
	Folder    string // Topic folder the page was read from
	File      string // File name within the folder, extension included
	Title     string
	LinkTitle string // Overrides Title in the index when set
	Weight    int    // Declared weight, DefaultWeight when absent
	Body      string // Raw text after the front matter
}

// Anchor returns the in-document anchor name: "<folder>.<file>".
func (p Page) Anchor() string {
	return p.Folder + "." + p.File
}

// Label returns the text shown for the page in the index.
func (p Page) Label() string {
	if p.LinkTitle != "" {
		return p.LinkTitle
	}
	return p.Title
}

// RenderedPage is a page ready for concatenation.
type RenderedPage struct {
	Anchor    string
	Title     string
	Weight    int       // Disambiguated weight, unique within the folder
	Body      string    // Quoted body with rewritten links
	OpenState ScanState // Scanner state after the last line
}

// Unbalanced reports whether the page body ended inside a template construct.
func (r RenderedPage) Unbalanced() bool {
	return r.OpenState != StatePlain
}

// Markdown returns the named anchor, the heading and the body.
func (r RenderedPage) Markdown() string {
	return `<a name="` + r.Anchor + `"></a>` + "\n\n# " + r.Title + "\n\n" + r.Body
}

// IndexEntry links to a rendered page from the index.
type IndexEntry struct {
	Anchor string
	Label  string
	Weight int // Same disambiguated weight as the rendered page
}

// Markdown returns the entry as one bulleted list line.
func (e IndexEntry) Markdown() string {
	return `  * <a href="#` + e.Anchor + `">` + e.Label + "</a>\n"
}

// Section holds one folder's index entries and pages, both ordered by weight.
type Section struct {
	Folder  string
	Entries []IndexEntry
	Pages   []RenderedPage
}

// Document is the combined output of one run.
type Document struct {
	Intro    string
	Sections []Section
}

// PageCount returns the number of pages across all sections.
func (d *Document) PageCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Pages)
	}
	return n
}

// Markdown renders the intro line, the index and every page in order.
func (d *Document) Markdown() string {
	var b strings.Builder

	b.WriteString(d.Intro)
	b.WriteString("\n")

	b.WriteString("# Index\n")
	for _, s := range d.Sections {
		b.WriteString("\n## ")
		b.WriteString(s.Folder)
		b.WriteString("\n\n")
		for _, e := range s.Entries {
			b.WriteString(e.Markdown())
		}
	}

	for _, s := range d.Sections {
		for _, p := range s.Pages {
			b.WriteString(p.Markdown())
		}
	}

	return b.String()
}

// WriteTo writes the Markdown rendering of the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Markdown())
	return int64(n), err
}
