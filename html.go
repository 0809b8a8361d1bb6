package longdoc

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/spf13/afero"

	"github.com/alnah/go-longdoc/internal/assets"
	"github.com/alnah/go-longdoc/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector   = (*pipeline.CSSInjection)(nil)
)

// HTMLOptions configures the HTML rendition of a document.
type HTMLOptions struct {
	Title     string // Page <title>
	Style     string // Stylesheet name, default assets.DefaultStyleName
	CodeStyle string // Chroma style for fenced code, default pipeline.DefaultCodeStyle
	AssetPath string // Directory of custom styles/ and templates/, empty = embedded only
}

// HTMLRenderer turns an assembled document into a standalone HTML page.
type HTMLRenderer struct {
	opts        HTMLOptions
	loader      assets.AssetLoader
	converter   pipeline.HTMLConverter
	sanitizer   *pipeline.Sanitizer
	cssInjector pipeline.CSSInjector
}

// pageData is the data passed to the page template.
type pageData struct {
	Title string
	Style template.CSS
	Body  template.HTML
}

// NewHTMLRenderer creates an HTMLRenderer. fsys is used for custom assets
// only; a nil fsys means the OS filesystem.
func NewHTMLRenderer(fsys afero.Fs, opts HTMLOptions) (*HTMLRenderer, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if opts.Style == "" {
		opts.Style = assets.DefaultStyleName
	}
	if opts.CodeStyle == "" {
		opts.CodeStyle = pipeline.DefaultCodeStyle
	}

	resolver, err := assets.NewAssetResolver(fsys, opts.AssetPath)
	if err != nil {
		return nil, fmt.Errorf("initializing assets: %w", err)
	}

	return &HTMLRenderer{
		opts:        opts,
		loader:      resolver,
		converter:   pipeline.NewGoldmarkConverter(),
		sanitizer:   pipeline.NewSanitizer(),
		cssInjector: &pipeline.CSSInjection{},
	}, nil
}

// Render converts the document's Markdown to HTML, rewrites its named
// anchors, sanitizes the result and wraps it in the page template.
func (r *HTMLRenderer) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	fragment, err := r.converter.ToHTML(ctx, doc.Markdown())
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	fragment, err = pipeline.PromoteNamedAnchors(fragment)
	if err != nil {
		return nil, fmt.Errorf("rewriting anchors: %w", err)
	}
	fragment = r.sanitizer.Sanitize(fragment)

	page, err := r.executeTemplate(fragment)
	if err != nil {
		return nil, err
	}

	highlightCSS, err := pipeline.HighlightCSS(r.opts.CodeStyle)
	if err != nil {
		return nil, err
	}
	page = r.cssInjector.InjectCSS(ctx, page, highlightCSS)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return []byte(page), nil
}

func (r *HTMLRenderer) executeTemplate(body string) (string, error) {
	style, err := r.loader.LoadStyle(r.opts.Style)
	if err != nil {
		return "", fmt.Errorf("loading style: %w", err)
	}

	source, err := r.loader.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return "", fmt.Errorf("loading page template: %w", err)
	}

	tmpl, err := template.New(assets.PageTemplateName).Parse(source)
	if err != nil {
		return "", fmt.Errorf("parsing page template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, pageData{
		Title: r.opts.Title,
		Style: template.CSS(style), // #nosec G203 -- stylesheet comes from trusted assets
		Body:  template.HTML(body), // #nosec G203 -- body is sanitized above
	})
	if err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	return buf.String(), nil
}
