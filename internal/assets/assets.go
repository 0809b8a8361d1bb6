package assets

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "longdoc"

// PageTemplateName is the template that wraps the rendered document.
// It receives .Title, .Style and .Body.
const PageTemplateName = "page"
