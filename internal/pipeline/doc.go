// Package pipeline implements the text stages that turn documentation pages
// into sections of one long Markdown document.
//
// This package handles:
//   - Text normalization (line endings, Unicode NFC, trailing newline)
//   - Front matter field extraction by line prefix
//   - Quoting of template constructs ({{ ... }} and {{< code >}} blocks)
//     in code fences, one line at a time with state carried between lines
//   - Rewriting of site-absolute links to in-document anchors
//   - Optional HTML rendition via Goldmark, anchor promotion and sanitization
//
// Reading folders, ordering pages and writing the combined document are
// handled by the root longdoc package.
package pipeline
