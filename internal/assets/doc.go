// Package assets provides the stylesheet and page template used for the
// optional HTML rendition of the combined document.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from a custom directory (afero filesystem)
//	    └── AssetResolver     - combines both with custom-first fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css     # stylesheets (e.g., longdoc.css)
//	└── templates/
//	    └── {name}.html    # page templates (e.g., page.html)
//
// # Security
//
// Asset names are validated to prevent path traversal, and FilesystemLoader
// reads through an afero.BasePathFs rooted at the asset directory.
package assets
