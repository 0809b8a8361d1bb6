// Package longdoc concatenates a documentation tree into one long Markdown
// document with an index.
//
// # Quick Start
//
//	doc, err := longdoc.NewAssembler().Assemble(ctx, "hugoDocs/content/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, _ := os.Create("README.md")
//	defer f.Close()
//	doc.WriteTo(f)
//
// # Input Layout
//
// The root holds one directory per topic folder. Every file in a folder is a
// page: a front matter block between two --- lines, then the body. The
// recognized fields are title, linktitle and weight; pages without a weight
// get DefaultWeight. Sub-directories are skipped.
//
// # Quoting
//
// Template constructs in page bodies are wrapped in code fences so they
// render literally once concatenated. A {{ ... }} span is fenced on its own;
// a {{< code >}} block stays fenced until the matching {{< /code >}} token.
// Constructs already inside fenced code in the source are fenced again.
//
// # Output
//
// The document starts with the intro sentence, then an index with one list
// per folder, then every page preceded by a named anchor and a heading.
// Site links such as [label](/a/b/) are rewritten to [label](#a.b.md).
// Within a folder, pages are ordered by weight; colliding weights are moved
// to the next free integer.
//
// HTMLRenderer produces a standalone HTML page from an assembled document.
package longdoc
