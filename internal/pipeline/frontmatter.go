package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// DefaultWeight orders pages that declare no weight after the ones that do.
const DefaultWeight = 999

// frontMatterDividers is the number of --- lines that close the front matter.
const frontMatterDividers = 2

// Front matter fields are matched by line prefix, not parsed as YAML, so pages
// with sloppy metadata still contribute whatever fields are recognizable.
var (
	titlePattern     = regexp.MustCompile(`^title\s*: (.*)`)
	linkTitlePattern = regexp.MustCompile(`^linktitle\s*: (.*)`)
	weightPattern    = regexp.MustCompile(`^weight\s*: ([0-9]+)`)
	dividerPattern   = regexp.MustCompile(`^---`)
)

// FrontMatter holds the page fields recognized in the metadata block.
type FrontMatter struct {
	Title     string
	LinkTitle string
	Weight    int
}

// NewFrontMatter returns front matter with defaults applied.
func NewFrontMatter() FrontMatter {
	return FrontMatter{Weight: DefaultWeight}
}

// Label returns the text used for the page in the index.
func (f FrontMatter) Label() string {
	if f.LinkTitle != "" {
		return f.LinkTitle
	}
	return f.Title
}

// ScanLine records any field found on a front matter line and reports whether
// the line is a divider. Later occurrences of a field override earlier ones.
func (f *FrontMatter) ScanLine(line string) (divider bool) {
	line = strings.TrimRight(line, "\r\n")

	if m := titlePattern.FindStringSubmatch(line); m != nil {
		f.Title = m[1]
	}
	if m := linkTitlePattern.FindStringSubmatch(line); m != nil {
		f.LinkTitle = strings.Trim(m[1], `"`)
	}
	if m := weightPattern.FindStringSubmatch(line); m != nil {
		// Digits only; the sole failure is overflow, which keeps the previous weight.
		if w, err := strconv.Atoi(m[1]); err == nil {
			f.Weight = w
		}
	}
	return dividerPattern.MatchString(line)
}

// SplitPage reads a page line by line, collecting front matter fields until
// the second divider and returning everything after it as the body. A page
// without a complete front matter block yields an empty body.
func SplitPage(r io.Reader) (FrontMatter, string, error) {
	fm := NewFrontMatter()
	br := bufio.NewReader(r)

	var body strings.Builder
	dividers := 0
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if dividers == frontMatterDividers {
				body.WriteString(line)
			} else if fm.ScanLine(line) {
				dividers++
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fm, "", fmt.Errorf("reading page: %w", err)
		}
	}
	return fm, body.String(), nil
}
