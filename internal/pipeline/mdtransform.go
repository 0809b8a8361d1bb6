package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeText prepares page text for line-oriented processing: line endings
// become \n, text is composed to Unicode NFC, and non-empty text always ends
// with a newline so every line handed to the quoting scanner carries its
// terminator.
func NormalizeText(content string) string {
	content = normalizeLineEndings(content)
	content = norm.NFC.String(content)
	return ensureTrailingNewline(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
