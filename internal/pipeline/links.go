package pipeline

import "regexp"

// Site-absolute Markdown links such as [label](/section/page/). The dot
// matches newlines so labels wrapped over several lines are rewritten too.
var siteLinkPattern = regexp.MustCompile(`(?s)\[(.*?)\]\(/(.*?)/(.*?)/?\)`)

// RewriteLinks points site-absolute links at the named anchors of the
// combined document: [label](/a/b/) becomes [label](#a.b.md). Already
// rewritten links start with # and are left alone.
func RewriteLinks(content string) string {
	return siteLinkPattern.ReplaceAllString(content, "[${1}](#${2}.${3}.md)")
}
