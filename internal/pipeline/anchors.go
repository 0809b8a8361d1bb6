package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PromoteNamedAnchors turns the legacy <a name="x"></a> targets of the
// combined document into <a id="x"></a>, which survive sanitization and are
// what current browsers resolve fragment links against.
func PromoteNamedAnchors(fragment string) (string, error) {
	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	promoteNode(doc)

	return renderFragment(doc)
}

// parseFragment parses an HTML fragment in a body context and wraps the
// resulting nodes in a container for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the container's children without a wrapper.
func renderFragment(doc *html.Node) (string, error) {
	var buf strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func promoteNode(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		promoteAttr(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		promoteNode(c)
	}
}

// promoteAttr moves a name attribute to id unless the element already has one.
func promoteAttr(n *html.Node) {
	nameIdx := -1
	for i, attr := range n.Attr {
		switch attr.Key {
		case "id":
			return
		case "name":
			nameIdx = i
		}
	}
	if nameIdx == -1 || n.Attr[nameIdx].Val == "" {
		return
	}
	n.Attr[nameIdx].Key = "id"
}
