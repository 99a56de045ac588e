// Package markup projects attribute sets onto HTML elements for previews.
package markup

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riceharvest/a11yutils/pkg/aria"
	"github.com/riceharvest/a11yutils/pkg/style"
)

// Element describes the node to render.
type Element struct {
	Tag        string
	ID         string
	Text       string
	Attributes aria.AttributeSet
	Style      style.Preset
}

// Node builds an html.Node for el. The id comes first, then attributes in key
// order, then the inline style.
func Node(el Element) *html.Node {
	tag := strings.ToLower(strings.TrimSpace(el.Tag))
	if tag == "" {
		tag = "div"
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	if el.ID != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "id", Val: el.ID})
	}
	for _, attr := range el.Attributes.Attributes() {
		if attr.Value == nil {
			continue
		}
		node.Attr = append(node.Attr, html.Attribute{Key: string(attr.Key), Val: attr.Value.String()})
	}
	if !el.Style.IsZero() {
		node.Attr = append(node.Attr, html.Attribute{Key: "style", Val: el.Style.CSS()})
	}

	if el.Text != "" && !isVoid(tag) {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: el.Text})
	}
	return node
}

// Render writes el as HTML.
func Render(el Element) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, Node(el)); err != nil {
		return "", fmt.Errorf("render %s element: %w", el.Tag, err)
	}
	return buf.String(), nil
}

// Attributes renders only the attribute list, as it would appear inside a tag.
func Attributes(set aria.AttributeSet) string {
	rendered, err := Render(Element{Tag: "span", Attributes: set})
	if err != nil {
		return ""
	}
	rendered = strings.TrimPrefix(rendered, "<span")
	rendered = strings.TrimSuffix(rendered, "></span>")
	return strings.TrimSpace(rendered)
}

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

func isVoid(tag string) bool {
	_, ok := voidElements[tag]
	return ok
}
