// Package dom mounts widget descriptions into an HTML document tree.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrMissingAnchor reports that a widget's container is absent from the
// page shell. Callers skip the widget; it is never shown to visitors.
var ErrMissingAnchor = errors.New("missing anchor")

// Anchor IDs supplied by the page shell.
const (
	AchievementsAnchor = "achievements-container"
	SkillsAnchor       = "skills-container"
	SkillCloudAnchor   = "skill-cloud-container"
	SliderTrackAnchor  = "slider-track"
	SliderPrevAnchor   = "slider-prev"
	SliderNextAnchor   = "slider-next"
	SliderProgress     = "slider-progress"
	SkillToggleAnchor  = "skill-view-toggle-btn"
	NotesTooltipID     = "skill-notes-tooltip"
)

// Document is a parsed page.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page shell: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for an in-memory shell.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document to a string.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Anchor finds the element with the given id.
func (d *Document) Anchor(id string) (*html.Node, error) {
	if n := findByID(d.root, id); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("%w: #%s", ErrMissingAnchor, id)
}

// HasAnchor reports whether the element exists.
func (d *Document) HasAnchor(id string) bool {
	return findByID(d.root, id) != nil
}

// Body returns the body element.
func (d *Document) Body() *html.Node {
	return findAtom(d.root, atom.Body)
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findAtom(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findAtom(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Attr returns an attribute value, or "" when absent.
func Attr(n *html.Node, key string) string { return attr(n, key) }

func clearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// el builds an element. attrs are key/value pairs.
func el(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(text(s))
	return n
}

// appendHTML parses a trusted fragment in the context of parent and appends
// the resulting nodes.
func appendHTML(parent *html.Node, frag template.HTML) error {
	nodes, err := html.ParseFragment(strings.NewReader(string(frag)), &html.Node{
		Type:     html.ElementNode,
		Data:     parent.Data,
		DataAtom: parent.DataAtom,
	})
	if err != nil {
		return fmt.Errorf("parsing fragment: %w", err)
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	return nil
}
