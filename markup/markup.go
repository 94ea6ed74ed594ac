// Package markup exposes parsed HTML through a small query capability, so the parsers
// depend on selectors and attributes rather than on a particular HTML library.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node is an element matched by a selector.
type Node interface {
	// Find runs a selector relative to this node.
	Find(selector string) []Node
	// Attr returns the value of an attribute and whether it is present.
	Attr(name string) (string, bool)
	// Text returns the rendered text with whitespace collapsed.
	Text() string
}

// Document is the root of a parsed page.
type Document interface {
	Find(selector string) []Node
}

// Parse builds a Document from raw HTML.
func Parse(html string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &document{doc: doc}, nil
}

// First returns the first node matched by selector under n, or nil.
func First(n interface{ Find(string) []Node }, selector string) Node {
	nodes := n.Find(selector)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// AttrOr returns the named attribute of the first match, or "" when either is missing.
func AttrOr(n interface{ Find(string) []Node }, selector, attr string) string {
	node := First(n, selector)
	if node == nil {
		return ""
	}
	v, _ := node.Attr(attr)
	return strings.TrimSpace(v)
}

// TextOf returns the text of the first match, or "".
func TextOf(n interface{ Find(string) []Node }, selector string) string {
	node := First(n, selector)
	if node == nil {
		return ""
	}
	return node.Text()
}

type document struct {
	doc *goquery.Document
}

func (d *document) Find(selector string) []Node {
	return wrap(d.doc.Find(selector))
}

type node struct {
	sel *goquery.Selection
}

func wrap(sel *goquery.Selection) []Node {
	nodes := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &node{sel: s})
	})
	return nodes
}

func (n *node) Find(selector string) []Node {
	return wrap(n.sel.Find(selector))
}

func (n *node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

var innerWhitespace = regexp.MustCompile(`\s+`)

func (n *node) Text() string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(n.sel.Text(), " "))
}
