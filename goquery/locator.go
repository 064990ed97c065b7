// Package goquery locates structural elements in documentation markup
// using github.com/PuerkitoBio/goquery.
package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pepparse"
	"golang.org/x/net/html"
)

// Attr constrains one attribute of the element being located.
type Attr struct {
	Name  string
	Desc  string
	Match func(value string) bool
}

// HasAttr matches elements whose attribute name equals value.
// For "class" the value may also match any single class of the element.
func HasAttr(name, value string) Attr {
	match := func(v string) bool { return v == value }
	if name == "class" {
		match = func(v string) bool {
			return v == value || slices.Contains(strings.Fields(v), value)
		}
	}
	return Attr{Name: name, Desc: value, Match: match}
}

// HasSuffix matches elements whose attribute ends with suffix preceded by
// at least one character. The comparison is case-sensitive.
func HasSuffix(name, suffix string) Attr {
	return Attr{
		Name: name,
		Desc: "*" + suffix,
		Match: func(v string) bool {
			return len(v) > len(suffix) && strings.HasSuffix(v, suffix)
		},
	}
}

// Find returns the first descendant of sel named tag that satisfies every
// attr. Descendants are visited in document order (depth-first, pre-order),
// so the result is deterministic. Returns ENOTFOUND when nothing matches.
func Find(sel *goquery.Selection, tag string, attrs ...Attr) (*goquery.Selection, error) {
	n := firstDescendant(sel, func(n *html.Node) bool {
		return isElement(n, tag) && matchAttrs(n, attrs)
	})
	if n == nil {
		return nil, pepparse.Errorf(pepparse.ENOTFOUND, "tag %s not found", describe(tag, attrs))
	}
	return sel.FindNodes(n), nil
}

// FindByText returns the first descendant of sel named tag whose full text
// content contains substr. Returns ENOTFOUND when nothing matches.
func FindByText(sel *goquery.Selection, tag, substr string) (*goquery.Selection, error) {
	n := firstDescendant(sel, func(n *html.Node) bool {
		return isElement(n, tag) && strings.Contains(nodeText(n), substr)
	})
	if n == nil {
		return nil, pepparse.Errorf(pepparse.ENOTFOUND, "tag %s with text %q not found", tag, substr)
	}
	return sel.FindNodes(n), nil
}

func firstDescendant(sel *goquery.Selection, match func(*html.Node) bool) *html.Node {
	if sel == nil {
		return nil
	}
	for _, root := range sel.Nodes {
		if n := walk(root, match); n != nil {
			return n
		}
	}
	return nil
}

func walk(parent *html.Node, match func(*html.Node) bool) *html.Node {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if n := walk(c, match); n != nil {
			return n
		}
	}
	return nil
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func matchAttrs(n *html.Node, attrs []Attr) bool {
	for _, want := range attrs {
		value, ok := attrValue(n, want.Name)
		if !ok || !want.Match(value) {
			return false
		}
	}
	return true
}

func attrValue(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// nodeText concatenates every text node below n, like Selection.Text.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

func describe(tag string, attrs []Attr) string {
	if len(attrs) == 0 {
		return tag
	}
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, a.Name+"="+a.Desc)
	}
	return tag + "[" + strings.Join(parts, " ") + "]"
}
