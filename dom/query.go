package dom

import (
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// QueryName returns the first descendant of e, in document order, whose
// logical name is name. It returns nil when there is none.
func (e *Element) QueryName(name string) *Element {
	n, err := htmlquery.Query(e.node, NameXPath(name))
	if err != nil || n == nil {
		return nil
	}
	return e.doc.Wrap(n)
}

// QueryNameAll returns all the descendants of e named name.
func (e *Element) QueryNameAll(name string) []*Element {
	res, err := e.QueryAll(NameXPath(name))
	if err != nil {
		return nil
	}
	return res
}

// QueryAttr returns the descendants of e carrying the attribute attr.
func (e *Element) QueryAttr(attr string) []*Element {
	res, err := e.QueryAll(".//*[@" + attr + "]")
	if err != nil {
		return nil
	}
	return res
}

// Query evaluates an XPath expression relative to e and returns the first
// matching element.
func (e *Element) Query(expr string) (*Element, error) {
	n, err := htmlquery.Query(e.node, expr)
	if err != nil {
		return nil, fmt.Errorf("dom: bad query %q: %w", expr, err)
	}
	return e.doc.Wrap(n), nil
}

// QueryAll evaluates an XPath expression relative to e.
func (e *Element) QueryAll(expr string) ([]*Element, error) {
	nodes, err := htmlquery.QueryAll(e.node, expr)
	if err != nil {
		return nil, fmt.Errorf("dom: bad query %q: %w", expr, err)
	}
	res := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		res = append(res, e.doc.Wrap(n))
	}
	return res, nil
}

// NameXPath returns the XPath expression selecting the descendants named name.
func NameXPath(name string) string {
	return ".//*[@" + NameAttr + "=" + xpathLiteral(name) + "]"
}

// xpathLiteral quotes s for XPath 1.0, which has no escape sequences.
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	var b strings.Builder
	b.WriteString("concat(")
	for i, p := range parts {
		if i > 0 {
			b.WriteString(`, "'", `)
		}
		b.WriteString("'" + p + "'")
	}
	b.WriteString(")")
	return b.String()
}
