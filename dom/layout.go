package dom

import (
	"strconv"
	"strings"
)

// Layout provides the metrics a browser would compute for an element.
type Layout interface {
	ClientSize(e *Element) (width, height float64)
	ComputedStyle(e *Element, property string) string
}

// InlineLayout derives metrics from the markup alone: sizes come from inline
// width/height declarations (px, vw, vh or % of the parent) or from width and
// height attributes, computed style from inline declarations, with the
// inherited typography properties looked up on the ancestors.
type InlineLayout struct{}

var inherited = map[string]bool{
	"color":          true,
	"font-family":    true,
	"font-size":      true,
	"font-style":     true,
	"font-weight":    true,
	"letter-spacing": true,
	"line-height":    true,
	"text-align":     true,
	"text-transform": true,
	"white-space":    true,
	"visibility":     true,
}

func (l InlineLayout) ClientSize(e *Element) (float64, float64) {
	return l.length(e, "width"), l.length(e, "height")
}

func (l InlineLayout) length(e *Element, property string) float64 {
	if v := e.Style().Get(property); v != "" {
		if n, ok := l.resolve(e, property, v); ok {
			return n
		}
	}
	if v, ok := e.Attr(property); ok {
		if n, ok := l.resolve(e, property, v); ok {
			return n
		}
	}
	return 0
}

func (l InlineLayout) resolve(e *Element, property, v string) (float64, bool) {
	v = strings.TrimSpace(v)
	w := e.doc.Window
	switch {
	case strings.HasSuffix(v, "px"):
		return parseFloat(strings.TrimSuffix(v, "px"))
	case strings.HasSuffix(v, "vw"):
		n, ok := parseFloat(strings.TrimSuffix(v, "vw"))
		return n * w.Width() / 100, ok
	case strings.HasSuffix(v, "vh"):
		n, ok := parseFloat(strings.TrimSuffix(v, "vh"))
		return n * w.Height() / 100, ok
	case strings.HasSuffix(v, "%"):
		n, ok := parseFloat(strings.TrimSuffix(v, "%"))
		if !ok {
			return 0, false
		}
		p := e.Parent()
		if p == nil {
			return 0, false
		}
		return n * l.length(p, property) / 100, true
	}
	return parseFloat(v)
}

func (l InlineLayout) ComputedStyle(e *Element, property string) string {
	property = normalizeProperty(property)
	if v := e.Style().Get(property); v != "" {
		return v
	}
	if !inherited[property] {
		return ""
	}
	for p := e.Parent(); p != nil; p = p.Parent() {
		if v := p.Style().Get(property); v != "" {
			return v
		}
	}
	return ""
}

func parseFloat(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
