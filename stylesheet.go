package flexy

import (
	"strings"

	"github.com/flexydesign/flexy/dom"
)

// StyleAttr marks the style blocks injected by the runtime. Its value is the
// tag of the owner.
const StyleAttr = "data-flexy-style"

type rule struct {
	selector string
	decls    []string
}

// ruleset accumulates css rules in order.
type ruleset []rule

func (r *ruleset) add(selector string, decls ...string) {
	*r = append(*r, rule{selector, decls})
}

func (r ruleset) String() string {
	var b strings.Builder
	for i, rl := range r {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rl.selector)
		b.WriteString(" {\n")
		for _, d := range rl.decls {
			b.WriteString("  ")
			b.WriteString(d)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// styleBlock is a <style> element owned by one tag. It lives in the document
// head, or at the end of the body when there is no head.
type styleBlock struct {
	el *dom.Element
}

func newStyleBlock(doc *dom.Document, tag string) *styleBlock {
	el := doc.CreateElement("style")
	el.SetAttribute(StyleAttr, tag)
	parent := doc.Head()
	if parent == nil {
		parent = doc.Body()
	}
	if parent != nil {
		parent.AppendChild(el)
	}
	return &styleBlock{el}
}

// set replaces the css text. Writing the same text twice is a no-op.
func (s *styleBlock) set(css string) {
	if s == nil || s.el == nil {
		return
	}
	if s.el.TextContent() == css {
		return
	}
	s.el.SetTextContent(css)
}

func (s *styleBlock) text() string {
	if s == nil || s.el == nil {
		return ""
	}
	return s.el.TextContent()
}

func (s *styleBlock) remove() {
	if s == nil || s.el == nil {
		return
	}
	s.el.Remove()
	s.el = nil
}
