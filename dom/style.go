package dom

import (
	"strings"
)

type declaration struct {
	property string
	value    string
}

// Style is a live view on the inline style of an element. Every mutation is
// written back to the element's style attribute.
type Style struct {
	el *Element
}

func (s Style) declarations() []declaration {
	v, _ := s.el.Attr("style")
	return parseStyle(v)
}

func (s Style) write(decls []declaration) {
	if len(decls) == 0 {
		s.el.RemoveAttribute("style")
		return
	}
	s.el.SetAttribute("style", formatStyle(decls))
}

// Get returns the value of a property, or the empty string.
func (s Style) Get(property string) string {
	property = normalizeProperty(property)
	for _, d := range s.declarations() {
		if d.property == property {
			return d.value
		}
	}
	return ""
}

// Set replaces the value of a property in place, or appends it.
// Setting the empty string removes the property.
func (s Style) Set(property, value string) {
	property = normalizeProperty(property)
	value = strings.TrimSpace(value)
	if value == "" {
		s.Remove(property)
		return
	}
	decls := s.declarations()
	for i, d := range decls {
		if d.property == property {
			if d.value == value {
				return
			}
			decls[i].value = value
			s.write(decls)
			return
		}
	}
	s.write(append(decls, declaration{property, value}))
}

func (s Style) Remove(property string) {
	property = normalizeProperty(property)
	decls := s.declarations()
	for i, d := range decls {
		if d.property == property {
			s.write(append(decls[:i], decls[i+1:]...))
			return
		}
	}
}

// Properties returns the declared property names in order.
func (s Style) Properties() []string {
	decls := s.declarations()
	res := make([]string, 0, len(decls))
	for _, d := range decls {
		res = append(res, d.property)
	}
	return res
}

func (s Style) String() string {
	return formatStyle(s.declarations())
}

// ParseStyle returns the declarations of an inline style string as a map.
func ParseStyle(text string) map[string]string {
	res := make(map[string]string)
	for _, d := range parseStyle(text) {
		res[d.property] = d.value
	}
	return res
}

func parseStyle(text string) []declaration {
	var decls []declaration
	for _, part := range splitDeclarations(text) {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = normalizeProperty(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		replaced := false
		for i := range decls {
			if decls[i].property == k {
				decls[i].value = v
				replaced = true
				break
			}
		}
		if !replaced {
			decls = append(decls, declaration{k, v})
		}
	}
	return decls
}

// splitDeclarations splits on semicolons that are outside of parentheses and quotes.
func splitDeclarations(text string) []string {
	var parts []string
	var depth int
	var quote rune
	start := 0
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == ';' && depth == 0:
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}

func formatStyle(decls []declaration) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(d.property)
		b.WriteString(": ")
		b.WriteString(d.value)
		b.WriteString(";")
	}
	return b.String()
}

// normalizeProperty accepts both kebab-case and camelCase property names.
func normalizeProperty(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "--") {
		return p
	}
	var b strings.Builder
	for i, r := range p {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// ClassList is a live view on the class attribute of an element.
type ClassList struct {
	el *Element
}

func (c ClassList) names() []string {
	v, _ := c.el.Attr("class")
	return strings.Fields(v)
}

func (c ClassList) Contains(name string) bool {
	for _, n := range c.names() {
		if n == name {
			return true
		}
	}
	return false
}

func (c ClassList) Add(names ...string) {
	current := c.names()
	changed := false
	for _, name := range names {
		if name == "" || contains(current, name) {
			continue
		}
		current = append(current, name)
		changed = true
	}
	if changed {
		c.el.SetAttribute("class", strings.Join(current, " "))
	}
}

func (c ClassList) Remove(names ...string) {
	current := c.names()
	res := current[:0]
	for _, n := range current {
		if !contains(names, n) {
			res = append(res, n)
		}
	}
	if len(res) == 0 {
		c.el.RemoveAttribute("class")
		return
	}
	c.el.SetAttribute("class", strings.Join(res, " "))
}

func (c ClassList) Len() int { return len(c.names()) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
