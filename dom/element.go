package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// NameAttr is the attribute carrying the logical name of a generated node.
const NameAttr = "data-name"

// Element wraps an element node of a Document.
type Element struct {
	node *html.Node
	doc  *Document

	props     map[string]any
	listeners EventListeners
}

func (e *Element) Node() *html.Node        { return e.node }
func (e *Element) OwnerDocument() *Document { return e.doc }
func (e *Element) Tag() string              { return e.node.Data }

// Name returns the logical name of the element, if any.
func (e *Element) Name() string {
	v, _ := e.Attr(NameAttr)
	return v
}

func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) HasAttribute(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

func (e *Element) SetAttribute(key, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

func (e *Element) RemoveAttribute(key string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

func (e *Element) Style() Style         { return Style{e} }
func (e *Element) ClassList() ClassList { return ClassList{e} }

// Parent returns the parent element, or nil when the element is detached or
// directly under the document node.
func (e *Element) Parent() *Element {
	return e.doc.Wrap(e.node.Parent)
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var res []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			res = append(res, e.doc.Wrap(c))
		}
	}
	return res
}

func (e *Element) FirstElementChild() *Element {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return e.doc.Wrap(c)
		}
	}
	return nil
}

// Contains reports whether o is e or one of its descendants.
func (e *Element) Contains(o *Element) bool {
	if o == nil {
		return false
	}
	for n := o.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

// Connected reports whether the element is attached to its document.
func (e *Element) Connected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// AppendChild moves child at the end of e's children.
func (e *Element) AppendChild(child *Element) {
	e.AppendNode(child.node)
}

// AppendNode appends a raw node, detaching it from its current parent first.
func (e *Element) AppendNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	e.node.AppendChild(n)
}

// InsertBefore inserts child before ref. A nil ref appends.
func (e *Element) InsertBefore(child, ref *Element) {
	if ref == nil || ref.node.Parent != e.node {
		e.AppendChild(child)
		return
	}
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.InsertBefore(child.node, ref.node)
}

// RemoveChild detaches child. It reports false, and does nothing, when child
// is not a child of e.
func (e *Element) RemoveChild(child *Element) bool {
	if child == nil || child.node.Parent != e.node {
		return false
	}
	e.node.RemoveChild(child.node)
	return true
}

// Remove detaches e from its parent, if any.
func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// ReplaceWith puts o at the position of e and detaches e.
func (e *Element) ReplaceWith(o *Element) {
	p := e.node.Parent
	if p == nil {
		return
	}
	if o.node.Parent != nil {
		o.node.Parent.RemoveChild(o.node)
	}
	p.InsertBefore(o.node, e.node)
	p.RemoveChild(e.node)
}

func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return ""
	}
	return buf.String()
}

func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// SetInnerHTML replaces the children of e by the parsed markup.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := e.doc.ParseFragment(markup, e)
	if err != nil {
		return err
	}
	e.clearChildren()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// TextContent returns the concatenated text of all descendant text nodes.
func (e *Element) TextContent() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

func (e *Element) SetTextContent(text string) {
	e.clearChildren()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *Element) clearChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

// SetProperty assigns an element property. A few properties reflect into the
// markup: innerText, textContent, innerHTML, className, id, value and hidden.
// Everything else is kept on the element only.
func (e *Element) SetProperty(key string, value any) {
	switch key {
	case "innerText", "textContent":
		e.SetTextContent(toString(value))
	case "innerHTML":
		if err := e.SetInnerHTML(toString(value)); err != nil {
			e.SetTextContent(toString(value))
		}
	case "className":
		e.SetAttribute("class", toString(value))
	case "id", "value":
		e.SetAttribute(key, toString(value))
	case "hidden":
		if b, ok := value.(bool); ok && !b {
			e.RemoveAttribute("hidden")
		} else {
			e.SetAttribute("hidden", "")
		}
	default:
		e.props[key] = value
	}
}

// Property returns the value of an element property.
func (e *Element) Property(key string) (any, bool) {
	switch key {
	case "innerText", "textContent":
		return e.TextContent(), true
	case "innerHTML":
		return e.InnerHTML(), true
	case "className":
		v, _ := e.Attr("class")
		return v, true
	case "id", "value":
		return e.Attr(key)
	case "hidden":
		return e.HasAttribute("hidden"), true
	}
	v, ok := e.props[key]
	return v, ok
}

// PropertyFloat returns a numeric property, or 0.
func (e *Element) PropertyFloat(key string) float64 {
	v, ok := e.props[key]
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	}
	return 0
}

func (e *Element) ClientWidth() float64 {
	w, _ := e.doc.Layout.ClientSize(e)
	return w
}

func (e *Element) ClientHeight() float64 {
	_, h := e.doc.Layout.ClientSize(e)
	return h
}

// ComputedStyle returns the resolved value of a style property.
func (e *Element) ComputedStyle(property string) string {
	return e.doc.Layout.ComputedStyle(e, property)
}

func (e *Element) AddEventListener(typ string, h *EventHandler) {
	e.listeners.AddEventHandler(typ, h)
}

func (e *Element) RemoveEventListener(typ string, h *EventHandler) {
	e.listeners.RemoveEventHandler(typ, h)
}

// ListenerCount returns the number of listeners registered on e for typ.
func (e *Element) ListenerCount(typ string) int {
	return e.listeners.Count(typ)
}

// DispatchEvent runs the handlers of e, then those of its ancestors while the
// event bubbles, ending with the document when e is connected.
func (e *Element) DispatchEvent(evt Event) bool {
	b := evt.base()
	b.target = e
	for n := e.node; n != nil; n = n.Parent {
		if n.Type == html.DocumentNode {
			if n == e.doc.root {
				e.doc.DispatchEvent(evt)
			}
			break
		}
		if el, ok := e.doc.elements[n]; ok {
			b.currentTarget = el
			el.listeners.Handle(evt)
		}
		if !b.bubbles || b.stopped {
			break
		}
	}
	return !evt.DefaultPrevented()
}

// Click dispatches a bubbling click event on e.
func (e *Element) Click() bool {
	return e.DispatchEvent(NewMouseEvent("click", 0, 0))
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
