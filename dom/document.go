package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const blankDocument = `<!DOCTYPE html><html><head></head><body></body></html>`

// Document owns a parsed markup tree. Each *html.Node of the tree is exposed
// through exactly one *Element, so that runtime state (properties, listeners)
// survives repeated lookups.
type Document struct {
	root     *html.Node
	elements map[*html.Node]*Element

	listeners EventListeners

	Window *Window
	Layout Layout
}

// NewDocument returns an empty html document with a 1280x720 window.
func NewDocument() *Document {
	d, err := ParseString(blankDocument)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse reads a full html document. Fragments are accepted too: the html
// parser wraps them in html, head and body elements.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parsing document: %w", err)
	}
	return &Document{
		root:      root,
		elements:  make(map[*html.Node]*Element),
		listeners: NewEventListenerStore(),
		Window:    NewWindow(1280, 720),
		Layout:    InlineLayout{},
	}, nil
}

func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Node returns the underlying document node.
func (d *Document) Node() *html.Node { return d.root }

// Wrap returns the Element for n. n must be an element node.
func (d *Document) Wrap(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if e, ok := d.elements[n]; ok {
		return e
	}
	e := &Element{
		node:      n,
		doc:       d,
		props:     make(map[string]any),
		listeners: NewEventListenerStore(),
	}
	d.elements[n] = e
	return e
}

// DocumentElement returns the html element.
func (d *Document) DocumentElement() *Element {
	return d.Wrap(findChildElement(d.root, "html"))
}

func (d *Document) Head() *Element {
	h := findChildElement(d.root, "html")
	if h == nil {
		return nil
	}
	return d.Wrap(findChildElement(h, "head"))
}

func (d *Document) Body() *Element {
	h := findChildElement(d.root, "html")
	if h == nil {
		return nil
	}
	return d.Wrap(findChildElement(h, "body"))
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return d.Wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// ParseFragment parses markup in the context of the given element (the body
// when nil) and returns the detached top-level nodes it contains. Text and
// comment nodes are kept so that callers can append them as they are.
func (d *Document) ParseFragment(markup string, context *Element) ([]*html.Node, error) {
	ctx := d.fragmentContext(context)
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("dom: parsing fragment: %w", err)
	}
	return nodes, nil
}

// ParseElement parses markup and returns its first top-level element, detached.
func (d *Document) ParseElement(markup string) (*Element, error) {
	nodes, err := d.ParseFragment(markup, nil)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return d.Wrap(n), nil
		}
	}
	return nil, nil
}

func (d *Document) fragmentContext(context *Element) *html.Node {
	if context != nil {
		return context.node
	}
	if b := d.Body(); b != nil {
		return b.node
	}
	return &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
}

// Render writes the document markup to w.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Pretty returns the document markup indented for reading.
func (d *Document) Pretty() string {
	return gohtml.Format(d.String())
}

func (d *Document) AddEventListener(typ string, h *EventHandler) {
	d.listeners.AddEventHandler(typ, h)
}

func (d *Document) RemoveEventListener(typ string, h *EventHandler) {
	d.listeners.RemoveEventHandler(typ, h)
}

func (d *Document) DispatchEvent(evt Event) bool {
	b := evt.base()
	if b.target == nil {
		b.target = d
	}
	b.currentTarget = d
	d.listeners.Handle(evt)
	return !evt.DefaultPrevented()
}

// ListenerCount returns the number of document level listeners for typ.
func (d *Document) ListenerCount(typ string) int {
	return d.listeners.Count(typ)
}

// findChildElement finds the first child of a node with the given tag name.
func findChildElement(parent *html.Node, tagName string) *html.Node {
	if parent == nil {
		return nil
	}
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tagName {
			return c
		}
	}
	return nil
}
