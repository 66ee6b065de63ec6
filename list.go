package flexy

import (
	"strconv"

	"github.com/flexydesign/flexy/dom"
)

// Preset is a set of layout defaults applied to a list container.
type Preset string

const ColumnList Preset = "column-list"

type ScrollDirection string

const (
	ScrollVertical   ScrollDirection = "vertical"
	ScrollHorizontal ScrollDirection = "horizontal"
)

type Direction string

const (
	Row    Direction = "row"
	Column Direction = "column"
)

// DefaultGap is the gap of the column-list preset, in px.
const DefaultGap = 12

// Template is the markup of a list item, captured once.
type Template struct {
	markup string
}

func (t Template) Markup() string { return t.markup }
func (t Template) IsZero() bool   { return t.markup == "" }

// List turns the node named Item into a template for the node named Name.
//
// On the first update where both nodes resolve, the list and item layout
// defaults are applied, the item markup is captured and the original item is
// removed. Render is then called with the template on every update; use
// Populate inside it to keep renders idempotent.
type List struct {
	Name string
	Item string

	Preset    Preset
	Scroll    ScrollDirection
	Direction Direction
	Gap       float64
	// Drag enables mouse-drag scrolling of the list in that direction.
	Drag DragDirection

	Render func(t *ListTemplate)

	c           *Container
	tmpl        *ListTemplate
	releaseDrag func()
}

func (l *List) Mount(c *Container) {
	l.c = c
	l.Update()
}

func (l *List) Update() {
	if l.c == nil {
		return
	}
	if l.tmpl == nil && !l.capture() {
		return
	}
	list := l.tmpl.list
	if l.Scroll == ScrollHorizontal {
		list.Style().Set("overflow-x", "scroll")
	}
	if l.Scroll == ScrollVertical {
		list.Style().Set("overflow-y", "scroll")
	}
	if l.Direction != "" {
		list.Style().Set("flex-direction", string(l.Direction))
	}
	if l.Gap > 0 {
		list.Style().Set("gap", cssNumber(l.Gap)+"px")
	}
	if l.Render != nil {
		l.Render(l.tmpl)
	}
}

// capture moves the list to the ready state. It does nothing, and reports
// false, while either node is missing.
func (l *List) capture() bool {
	list := l.c.Resolve(l.Name)
	item := l.c.Resolve(l.Item)
	if list == nil || item == nil {
		name := l.Name
		if list != nil {
			name = l.Item
		}
		l.c.report("list.capture", KindTemplateCapture, name)
		return false
	}

	list.Style().Set("display", "flex")
	item.Style().Set("position", "relative")
	item.Style().Set("flex-grow", "0")
	item.Style().Set("flex-shrink", "0")
	item.Style().Set("display", "block")

	preset := l.Preset
	if preset == "" {
		preset = ColumnList
	}
	if preset == ColumnList {
		list.SetAttribute(ListAttr, "")
		list.Style().Set("flex-direction", "column")
		list.Style().Set("flex-wrap", "nowrap")
		list.Style().Set("overflow", "scroll")
		list.Style().Set("gap", strconv.Itoa(DefaultGap)+"px")
	}

	tmpl := Template{item.OuterHTML()}
	item.Remove()
	l.tmpl = &ListTemplate{list: list, template: tmpl}
	if l.Drag != "" {
		l.releaseDrag = DraggableScroll(list, l.Drag)
	}
	return true
}

// Ready reports whether the template was captured.
func (l *List) Ready() bool { return l.tmpl != nil }

// Template returns the list template, nil before capture.
func (l *List) Template() *ListTemplate { return l.tmpl }

func (l *List) Unmount() {
	if l.releaseDrag != nil {
		l.releaseDrag()
		l.releaseDrag = nil
	}
	l.tmpl = nil
	l.c = nil
}

// ListTemplate instantiates a captured item inside its list.
type ListTemplate struct {
	list     *dom.Element
	template Template
	items    []*dom.Element
}

// Element returns the list container.
func (t *ListTemplate) Element() *dom.Element { return t.list }

func (t *ListTemplate) Template() Template { return t.template }

// HTML returns the captured item markup.
func (t *ListTemplate) HTML() string { return t.template.markup }

// Create parses the template into a new node, appends it to the list and
// returns it.
func (t *ListTemplate) Create() *dom.Element {
	doc := t.list.OwnerDocument()
	nodes, err := doc.ParseFragment(t.template.markup, t.list)
	if err != nil {
		return nil
	}
	for _, n := range nodes {
		el := doc.Wrap(n)
		if el == nil {
			continue
		}
		t.list.AppendChild(el)
		t.items = append(t.items, el)
		return el
	}
	return nil
}

// Select resolves childName inside node, one instance of the template, and
// calls cb with it when found.
func (t *ListTemplate) Select(node *dom.Element, childName string, cb func(*dom.Element)) *dom.Element {
	if node == nil {
		return nil
	}
	el := node.QueryName(childName)
	if el != nil && cb != nil {
		cb(el)
	}
	return el
}

// Items returns the created nodes still in the list.
func (t *ListTemplate) Items() []*dom.Element {
	res := t.items[:0]
	for _, el := range t.items {
		if el.Parent() == t.list {
			res = append(res, el)
		}
	}
	t.items = res
	return append([]*dom.Element(nil), res...)
}

// Clear removes the created nodes from the list. Other children stay.
func (t *ListTemplate) Clear() {
	for _, el := range t.items {
		t.list.RemoveChild(el)
	}
	t.items = nil
}

// Populate replaces the created items by one item per element of data.
func Populate[T any](t *ListTemplate, data []T, bind func(item *dom.Element, v T, i int)) {
	if t == nil {
		return
	}
	t.Clear()
	for i, v := range data {
		item := t.Create()
		if item == nil {
			return
		}
		if bind != nil {
			bind(item, v, i)
		}
	}
}
