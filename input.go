package flexy

import (
	"github.com/flexydesign/flexy/dom"
)

var textProperties = []string{
	"font-size", "font-family", "font-weight", "font-style", "letter-spacing",
	"white-space", "line-height", "display", "flex-wrap", "text-align",
	"text-transform", "text-decoration", "text-shadow", "justify-content",
	"align-items", "align-content", "color",
}

var backgroundProperties = []string{
	"background-color", "border-color", "border-width", "border-style",
	"border-radius", "box-shadow", "background-image", "background-size",
	"background-position", "background-repeat", "background-clip",
	"background-origin", "background-attachment",
}

// Input replaces the design box named BoxName by a real <input> element. The
// input takes the class of the box, the typography of the node named TextName
// and the background and border of the node named BackgroundName.
// Bindings are applied to the input. Unmount puts the box back.
type Input struct {
	BoxName        string
	TextName       string
	BackgroundName string
	Bindings       []Binding

	c     *Container
	box   *dom.Element
	input *dom.Element
	b     binder
}

func (in *Input) Mount(c *Container) {
	in.c = c
	in.replace()
}

func (in *Input) Update() {
	if in.c == nil {
		return
	}
	if in.input == nil {
		in.replace()
		return
	}
	in.b.apply(in.input, in.Bindings)
}

// Element returns the input element, nil until the box was found.
func (in *Input) Element() *dom.Element { return in.input }

func (in *Input) replace() {
	box := in.c.Resolve(in.BoxName)
	if box == nil {
		in.c.report("input", KindMissingNode, in.BoxName)
		return
	}
	text := in.c.Resolve(in.TextName)
	var background *dom.Element
	if in.BackgroundName != "" {
		background = in.c.Resolve(in.BackgroundName)
	}

	input := in.c.Document().CreateElement("input")
	if cls, ok := box.Attr("class"); ok {
		input.SetAttribute("class", cls)
	}
	input.Style().Set("box-sizing", "border-box")
	copyStyle(input, text, textProperties)
	copyStyle(input, background, backgroundProperties)

	in.b.apply(input, in.Bindings)
	box.ReplaceWith(input)
	in.box, in.input = box, input
}

func copyStyle(dst, src *dom.Element, properties []string) {
	if src == nil {
		return
	}
	for _, p := range properties {
		if v := src.ComputedStyle(p); v != "" {
			dst.Style().Set(p, v)
		}
	}
}

func (in *Input) Unmount() {
	in.b.release()
	if in.input != nil && in.input.Parent() != nil {
		in.input.ReplaceWith(in.box)
	}
	in.box, in.input = nil, nil
	in.c = nil
}
