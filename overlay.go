package flexy

import (
	"math"

	"github.com/flexydesign/flexy/dom"
)

// Position is where a Floating node is anchored.
type Position string

const Bottom Position = "bottom"

// overlay is the part shared by Floating and Fullsize: a named node tagged
// with its own class, a style block scoped to that class and a resize
// subscription.
type overlay struct {
	c     *Container
	tag   string
	el    *dom.Element
	style *styleBlock
	subs  subscriptions
}

func (o *overlay) mount(c *Container, name string, update func()) {
	o.c = c
	o.tag = c.tags.Allocate()
	o.style = newStyleBlock(c.doc, o.tag)
	o.resolve(name)
	o.subs.listen(c.Window(), "resize", func(dom.Event) { update() })
}

// resolve keeps the tagged node while it is still in the document under the
// same name, and looks it up again otherwise.
func (o *overlay) resolve(name string) bool {
	if o.el != nil && o.el.Connected() && o.el.Name() == name {
		return true
	}
	if o.el != nil {
		o.el.ClassList().Remove(o.tag)
		o.el = nil
	}
	o.el = o.c.Resolve(name)
	if o.el == nil {
		o.c.report("overlay", KindMissingNode, name)
		return false
	}
	o.el.ClassList().Add(o.tag)
	return true
}

// ratio measures the design container again; it may have changed since mount.
func (o *overlay) ratio() float64 {
	design := o.c.Design()
	if design == nil {
		return math.NaN()
	}
	return DesignRatio(design.ClientWidth(), design.ClientHeight())
}

func (o *overlay) unmount() {
	o.subs.release()
	o.style.remove()
	o.style = nil
	if o.el != nil {
		o.el.ClassList().Remove(o.tag)
		o.el = nil
	}
	o.c = nil
}

// Floating anchors the node named Name to the viewport instead of its
// design position whenever the design does not need to be scaled down.
type Floating struct {
	Name     string
	Position Position

	overlay
	floating bool
}

func (f *Floating) Mount(c *Container) {
	f.overlay.mount(c, f.Name, f.update)
	f.update()
}

func (f *Floating) Update() {
	if f.c == nil {
		return
	}
	f.resolve(f.Name)
	f.update()
}

func (f *Floating) update() {
	if f.c == nil {
		return
	}
	win := f.c.Window()
	ratio := f.ratio()
	f.floating = validRatio(ratio) && FitScale(ratio, win.Width(), win.Height()) >= 1

	var r ruleset
	if f.floating && f.Position == Bottom {
		r.add("."+f.tag, "position: fixed", "bottom: 0", "top: initial")
	}
	f.style.set(r.String())
}

// Floating reports whether the node is currently anchored to the viewport.
func (f *Floating) Floating() bool { return f.floating }

// Tag returns the class added to the node.
func (f *Floating) Tag() string { return f.tag }

// StyleText returns the rules currently emitted for the node.
func (f *Floating) StyleText() string { return f.style.text() }

func (f *Floating) Unmount() {
	f.overlay.unmount()
	f.floating = false
}

// Fullsize makes the node named Name cover the whole viewport, compensating
// the container scale-down.
type Fullsize struct {
	Name string

	overlay
	geometry FullsizeGeometry
	applied  bool
}

func (f *Fullsize) Mount(c *Container) {
	f.overlay.mount(c, f.Name, f.update)
	f.update()
}

func (f *Fullsize) Update() {
	if f.c == nil {
		return
	}
	f.resolve(f.Name)
	f.update()
}

func (f *Fullsize) update() {
	if f.c == nil {
		return
	}
	f.applied = false
	ratio := f.ratio()
	var r ruleset
	if f.el != nil && validRatio(ratio) {
		win := f.c.Window()
		f.geometry = ComputeFullsize(ratio, win.Width(), win.Height())
		f.applied = true
		if f.geometry.Scaled {
			r.add("."+f.tag,
				"width: "+cssNumber(f.geometry.Width)+"px",
				"margin-left: "+cssNumber(f.geometry.MarginLeft)+"px",
				"left: initial",
				"top: initial")
		} else {
			r.add("."+f.tag,
				"height: "+cssNumber(f.geometry.Height)+"px",
				"left: initial",
				"top: initial")
		}
	}
	f.style.set(r.String())
}

// Geometry returns the last computed sizing; ok is false when none applies.
func (f *Fullsize) Geometry() (FullsizeGeometry, bool) { return f.geometry, f.applied }

func (f *Fullsize) Tag() string { return f.tag }

func (f *Fullsize) StyleText() string { return f.style.text() }

func (f *Fullsize) Unmount() {
	f.overlay.unmount()
	f.applied = false
}
