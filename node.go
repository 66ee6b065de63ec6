package flexy

import (
	"github.com/flexydesign/flexy/dom"
)

// Component is a unit of behavior attached to a Container. Mount runs once
// the container root is committed; Unmount must undo exactly what Mount and
// later updates did.
type Component interface {
	Mount(c *Container)
	Unmount()
}

// Updater is implemented by components that re-run their effect when the
// container renders again.
type Updater interface {
	Update()
}

// Node binds properties and handlers to the node named Name.
type Node struct {
	Name     string
	Bindings []Binding
	// Hidden hides the node, keeping it in the tree.
	Hidden bool

	c *Container
	b binder
}

// Bind returns a Node component for name.
func Bind(name string, bindings ...Binding) *Node {
	return &Node{Name: name, Bindings: bindings}
}

func (n *Node) Mount(c *Container) {
	n.c = c
	n.apply()
}

// Update resolves the node again and reapplies the bindings.
func (n *Node) Update() {
	if n.c == nil {
		return
	}
	n.apply()
}

// Set replaces the bindings. The listeners of the previous set are removed
// before the new ones are attached.
func (n *Node) Set(bindings ...Binding) {
	n.Bindings = bindings
	n.Update()
}

// SetVisible toggles the visibility of the node without removing it.
func (n *Node) SetVisible(visible bool) {
	n.Hidden = !visible
	n.Update()
}

// Element returns the element currently bound, if any.
func (n *Node) Element() *dom.Element {
	return n.b.el
}

func (n *Node) Unmount() {
	n.b.release()
	n.c = nil
}

func (n *Node) apply() {
	el := n.c.Resolve(n.Name)
	if el == nil {
		n.b.release()
		n.c.report("node.bind", KindMissingNode, n.Name)
		return
	}
	if n.Hidden {
		el.Style().Set("visibility", "hidden")
	} else {
		el.Style().Set("visibility", "visible")
	}
	n.b.apply(el, n.Bindings)
}

// Deletion removes the node named Name from the document. It happens once
// per mount and is not undone by Unmount.
type Deletion struct {
	Name string

	c       *Container
	deleted bool
}

func Delete(name string) *Deletion {
	return &Deletion{Name: name}
}

func (d *Deletion) Mount(c *Container) {
	d.c = c
	d.deleted = false
	d.Update()
}

func (d *Deletion) Update() {
	if d.c == nil || d.deleted {
		return
	}
	el := d.c.Resolve(d.Name)
	if el == nil {
		d.c.report("deletion", KindMissingNode, d.Name)
		return
	}
	el.Remove()
	d.deleted = true
}

// Deleted reports whether the node was removed during this mount.
func (d *Deletion) Deleted() bool { return d.deleted }

func (d *Deletion) Unmount() {
	d.c = nil
}
