package flexy

import (
	"fmt"

	"github.com/flexydesign/flexy/dom"
)

// Portal injects a div under the node named Name, or under the container
// root when Name is empty, and lets Render fill it.
//
// Property bindings of Attrs become attributes (className becomes class),
// handler bindings become listeners of the div. On teardown the div is
// removed from the parent it was inserted in at creation time, and only if it
// is still there.
type Portal struct {
	Name   string
	Attrs  []Binding
	Render func(host *dom.Element)

	c      *Container
	host   *dom.Element
	parent *dom.Element
	subs   subscriptions
}

func (p *Portal) Mount(c *Container) {
	p.c = c
	p.create()
}

// Update creates the portal if its target was missing until now.
func (p *Portal) Update() {
	if p.c == nil || p.host != nil {
		return
	}
	p.create()
}

// SetTarget moves the portal under another named node, recreating it.
func (p *Portal) SetTarget(name string) {
	if name == p.Name {
		return
	}
	p.Name = name
	if p.c == nil {
		return
	}
	p.destroy()
	p.create()
}

// Host returns the injected element, nil when not created.
func (p *Portal) Host() *dom.Element { return p.host }

func (p *Portal) create() {
	parent := p.c.Root()
	if p.Name != "" {
		parent = p.c.Resolve(p.Name)
	}
	if parent == nil {
		p.c.report("portal", KindMissingNode, p.Name)
		return
	}

	host := p.c.Document().CreateElement("div")
	for _, a := range p.Attrs {
		switch a.Kind {
		case HandlerBinding:
			if a.Handler != nil && a.Event != "" {
				p.subs.add(host, a.Event, a.Handler)
			}
		case PropertyBinding:
			key := a.Key
			if key == "className" {
				key = "class"
			}
			if key != "" {
				host.SetAttribute(key, attrValue(a.Value))
			}
		}
	}
	parent.AppendChild(host)
	p.host, p.parent = host, parent
	if p.Render != nil {
		p.Render(host)
	}
}

func (p *Portal) destroy() {
	p.subs.release()
	if p.host != nil && p.parent != nil {
		p.parent.RemoveChild(p.host)
	}
	p.host, p.parent = nil, nil
}

func (p *Portal) Unmount() {
	p.destroy()
	p.c = nil
}

func attrValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
