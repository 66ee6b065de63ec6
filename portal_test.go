package flexy

import (
	"testing"

	"github.com/flexydesign/flexy/dom"
)

func TestPortal(t *testing.T) {
	var clicks int
	p := &Portal{
		Name:  "overlay",
		Attrs: []Binding{Prop("className", "modal"), Prop("role", "dialog"), On("click", func(dom.Event) { clicks++ })},
		Render: func(host *dom.Element) {
			host.SetTextContent("inside")
		},
	}
	_, c := mount(t, 1280, 720, p)
	overlay := c.Resolve("overlay")

	host := p.Host()
	if host == nil || host.Parent() != overlay {
		t.Fatal("portal not injected under its target")
	}
	if got, _ := host.Attr("class"); got != "modal" {
		t.Errorf("class = %q", got)
	}
	if got, _ := host.Attr("role"); got != "dialog" {
		t.Errorf("role = %q", got)
	}
	if host.TextContent() != "inside" {
		t.Errorf("content = %q", host.TextContent())
	}
	host.Click()
	if clicks != 1 {
		t.Errorf("handler ran %d times", clicks)
	}

	c.Remove(p)
	if len(overlay.Children()) != 0 || host.ListenerCount("click") != 0 {
		t.Error("portal not torn down")
	}
}

func TestPortalRoot(t *testing.T) {
	p := &Portal{}
	_, c := mount(t, 1280, 720, p)
	if p.Host() == nil || p.Host().Parent() != c.Root() {
		t.Error("portal without a name must go under the root")
	}
}

func TestPortalTargetRemoved(t *testing.T) {
	p := &Portal{Name: "overlay"}
	_, c := mount(t, 1280, 720, p)
	overlay := c.Resolve("overlay")
	host := p.Host()

	// The target leaves the document before the portal is torn down.
	overlay.Remove()
	c.Remove(p)
	if host.Parent() != nil {
		t.Error("host must be removed from the parent it was created in")
	}

	// A host moved elsewhere is left alone.
	p2 := &Portal{Name: "footer"}
	c.Add(p2)
	moved := p2.Host()
	c.Root().AppendChild(moved)
	c.Remove(p2)
	if moved.Parent() != c.Root() {
		t.Error("host removed from a parent it was not created in")
	}
}

func TestPortalSetTarget(t *testing.T) {
	p := &Portal{Name: "nope"}
	_, c := mount(t, 1280, 720, p)
	if p.Host() != nil {
		t.Fatal("portal created under a missing target")
	}
	c.Render()
	if p.Host() != nil {
		t.Fatal("portal created under a missing target on render")
	}

	p.SetTarget("footer")
	footer := c.Resolve("footer")
	if p.Host() == nil || p.Host().Parent() != footer {
		t.Fatal("portal not moved to the new target")
	}
	first := p.Host()
	p.SetTarget("overlay")
	if first.Parent() != nil || p.Host().Parent() != c.Resolve("overlay") {
		t.Error("previous host left behind")
	}
}
