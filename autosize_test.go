package flexy

import (
	"testing"

	"github.com/flexydesign/flexy/dom"
)

func TestAdjustTextSize(t *testing.T) {
	doc, err := dom.ParseString(`<div id="root"><p data-text-size="1:10:2:1.5">small</p></div>`)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Body().FirstElementChild()
	p := root.FirstElementChild()
	win := doc.Window
	win.Resize(1000, 800)

	AdjustTextSize(root, win)
	if p.HasAttribute("style") {
		t.Fatal("no minimum font size, nothing to compensate")
	}

	win.MinimumFontSize = 12
	AdjustTextSize(root, win)
	s := p.Style()
	for prop, want := range map[string]string{
		"transform":        "scale(0.833333)",
		"width":            "12vw",
		"height":           "2.4vw",
		"line-height":      "1.8vw",
		"transform-origin": "1.2% 0%",
	} {
		if got := s.Get(prop); got != want {
			t.Errorf("%s = %q, want %q", prop, got, want)
		}
	}

	win.Resize(2000, 800)
	AdjustTextSize(root, win)
	if p.HasAttribute("style") {
		t.Errorf("large enough text keeps %q", s.String())
	}
}

func TestAdjustTextSizeZeroFont(t *testing.T) {
	doc, err := dom.ParseString(`<div id="root"><p data-text-size="0:10:2:1.5">none</p><p data-text-size="-1">neg</p></div>`)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Body().FirstElementChild()
	doc.Window.MinimumFontSize = 12

	AdjustTextSize(root, doc.Window)
	for _, p := range root.Children() {
		if p.HasAttribute("style") {
			t.Errorf("%s: style %q", p.TextContent(), p.Style().String())
		}
	}
}

func TestAdjustTextSizeOnResize(t *testing.T) {
	markup := `<div flexy-container style="width: 1280px; height: 720px"><p data-name="p" data-text-size="1">t</p></div>`
	doc := dom.NewDocument()
	doc.Window.MinimumFontSize = 12
	c := NewContainer(doc, Config{}, WithTags(SequentialTags("t")))
	if err := c.MountMarkup(doc.Body(), markup); err != nil {
		t.Fatal(err)
	}
	p := c.Resolve("p")
	if p.Style().Get("transform") != "" {
		t.Fatal("12.8px text must not be compensated")
	}
	doc.Window.Resize(600, 720)
	if got := p.Style().Get("transform"); got != "scale(0.5)" {
		t.Errorf("transform = %q", got)
	}

	off := NewContainer(dom.NewDocument(), Config{AdjustTextSize: Bool(false), AdjustInlineSvgSize: Bool(false)})
	off.Mount(nil)
	if got := off.Window().ListenerCount("resize"); got != 0 {
		t.Errorf("disabled effects registered %d listeners", got)
	}
}

func TestAdjustInlineSvgSize(t *testing.T) {
	doc, err := dom.ParseString(`<div id="root">` +
		`<div flexy-inline-svg style="width: 100px; height: 50px"><svg width="10" height="20"></svg></div>` +
		`<div flexy-inline-svg style="width: 100px; height: 50px"><svg width="40"></svg></div>` +
		`<div flexy-inline-svg style="width: 100px"><svg></svg></div>` +
		`</div>`)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Body().FirstElementChild()
	AdjustInlineSvgSize(root)

	svgs, err := root.QueryAll(".//*[local-name()='svg']")
	if err != nil || len(svgs) != 3 {
		t.Fatalf("QueryAll() = %d, %v", len(svgs), err)
	}
	want := []string{"scale(10, 2.5)", "scaleX(2.5)", ""}
	for i, svg := range svgs {
		if got := svg.Style().Get("transform"); got != want[i] {
			t.Errorf("svg %d transform = %q, want %q", i, got, want[i])
		}
	}
}
