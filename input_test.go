package flexy

import (
	"testing"
)

const form = `<div flexy-container style="width: 400px; height: 200px">` +
	`<div data-name="field" class="f1" style="width: 200px; height: 30px">` +
	`<span data-name="field-text" style="font-size: 14px; color: blue">Name</span>` +
	`</div>` +
	`<div data-name="field-bg" style="background-color: white; border-radius: 4px; width: 10px"></div>` +
	`</div>`

func TestInput(t *testing.T) {
	in := &Input{
		BoxName:        "field",
		TextName:       "field-text",
		BackgroundName: "field-bg",
		Bindings:       []Binding{Prop("placeholder", "Your name")},
	}
	_, c := mountDesign(t, form, 1280, 720, Config{}, nil, in)

	input := in.Element()
	if input == nil || input.Tag() != "input" {
		t.Fatalf("box not replaced: %v", input)
	}
	if c.Resolve("field") != nil {
		t.Error("box still in the document")
	}
	if got, _ := input.Attr("class"); got != "f1" {
		t.Errorf("class = %q", got)
	}
	s := input.Style()
	for prop, want := range map[string]string{
		"box-sizing":       "border-box",
		"font-size":        "14px",
		"color":            "blue",
		"background-color": "white",
		"border-radius":    "4px",
	} {
		if got := s.Get(prop); got != want {
			t.Errorf("%s = %q, want %q", prop, got, want)
		}
	}
	if s.Get("width") != "" {
		t.Error("layout properties must not be copied")
	}
	if v, _ := input.Property("placeholder"); v != "Your name" {
		t.Errorf("placeholder = %v", v)
	}

	c.Remove(in)
	if c.Resolve("field") == nil || input.Connected() {
		t.Error("box not restored on unmount")
	}
}

func TestInputMissingBox(t *testing.T) {
	in := &Input{BoxName: "nope", TextName: "field-text"}
	_, c := mountDesign(t, form, 1280, 720, Config{}, nil, in)
	if in.Element() != nil {
		t.Fatal("input created without a box")
	}
	c.Render()
	if in.Element() != nil {
		t.Error("input created without a box on render")
	}
	c.Remove(in)
}
