package flexy

import (
	"testing"
)

func TestDeviceType(t *testing.T) {
	tests := []struct {
		width float64
		want  DeviceType
	}{
		{320, Mobile},
		{768, Mobile},
		{769, Tablet},
		{1024, Tablet},
		{1025, Desktop},
		{1920, Desktop},
	}
	for _, tt := range tests {
		if got := (Environment{Width: tt.width, Height: 800}).DeviceType(); got != tt.want {
			t.Errorf("DeviceType() at width %v = %s, want %s", tt.width, got, tt.want)
		}
	}

	rank := map[DeviceType]int{Mobile: 0, Tablet: 1, Desktop: 2}
	prev := Mobile
	for w := 0.0; w <= 2000; w += 7 {
		cur := (Environment{Width: w}).DeviceType()
		if rank[cur] < rank[prev] {
			t.Fatalf("device type went from %s to %s at width %v", prev, cur, w)
		}
		prev = cur
	}
}

func TestOrientation(t *testing.T) {
	if got := (Environment{Width: 1280, Height: 720}).Orientation(); got != Landscape {
		t.Errorf("Orientation() = %s", got)
	}
	if got := (Environment{Width: 720, Height: 720}).Orientation(); got != Portrait {
		t.Errorf("square viewport orientation = %s", got)
	}
}

func TestDeviceMatch(t *testing.T) {
	desktop := Environment{Width: 1280, Height: 720, Locale: "en-US"}
	phone := Environment{Width: 390, Height: 844, Locale: "fr-FR"}

	tests := []struct {
		name   string
		device Device
		env    Environment
		want   bool
	}{
		{"empty matches", Device{}, phone, true},
		{"default", Device{Default: true, Types: []DeviceType{Tablet}}, desktop, true},
		{"type", Device{Types: []DeviceType{Mobile}}, phone, true},
		{"type mismatch", Device{Types: []DeviceType{Mobile, Tablet}}, desktop, false},
		{"orientation", Device{Orientations: []Orientation{Portrait}}, phone, true},
		{"orientation mismatch", Device{Orientations: []Orientation{Portrait}}, desktop, false},
		{"language", Device{Languages: []string{"de-DE", "en_us"}}, desktop, true},
		{"language mismatch", Device{Languages: []string{"en-US"}}, phone, false},
		{"max width", Device{Breakpoints: []Breakpoint{{Max: Size{Width: 800}}}}, phone, true},
		{"max width exceeded", Device{Breakpoints: []Breakpoint{{Max: Size{Width: 800}}}}, desktop, false},
		{"min height", Device{Breakpoints: []Breakpoint{{Min: Size{Height: 800}}}}, desktop, false},
		{"all criteria", Device{
			Types:        []DeviceType{Desktop},
			Orientations: []Orientation{Landscape},
			Languages:    []string{"en-US"},
			Breakpoints:  []Breakpoint{{Min: Size{Width: 1024, Height: 600}}},
		}, desktop, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.device.Match(tt.env); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWhen(t *testing.T) {
	node := Bind("title", Text("mobile"))
	when := &When{Device: Device{Types: []DeviceType{Mobile}}, Children: []Component{node}}
	doc, c := mountDesign(t, design, 1280, 720, Config{}, nil, when)

	if when.Active() {
		t.Fatal("children mounted on desktop")
	}
	if got := c.Resolve("title").TextContent(); got != "Title" {
		t.Errorf("title = %q", got)
	}

	doc.Window.Resize(400, 800)
	if !when.Active() || c.Resolve("title").TextContent() != "mobile" {
		t.Error("children not mounted on mobile")
	}

	doc.Window.Resize(1280, 720)
	if when.Active() || node.Element() != nil {
		t.Error("children still mounted on desktop")
	}

	c.Unmount()
	if got := doc.Window.ListenerCount("resize"); got != 0 {
		t.Errorf("%d resize listeners left", got)
	}
}
