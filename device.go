package flexy

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/flexydesign/flexy/dom"
)

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

type DeviceType string

const (
	Mobile  DeviceType = "mobile"
	Tablet  DeviceType = "tablet"
	Desktop DeviceType = "desktop"
)

// Device class width thresholds, in px, inclusive.
const (
	MobileMaxWidth = 768
	TabletMaxWidth = 1024
)

// Size is a pair of optional dimensions; zero means not declared.
type Size struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Breakpoint is a viewport range. A declared Max bound fails when the
// viewport exceeds it, a declared Min bound when the viewport is below it.
type Breakpoint struct {
	Max Size `yaml:"max,omitempty"`
	Min Size `yaml:"min,omitempty"`
}

// Environment holds the runtime facts a Device predicate is evaluated on.
type Environment struct {
	Width  float64
	Height float64
	Locale string
}

func EnvironmentOf(w *dom.Window) Environment {
	return Environment{Width: w.Width(), Height: w.Height(), Locale: w.Locale}
}

func (e Environment) Orientation() Orientation {
	if e.Width > e.Height {
		return Landscape
	}
	return Portrait
}

func (e Environment) DeviceType() DeviceType {
	switch {
	case e.Width <= MobileMaxWidth:
		return Mobile
	case e.Width <= TabletMaxWidth:
		return Tablet
	}
	return Desktop
}

// Device is a predicate over the Environment. All criteria are ANDed, a list
// criterion matches when the current value is one of its members, and an
// empty criterion always matches. Default matches unconditionally.
type Device struct {
	Default      bool          `yaml:"default,omitempty"`
	Orientations []Orientation `yaml:"orientations,omitempty"`
	Types        []DeviceType  `yaml:"types,omitempty"`
	Languages    []string      `yaml:"languages,omitempty"`
	Breakpoints  []Breakpoint  `yaml:"breakpoints,omitempty"`
}

func (d Device) Match(env Environment) bool {
	if d.Default {
		return true
	}
	return d.matchOrientation(env) &&
		d.matchType(env) &&
		d.matchLanguage(env) &&
		d.matchBreakpoints(env)
}

func (d Device) matchOrientation(env Environment) bool {
	if len(d.Orientations) == 0 {
		return true
	}
	o := env.Orientation()
	for _, v := range d.Orientations {
		if v == o {
			return true
		}
	}
	return false
}

func (d Device) matchType(env Environment) bool {
	if len(d.Types) == 0 {
		return true
	}
	t := env.DeviceType()
	for _, v := range d.Types {
		if v == t {
			return true
		}
	}
	return false
}

func (d Device) matchLanguage(env Environment) bool {
	if len(d.Languages) == 0 {
		return true
	}
	for _, v := range d.Languages {
		if sameLocale(v, env.Locale) {
			return true
		}
	}
	return false
}

func (d Device) matchBreakpoints(env Environment) bool {
	for _, bp := range d.Breakpoints {
		if bp.Max.Width != 0 && env.Width > bp.Max.Width {
			return false
		}
		if bp.Max.Height != 0 && env.Height > bp.Max.Height {
			return false
		}
		if bp.Min.Width != 0 && env.Width < bp.Min.Width {
			return false
		}
		if bp.Min.Height != 0 && env.Height < bp.Min.Height {
			return false
		}
	}
	return true
}

// sameLocale compares two BCP 47 tags in canonical form, so that "en_us"
// and "en-US" match. Unparsable tags are compared as strings.
func sameLocale(a, b string) bool {
	ta, errA := language.Parse(strings.ReplaceAll(a, "_", "-"))
	tb, errB := language.Parse(strings.ReplaceAll(b, "_", "-"))
	if errA != nil || errB != nil {
		return strings.EqualFold(a, b)
	}
	return ta == tb
}

// When mounts its children while Device matches the window, and unmounts
// them as soon as it stops matching. The predicate is evaluated again on
// every resize.
type When struct {
	Device   Device
	Children []Component

	c      *Container
	active bool
	subs   subscriptions
}

func (w *When) Mount(c *Container) {
	w.c = c
	w.subs.listen(c.Window(), "resize", func(dom.Event) { w.evaluate() })
	w.evaluate()
}

// Active reports whether the children are mounted.
func (w *When) Active() bool { return w.active }

func (w *When) Update() {
	if w.c == nil {
		return
	}
	w.evaluate()
	if !w.active {
		return
	}
	for _, child := range w.Children {
		if u, ok := child.(Updater); ok {
			u.Update()
		}
	}
}

func (w *When) evaluate() {
	match := w.Device.Match(EnvironmentOf(w.c.Window()))
	switch {
	case match && !w.active:
		w.active = true
		for _, child := range w.Children {
			child.Mount(w.c)
		}
	case !match && w.active:
		w.unmountChildren()
	}
}

func (w *When) unmountChildren() {
	for i := len(w.Children) - 1; i >= 0; i-- {
		w.Children[i].Unmount()
	}
	w.active = false
}

func (w *When) Unmount() {
	w.subs.release()
	if w.active {
		w.unmountChildren()
	}
	w.c = nil
}
