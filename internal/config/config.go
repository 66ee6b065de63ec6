// Package config loads flexy scene files.
//
// A scene describes a container mounted over a generated design: the
// container options, the simulated viewport and the components bound to the
// named nodes of the markup.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flexydesign/flexy"
	"github.com/flexydesign/flexy/dom"
)

// DefaultFile is the scene file looked up next to the markup.
const DefaultFile = "flexy.yaml"

// Scene represents a flexy.yaml file.
type Scene struct {
	Container flexy.Config `yaml:"container"`
	Viewport  Viewport     `yaml:"viewport"`

	Nodes     []NodeSpec     `yaml:"nodes,omitempty"`
	Deletions []string       `yaml:"deletions,omitempty"`
	Floating  []FloatingSpec `yaml:"floating,omitempty"`
	Fullsize  []string       `yaml:"fullsize,omitempty"`
	Lists     []ListSpec     `yaml:"lists,omitempty"`
	Portals   []PortalSpec   `yaml:"portals,omitempty"`
	Inputs    []InputSpec    `yaml:"inputs,omitempty"`
}

// Viewport is the simulated host window. Zero values keep the window defaults.
type Viewport struct {
	Width           float64 `yaml:"width,omitempty"`
	Height          float64 `yaml:"height,omitempty"`
	Locale          string  `yaml:"locale,omitempty"`
	MinimumFontSize float64 `yaml:"minimumFontSize,omitempty"`
	ReducedMotion   bool    `yaml:"reducedMotion,omitempty"`
}

// NodeSpec binds text and properties to a named node. When Device is set the
// binding only exists while the device matches.
type NodeSpec struct {
	Name   string            `yaml:"name"`
	Text   *string           `yaml:"text,omitempty"`
	Props  map[string]string `yaml:"props,omitempty"`
	Hidden bool              `yaml:"hidden,omitempty"`
	Device *flexy.Device     `yaml:"device,omitempty"`
}

type FloatingSpec struct {
	Name     string         `yaml:"name"`
	Position flexy.Position `yaml:"position,omitempty"`
}

// ListSpec turns a list into a template and fills it with Items. Each item
// maps the name of a node inside the template to its text.
type ListSpec struct {
	Name      string                `yaml:"name"`
	Item      string                `yaml:"item"`
	Preset    flexy.Preset          `yaml:"preset,omitempty"`
	Scroll    flexy.ScrollDirection `yaml:"scroll,omitempty"`
	Direction flexy.Direction       `yaml:"direction,omitempty"`
	Gap       float64               `yaml:"gap,omitempty"`
	Drag      flexy.DragDirection   `yaml:"drag,omitempty"`
	Items     []map[string]string   `yaml:"items,omitempty"`
}

type PortalSpec struct {
	Target string `yaml:"target,omitempty"`
	Class  string `yaml:"class,omitempty"`
	HTML   string `yaml:"html,omitempty"`
}

type InputSpec struct {
	Box         string `yaml:"box"`
	Text        string `yaml:"text"`
	Background  string `yaml:"background,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Value       string `yaml:"value,omitempty"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads the scene file at path if present. An empty path or a
// missing file yields an empty scene.
func LoadOptional(path string) (*Scene, error) {
	if path == "" {
		return &Scene{}, nil
	}
	s, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Scene{}, nil
	}
	return s, err
}

func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal encodes the scene back to yaml.
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func (s *Scene) validate() error {
	switch s.Container.Fit {
	case flexy.FitNone, flexy.FitWidth, flexy.FitHeight:
	default:
		return fmt.Errorf("invalid container fit %q", s.Container.Fit)
	}
	if s.Viewport.Width < 0 || s.Viewport.Height < 0 {
		return fmt.Errorf("invalid viewport %gx%g", s.Viewport.Width, s.Viewport.Height)
	}
	for i, l := range s.Lists {
		if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.Item) == "" {
			return fmt.Errorf("list %d: name and item are required", i)
		}
	}
	for i, in := range s.Inputs {
		if strings.TrimSpace(in.Box) == "" {
			return fmt.Errorf("input %d: box is required", i)
		}
	}
	return nil
}

// ApplyViewport sizes win and sets its host preferences. The resize is
// dispatched so that mounted containers follow.
func (s *Scene) ApplyViewport(win *dom.Window) {
	v := s.Viewport
	if v.Locale != "" {
		win.Locale = v.Locale
	}
	if v.MinimumFontSize > 0 {
		win.MinimumFontSize = v.MinimumFontSize
	}
	win.ReducedMotion = v.ReducedMotion

	w, h := win.Width(), win.Height()
	if v.Width > 0 {
		w = v.Width
	}
	if v.Height > 0 {
		h = v.Height
	}
	if w != win.Width() || h != win.Height() {
		win.Resize(w, h)
	}
}

// Components builds the flexy components the scene describes.
func (s *Scene) Components() []flexy.Component {
	var res []flexy.Component
	for _, n := range s.Nodes {
		node := flexy.Bind(n.Name, nodeBindings(n)...)
		node.Hidden = n.Hidden
		if n.Device != nil {
			res = append(res, &flexy.When{Device: *n.Device, Children: []flexy.Component{node}})
			continue
		}
		res = append(res, node)
	}
	for _, name := range s.Deletions {
		res = append(res, flexy.Delete(name))
	}
	for _, f := range s.Floating {
		res = append(res, &flexy.Floating{Name: f.Name, Position: f.Position})
	}
	for _, name := range s.Fullsize {
		res = append(res, &flexy.Fullsize{Name: name})
	}
	for _, l := range s.Lists {
		res = append(res, list(l))
	}
	for _, p := range s.Portals {
		res = append(res, portal(p))
	}
	for _, in := range s.Inputs {
		var b []flexy.Binding
		if in.Placeholder != "" {
			b = append(b, flexy.Prop("placeholder", in.Placeholder))
		}
		if in.Value != "" {
			b = append(b, flexy.Prop("value", in.Value))
		}
		res = append(res, &flexy.Input{BoxName: in.Box, TextName: in.Text, BackgroundName: in.Background, Bindings: b})
	}
	return res
}

func nodeBindings(n NodeSpec) []flexy.Binding {
	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var b []flexy.Binding
	for _, k := range keys {
		b = append(b, flexy.Prop(k, n.Props[k]))
	}
	if n.Text != nil {
		b = append(b, flexy.Text(*n.Text))
	}
	return b
}

func list(l ListSpec) *flexy.List {
	items := l.Items
	return &flexy.List{
		Name:      l.Name,
		Item:      l.Item,
		Preset:    l.Preset,
		Scroll:    l.Scroll,
		Direction: l.Direction,
		Gap:       l.Gap,
		Drag:      l.Drag,
		Render: func(t *flexy.ListTemplate) {
			flexy.Populate(t, items, func(item *dom.Element, fields map[string]string, _ int) {
				for name, text := range fields {
					flexy.BindWithin(item, name, flexy.Text(text))
				}
			})
		},
	}
}

func portal(p PortalSpec) *flexy.Portal {
	var attrs []flexy.Binding
	if p.Class != "" {
		attrs = append(attrs, flexy.Prop("className", p.Class))
	}
	markup := p.HTML
	return &flexy.Portal{
		Name:  p.Target,
		Attrs: attrs,
		Render: func(host *dom.Element) {
			if markup == "" {
				return
			}
			if err := host.SetInnerHTML(markup); err != nil {
				host.SetTextContent(markup)
			}
		},
	}
}

// Mount parses markup into a fresh document sized after the scene viewport,
// mounts a container over it under the body and returns both.
func (s *Scene) Mount(markup string, opts ...flexy.Option) (*dom.Document, *flexy.Container, error) {
	doc := dom.NewDocument()
	s.ApplyViewport(doc.Window)
	c := flexy.NewContainer(doc, s.Container, opts...)
	c.Add(s.Components()...)
	if err := c.MountMarkup(doc.Body(), markup); err != nil {
		return nil, nil, err
	}
	return doc, c, nil
}
