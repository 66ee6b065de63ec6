// Package flexy makes static, design-generated markup interactive.
//
// A Container owns one design subtree. It scales the design so that it fits
// the viewport, exposes named nodes of the generated markup to components
// that bind data and handlers to them, and turns list items into templates.
// The markup itself is never regenerated: nodes are found by their logical
// name (the data-name attribute) and mutated in place.
package flexy

import (
	"math"

	"go.uber.org/zap"

	"github.com/flexydesign/flexy/dom"
)

// Marker attributes placed on the generated markup.
const (
	ContainerAttr = "flexy-container"  // the design container, whose size gives the design ratio
	ListAttr      = "flexy-list"       // lists using the column-list preset
	InlineSvgAttr = "flexy-inline-svg" // boxes around inline svg drawings
	TextSizeAttr  = "data-text-size"   // fontVw:widthVw:heightVw:lineHeightVw
)

// Overflow values accepted for the design container.
type Overflow string

const (
	OverflowAuto    Overflow = "auto"
	OverflowHidden  Overflow = "hidden"
	OverflowScroll  Overflow = "scroll"
	OverflowVisible Overflow = "visible"
	OverflowInitial Overflow = "initial"
)

// AutoBackground makes the body use the design container background.
const AutoBackground = "auto"

// Config holds the container options. Each option toggles one effect.
// Animate, AdjustTextSize and AdjustInlineSvgSize are on unless set to false.
type Config struct {
	Fit                 FitMode  `yaml:"fit,omitempty"`
	BackgroundColor     string   `yaml:"backgroundColor,omitempty"`
	BorderColor         string   `yaml:"borderColor,omitempty"`
	Animate             *bool    `yaml:"animate,omitempty"`
	Overflow            Overflow `yaml:"overflow,omitempty"`
	AdjustTextSize      *bool    `yaml:"adjustTextSize,omitempty"`
	AdjustInlineSvgSize *bool    `yaml:"adjustInlineSvgSize,omitempty"`
}

// Bool returns a pointer to b, for the optional Config switches.
func Bool(b bool) *bool { return &b }

func enabled(b *bool) bool { return b == nil || *b }

// AnimationDuration is the transition duration used when Animate is on.
const AnimationDuration = "500ms"

type Option func(*Container)

func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.logger = l.Named("container")
		}
	}
}

func WithTags(t TagAllocator) Option {
	return func(c *Container) {
		if t != nil {
			c.tags = t
		}
	}
}

// Container is the mounted root scope of a design subtree. It is the only
// writer of its root element, scale and background state; components hold a
// read-only back reference to it.
type Container struct {
	doc    *dom.Document
	config Config
	tags   TagAllocator
	logger *zap.Logger

	root       *dom.Element
	tag        string
	ratio      float64
	scale      float64
	scaled     bool
	background string
	mounted    bool

	style      *styleBlock
	subs       subscriptions
	components []Component
}

func NewContainer(doc *dom.Document, cfg Config, opts ...Option) *Container {
	c := &Container{
		doc:    doc,
		config: cfg,
		tags:   DefaultTags,
		logger: zap.NewNop(),
		ratio:  math.NaN(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Container) Document() *dom.Document { return c.doc }
func (c *Container) Window() *dom.Window     { return c.doc.Window }
func (c *Container) Config() Config          { return c.config }
func (c *Container) Logger() *zap.Logger     { return c.logger }
func (c *Container) Mounted() bool           { return c.mounted }

// Root returns the root element, nil when unmounted.
func (c *Container) Root() *dom.Element { return c.root }

// Tag returns the unique class of the mounted root.
func (c *Container) Tag() string { return c.tag }

// Ratio returns the design ratio measured at mount, NaN when unknown.
func (c *Container) Ratio() float64 { return c.ratio }

// Scale returns the last computed scale factor and whether it is applied as
// a transform. The factor is 0 until a height fit was computed.
func (c *Container) Scale() (float64, bool) { return c.scale, c.scaled }

// Background returns the body background color currently emitted.
func (c *Container) Background() string { return c.background }

// StyleText returns the content of the container style block.
func (c *Container) StyleText() string { return c.style.text() }

// Design returns the design container element, if any.
func (c *Container) Design() *dom.Element {
	if c.root == nil {
		return nil
	}
	if c.root.HasAttribute(ContainerAttr) {
		return c.root
	}
	res := c.root.QueryAttr(ContainerAttr)
	if len(res) == 0 {
		return nil
	}
	return res[0]
}

// Mount creates the root element under parent, moves the design nodes into
// it, runs the container effects and then mounts the components added so far.
// Mounting a mounted container does nothing.
func (c *Container) Mount(parent *dom.Element, design ...*dom.Element) {
	if c.mounted {
		return
	}
	c.tag = c.tags.Allocate()
	root := c.doc.CreateElement("div")
	root.ClassList().Add(c.tag)
	for _, d := range design {
		if d != nil {
			root.AppendChild(d)
		}
	}
	if parent != nil {
		parent.AppendChild(root)
	}
	c.root = root
	c.mounted = true
	c.logger.Debug("mounted", zap.String("tag", c.tag))

	win := c.Window()
	if enabled(c.config.AdjustTextSize) {
		c.subs.listen(win, "resize", func(dom.Event) { AdjustTextSize(c.root, win) })
		AdjustTextSize(c.root, win)
	}
	if enabled(c.config.AdjustInlineSvgSize) {
		c.subs.listen(win, "resize", func(dom.Event) { AdjustInlineSvgSize(c.root) })
		AdjustInlineSvgSize(c.root)
	}

	c.style = newStyleBlock(c.doc, c.tag)
	c.fitByHeight()
	c.autoBackground()
	c.writeStyle()

	for _, comp := range c.components {
		comp.Mount(c)
	}
}

// MountMarkup parses markup and mounts it as the design subtree.
func (c *Container) MountMarkup(parent *dom.Element, markup string) error {
	ctx := parent
	if ctx == nil {
		ctx = c.doc.Body()
	}
	nodes, err := c.doc.ParseFragment(markup, ctx)
	if err != nil {
		return &Error{Op: "container.mount", Kind: KindMarkup, Err: err}
	}
	var design []*dom.Element
	for _, n := range nodes {
		if el := c.doc.Wrap(n); el != nil {
			design = append(design, el)
		}
	}
	c.Mount(parent, design...)
	return nil
}

// fitByHeight measures the design ratio and, for fit="height", subscribes the
// scale computation to resizes.
func (c *Container) fitByHeight() {
	design := c.Design()
	if design == nil {
		c.report("container.fit", KindMissingNode, ContainerAttr)
		return
	}
	c.ratio = DesignRatio(design.ClientWidth(), design.ClientHeight())
	if c.config.Fit != FitHeight {
		return
	}
	if math.IsNaN(c.ratio) {
		c.report("container.fit", KindMalformedRatio, ContainerAttr)
		return
	}
	c.subs.listen(c.Window(), "resize", func(dom.Event) {
		c.updateScale()
		c.writeStyle()
	})
	c.updateScale()
}

func (c *Container) updateScale() {
	win := c.Window()
	c.scale, c.scaled = HeightFit(c.ratio, win.Width(), win.Height())
}

func (c *Container) autoBackground() {
	c.background = ""
	bg := c.config.BackgroundColor
	if bg == "" {
		return
	}
	if bg != AutoBackground {
		c.background = bg
		return
	}
	design := c.Design()
	if design == nil {
		return
	}
	c.background = design.ComputedStyle("background-color")
}

// css returns the container rules for the current state.
func (c *Container) css() string {
	var r ruleset
	scope := "." + c.tag
	if c.background != "" {
		r.add("body", "background-color: "+c.background)
	}
	if c.config.Overflow != "" {
		r.add(scope+" ["+ContainerAttr+"]", "overflow: "+string(c.config.Overflow))
	}
	if c.scaled {
		r.add(scope, "transform: scale("+cssNumber(c.scale)+")")
	}
	if c.config.BorderColor != "" {
		r.add(scope+" > ["+ContainerAttr+"]",
			"border-left: 1px solid "+c.config.BorderColor,
			"border-right: 1px solid "+c.config.BorderColor)
	}
	if enabled(c.config.Animate) && !c.Window().ReducedMotion {
		r.add(scope+" ["+ContainerAttr+"] > *", "transition: all "+AnimationDuration+" ease-in-out")
	}
	list, box := scope+" ["+ListAttr+"]", scope+" ["+ContainerAttr+"]"
	r.add(list+",\n"+box, "user-select: none", "scrollbar-width: none", "-ms-overflow-style: none")
	r.add(list+"::-webkit-scrollbar,\n"+box+"::-webkit-scrollbar", "display: none", "width: 0")
	r.add(list+"::-webkit-scrollbar-button,\n"+box+"::-webkit-scrollbar-button", "display: none")
	return r.String()
}

func (c *Container) writeStyle() {
	c.style.set(c.css())
}

// Resolve returns the first element inside the container named name, or nil.
// Absence is expected while the target is not mounted yet.
func (c *Container) Resolve(name string) *dom.Element {
	if c.root == nil || name == "" {
		return nil
	}
	return c.root.QueryName(name)
}

// Add registers components. They are mounted immediately when the container
// is mounted, after the container's own effects otherwise.
func (c *Container) Add(components ...Component) {
	for _, comp := range components {
		if comp == nil {
			continue
		}
		c.components = append(c.components, comp)
		if c.mounted {
			comp.Mount(c)
		}
	}
}

// Remove unmounts comp and forgets it.
func (c *Container) Remove(comp Component) {
	for i, v := range c.components {
		if v != comp {
			continue
		}
		c.components = append(c.components[:i], c.components[i+1:]...)
		if c.mounted {
			comp.Unmount()
		}
		return
	}
}

// Render re-runs the effects of the components after a change of their
// inputs. Components whose targets were missing retry their resolution.
func (c *Container) Render() {
	if !c.mounted {
		return
	}
	c.autoBackground()
	c.writeStyle()
	for _, comp := range c.components {
		if u, ok := comp.(Updater); ok {
			u.Update()
		}
	}
}

// Unmount tears down the components, most recent first, then the container
// listeners, style block and root element.
func (c *Container) Unmount() {
	if !c.mounted {
		return
	}
	for i := len(c.components) - 1; i >= 0; i-- {
		c.components[i].Unmount()
	}
	c.subs.release()
	c.style.remove()
	c.style = nil
	if c.root != nil {
		c.root.Remove()
	}
	c.logger.Debug("unmounted", zap.String("tag", c.tag))
	c.root = nil
	c.mounted = false
	c.scale, c.scaled = 0, false
	c.ratio = math.NaN()
}

func (c *Container) report(op string, kind Kind, name string) {
	c.logger.Debug("degraded", zap.Error(&Error{Op: op, Kind: kind, Name: name}))
}
