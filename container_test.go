package flexy

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/flexydesign/flexy/dom"
)

func TestContainerFitByHeight(t *testing.T) {
	doc, c := mount(t, 1280, 1024)

	if got := c.Tag(); got != "css-t1" {
		t.Fatalf("Tag() = %q", got)
	}
	if c.Ratio() != 56.25 {
		t.Errorf("Ratio() = %v", c.Ratio())
	}
	if scale, scaled := c.Scale(); scaled || Round(scale, 6) != 1.422222 {
		t.Errorf("Scale() = %v, %v, want the unapplied factor 1.422222", scale, scaled)
	}
	if strings.Contains(c.StyleText(), "transform") {
		t.Errorf("unexpected transform:\n%s", c.StyleText())
	}

	doc.Window.Resize(1280, 600)
	scale, scaled := c.Scale()
	if !scaled || Round(scale, 6) != 0.833333 {
		t.Fatalf("Scale() = %v, %v", scale, scaled)
	}
	if !strings.Contains(c.StyleText(), ".css-t1 {\n  transform: scale(0.833333);\n}") {
		t.Errorf("missing transform rule:\n%s", c.StyleText())
	}

	doc.Window.Resize(1280, 1024)
	if _, scaled := c.Scale(); scaled || strings.Contains(c.StyleText(), "transform") {
		t.Error("transform must be dropped once the design fits again")
	}
}

func TestContainerFitWidth(t *testing.T) {
	doc, c := mountDesign(t, design, 1280, 600, Config{Fit: FitWidth}, nil)
	if _, scaled := c.Scale(); scaled {
		t.Error("fit=width never scales")
	}
	if got := doc.Window.ListenerCount("resize"); got != 2 {
		t.Errorf("only the text and svg effects listen to resizes, got %d listeners", got)
	}
}

func TestContainerStyle(t *testing.T) {
	cfg := Config{
		Fit:             FitHeight,
		BackgroundColor: AutoBackground,
		BorderColor:     "#ccc",
		Overflow:        OverflowHidden,
	}
	doc, c := mountDesign(t, design, 1280, 600, cfg, nil)
	css := c.StyleText()

	for _, want := range []string{
		"body {\n  background-color: rgb(1, 2, 3);\n}",
		".css-t1 [flexy-container] {\n  overflow: hidden;\n}",
		".css-t1 > [flexy-container] {\n  border-left: 1px solid #ccc;\n  border-right: 1px solid #ccc;\n}",
		".css-t1 [flexy-container] > * {\n  transition: all 500ms ease-in-out;\n}",
		".css-t1 [flexy-list],\n.css-t1 [flexy-container] {\n  user-select: none;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("style lacks %q:\n%s", want, css)
		}
	}
	snaps.MatchSnapshot(t, css)

	style, err := doc.Head().Query(".//style[@data-flexy-style='css-t1']")
	if err != nil || style == nil {
		t.Fatalf("style block not in head: %v", err)
	}
	if c.Background() != "rgb(1, 2, 3)" {
		t.Errorf("Background() = %q", c.Background())
	}
}

func TestContainerExplicitBackground(t *testing.T) {
	_, c := mountDesign(t, design, 1280, 720, Config{BackgroundColor: "#fff"}, nil)
	if !strings.Contains(c.StyleText(), "body {\n  background-color: #fff;\n}") {
		t.Errorf("explicit background not emitted:\n%s", c.StyleText())
	}
}

func TestContainerReducedMotion(t *testing.T) {
	doc := dom.NewDocument()
	doc.Window.ReducedMotion = true
	c := NewContainer(doc, Config{}, WithTags(SequentialTags("t")))
	if err := c.MountMarkup(doc.Body(), design); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(c.StyleText(), "transition") {
		t.Errorf("transition emitted with reduced motion:\n%s", c.StyleText())
	}

	_, c = mountDesign(t, design, 1280, 720, Config{Animate: Bool(false)}, nil)
	if strings.Contains(c.StyleText(), "transition") {
		t.Error("transition emitted with animate off")
	}
}

func TestContainerMalformedRatio(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	markup := `<div flexy-container style="height: 100px"><p data-name="p">p</p></div>`
	doc, c := mountDesign(t, markup, 1280, 600, Config{Fit: FitHeight}, []Option{WithLogger(zap.New(core))})

	if !math.IsNaN(c.Ratio()) {
		t.Errorf("Ratio() = %v, want NaN", c.Ratio())
	}
	if _, scaled := c.Scale(); scaled {
		t.Error("a malformed ratio must not scale")
	}
	doc.Window.Resize(1000, 500)

	entries := logs.FilterMessage("degraded").All()
	if len(entries) == 0 {
		t.Fatal("malformed ratio not reported")
	}
	err, ok := entries[0].ContextMap()["error"].(string)
	if !ok || !strings.Contains(err, "malformed-ratio") {
		t.Errorf("logged error = %v", entries[0].ContextMap())
	}
}

func TestContainerUnmount(t *testing.T) {
	comps := []Component{
		Bind("cta", On("click", func(dom.Event) {})),
		&Floating{Name: "footer", Position: Bottom},
		&Fullsize{Name: "overlay"},
		&When{Device: Device{Default: true}},
		&List{Name: "list", Item: "item", Drag: DragBoth},
	}
	doc, c := mount(t, 1280, 600, comps...)
	if doc.Window.ListenerCount("resize") == 0 {
		t.Fatal("no resize listener registered")
	}

	c.Unmount()
	if got := doc.Window.ListenerCount("resize"); got != 0 {
		t.Errorf("%d resize listeners left after unmount", got)
	}
	if got := len(doc.Head().Children()); got != 0 {
		t.Errorf("%d style blocks left in head", got)
	}
	if c.Root() != nil || c.Mounted() {
		t.Error("container still mounted")
	}
	if strings.Contains(doc.String(), "flexy-container") {
		t.Error("design subtree still in the document")
	}

	// Mounting again starts from a clean state.
	first := c.Tag()
	c.Mount(doc.Body())
	if c.Tag() == first || !c.Mounted() {
		t.Errorf("remount tag = %q", c.Tag())
	}
	c.Unmount()
	if got := doc.Window.ListenerCount("resize"); got != 0 {
		t.Errorf("%d resize listeners left after the second unmount", got)
	}
}

func TestContainerMissingNodeReported(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	mountDesign(t, design, 1280, 720, Config{}, []Option{WithLogger(zap.New(core))}, Bind("nope", Text("x")))

	entries := logs.FilterMessage("degraded").All()
	if len(entries) != 1 {
		t.Fatalf("got %d degraded entries, want 1", len(entries))
	}
	if got := entries[0].LoggerName; got != "container" {
		t.Errorf("logger name = %q", got)
	}
}

func TestErrorIs(t *testing.T) {
	err := &Error{Op: "list.capture", Kind: KindTemplateCapture, Name: "list"}
	if !errors.Is(err, ErrTemplateCapture) {
		t.Error("errors.Is must match the sentinel of the same kind")
	}
	if errors.Is(err, ErrMissingNode) {
		t.Error("errors.Is matched a different kind")
	}
	if got := err.Error(); got != `list.capture [template-capture] name="list"` {
		t.Errorf("Error() = %s", got)
	}
	wrapped := &Error{Op: "container.mount", Kind: KindMarkup, Err: errors.New("boom")}
	if errors.Unwrap(wrapped).Error() != "boom" {
		t.Error("Unwrap lost the cause")
	}
}

func TestTags(t *testing.T) {
	seq := SequentialTags("x")
	if a, b := seq.Allocate(), seq.Allocate(); a != "css-x1" || b != "css-x2" {
		t.Errorf("sequential tags = %s, %s", a, b)
	}
	random := NewTagAllocator()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tag := random.Allocate()
		if seen[tag] || !strings.HasPrefix(tag, TagPrefix) || len(tag) != len(TagPrefix)+7 {
			t.Fatalf("bad or duplicate tag %q", tag)
		}
		seen[tag] = true
	}
}
