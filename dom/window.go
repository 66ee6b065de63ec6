package dom

// Window holds the viewport facts the runtime reacts to.
type Window struct {
	width  float64
	height float64

	// Locale is the active runtime locale, as a BCP 47 tag.
	Locale string

	// MinimumFontSize is the smallest font size, in px, the host renders.
	// Text sized below it is rendered at that size by the host, which is what
	// text auto-sizing compensates for. 0.1 or less means no minimum.
	MinimumFontSize float64

	// ReducedMotion reports a user preference for reduced motion.
	ReducedMotion bool

	listeners EventListeners
}

func NewWindow(width, height float64) *Window {
	return &Window{
		width:           width,
		height:          height,
		Locale:          "en-US",
		MinimumFontSize: 0.1,
		listeners:       NewEventListenerStore(),
	}
}

func (w *Window) Width() float64  { return w.width }
func (w *Window) Height() float64 { return w.height }

// Resize changes the viewport dimensions and dispatches a "resize" event.
func (w *Window) Resize(width, height float64) {
	w.width = width
	w.height = height
	w.DispatchEvent(NewEvent("resize", false))
}

func (w *Window) AddEventListener(typ string, h *EventHandler) {
	w.listeners.AddEventHandler(typ, h)
}

func (w *Window) RemoveEventListener(typ string, h *EventHandler) {
	w.listeners.RemoveEventHandler(typ, h)
}

func (w *Window) DispatchEvent(evt Event) bool {
	b := evt.base()
	b.target = w
	b.currentTarget = w
	w.listeners.Handle(evt)
	return !evt.DefaultPrevented()
}

// ListenerCount returns the number of listeners registered for typ.
func (w *Window) ListenerCount(typ string) int {
	return w.listeners.Count(typ)
}
