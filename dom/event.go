// Package dom is a headless Document Object Model built on top of golang.org/x/net/html.
//
// It gives the flexy runtime the small set of browser facilities it needs to
// work on a foreign, generated markup tree: named-node lookup, inline styles,
// element properties, event listeners, a window with a resizable viewport and
// basic layout metrics.
package dom

// Event is the interface implemented by everything that can be dispatched to
// an EventTarget.
type Event interface {
	Type() string
	Target() EventTarget
	CurrentTarget() EventTarget

	PreventDefault()
	StopPropagation()          // remaining targets on the propagation path are skipped
	StopImmediatePropagation() // remaining handlers on the current target are skipped too

	Bubbles() bool
	DefaultPrevented() bool
	Stopped() bool

	base() *eventObject
}

type eventObject struct {
	typ           string
	target        EventTarget
	currentTarget EventTarget

	defaultPrevented bool
	bubbles          bool
	stopped          bool
	immediate        bool
}

func (e *eventObject) Type() string               { return e.typ }
func (e *eventObject) Target() EventTarget        { return e.target }
func (e *eventObject) CurrentTarget() EventTarget { return e.currentTarget }
func (e *eventObject) PreventDefault()            { e.defaultPrevented = true }
func (e *eventObject) StopPropagation()           { e.stopped = true }
func (e *eventObject) StopImmediatePropagation() {
	e.stopped = true
	e.immediate = true
}
func (e *eventObject) Bubbles() bool          { return e.bubbles }
func (e *eventObject) DefaultPrevented() bool { return e.defaultPrevented }
func (e *eventObject) Stopped() bool          { return e.stopped }
func (e *eventObject) base() *eventObject     { return e }

// NewEvent returns a plain event of the given type.
func NewEvent(typ string, bubbles bool) Event {
	return &eventObject{typ: typ, bubbles: bubbles}
}

// MouseEvent carries the pointer position in viewport coordinates.
type MouseEvent struct {
	*eventObject
	ClientX float64
	ClientY float64
}

// NewMouseEvent returns a bubbling mouse event.
func NewMouseEvent(typ string, x, y float64) *MouseEvent {
	return &MouseEvent{&eventObject{typ: typ, bubbles: true}, x, y}
}

// EventTarget is implemented by Element, Document and Window.
type EventTarget interface {
	AddEventListener(typ string, h *EventHandler)
	RemoveEventListener(typ string, h *EventHandler)
	// DispatchEvent returns false if a handler called PreventDefault.
	DispatchEvent(evt Event) bool
}

// EventHandler wraps a callback. The pointer is the identity of the listener:
// registering the same *EventHandler twice for one event type is a no-op, and
// removal requires the pointer that was added.
type EventHandler struct {
	Fn   func(Event)
	Once bool
}

func NewEventHandler(fn func(Event)) *EventHandler {
	return &EventHandler{Fn: fn}
}

func (h *EventHandler) TriggerOnce() *EventHandler {
	h.Once = true
	return h
}

func (h *EventHandler) Handle(evt Event) {
	if h.Fn != nil {
		h.Fn(evt)
	}
}

// EventListeners stores handlers per event type.
type EventListeners struct {
	list map[string]*eventHandlers
}

func NewEventListenerStore() EventListeners {
	return EventListeners{make(map[string]*eventHandlers)}
}

// AddEventHandler registers h for typ. It reports whether h was added, that is
// false when h was already registered.
func (e EventListeners) AddEventHandler(typ string, h *EventHandler) bool {
	if h == nil {
		return false
	}
	eh, ok := e.list[typ]
	if !ok {
		e.list[typ] = newEventHandlers().Add(h)
		return true
	}
	if eh.Contains(h) {
		return false
	}
	eh.Add(h)
	return true
}

// RemoveEventHandler reports whether h was registered for typ.
func (e EventListeners) RemoveEventHandler(typ string, h *EventHandler) bool {
	eh, ok := e.list[typ]
	if !ok {
		return false
	}
	removed := eh.Remove(h)
	if len(eh.List) == 0 {
		delete(e.list, typ)
	}
	return removed
}

// Count returns the number of handlers registered for typ.
func (e EventListeners) Count(typ string) int {
	eh, ok := e.list[typ]
	if !ok {
		return 0
	}
	return len(eh.List)
}

// Handle runs the handlers registered for the event type, in registration order.
// Handlers added or removed while handling do not affect the current run.
func (e EventListeners) Handle(evt Event) {
	evh, ok := e.list[evt.Type()]
	if !ok {
		return
	}
	snapshot := append([]*EventHandler(nil), evh.List...)
	for _, h := range snapshot {
		if h.Once {
			e.RemoveEventHandler(evt.Type(), h)
		}
		h.Handle(evt)
		if evt.base().immediate {
			return
		}
	}
}

type eventHandlers struct {
	List []*EventHandler
}

func newEventHandlers() *eventHandlers {
	return &eventHandlers{make([]*EventHandler, 0, 1)}
}

func (e *eventHandlers) Add(h *EventHandler) *eventHandlers {
	e.List = append(e.List, h)
	return e
}

func (e *eventHandlers) Contains(h *EventHandler) bool {
	for _, v := range e.List {
		if v == h {
			return true
		}
	}
	return false
}

func (e *eventHandlers) Remove(h *EventHandler) bool {
	for k, v := range e.List {
		if v != h {
			continue
		}
		e.List = append(e.List[:k], e.List[k+1:]...)
		return true
	}
	return false
}
