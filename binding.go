package flexy

import (
	"github.com/flexydesign/flexy/dom"
)

// BindingKind tells a property assignment from an event handler.
type BindingKind int

const (
	PropertyBinding BindingKind = iota
	HandlerBinding
)

// Binding is one assignment applied to a resolved node.
//
// Property bindings set Key to Value as an element property; the last writer
// wins. Handler bindings register Handler for Event.
type Binding struct {
	Kind BindingKind

	Key   string
	Value any

	Event   string
	Handler *dom.EventHandler
}

func Prop(key string, value any) Binding {
	return Binding{Kind: PropertyBinding, Key: key, Value: value}
}

// Text sets the text content of the node.
func Text(value string) Binding {
	return Prop("innerText", value)
}

// On wraps fn in a new handler. Keep the Binding around (or use OnHandler) to
// bind the same listener again.
func On(event string, fn func(dom.Event)) Binding {
	return OnHandler(event, dom.NewEventHandler(fn))
}

func OnHandler(event string, h *dom.EventHandler) Binding {
	return Binding{Kind: HandlerBinding, Event: event, Handler: h}
}

// binder applies bindings to one element and remembers the listeners it
// registered, so that applying a new set first removes the previous one.
type binder struct {
	el   *dom.Element
	subs subscriptions
}

func (b *binder) apply(el *dom.Element, bindings []Binding) {
	b.release()
	b.el = el
	if el == nil {
		return
	}
	for _, bd := range bindings {
		switch bd.Kind {
		case HandlerBinding:
			if bd.Handler == nil || bd.Event == "" {
				continue
			}
			b.subs.add(el, bd.Event, bd.Handler)
		case PropertyBinding:
			if bd.Key == "" {
				continue
			}
			el.SetProperty(bd.Key, bd.Value)
		}
	}
}

// release removes the listeners. Assigned properties stay.
func (b *binder) release() {
	b.subs.release()
	b.el = nil
}

// BindWithin resolves name inside scope, typically one list item, and applies
// the bindings to it. The returned function removes the listeners. It is a
// no-op when name does not resolve.
func BindWithin(scope *dom.Element, name string, bindings ...Binding) (release func()) {
	if scope == nil {
		return func() {}
	}
	el := scope.QueryName(name)
	if el == nil {
		return func() {}
	}
	b := &binder{}
	b.apply(el, bindings)
	return b.release
}
