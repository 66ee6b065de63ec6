package flexy

import (
	"github.com/flexydesign/flexy/dom"
)

type subscription struct {
	target  dom.EventTarget
	event   string
	handler *dom.EventHandler
}

// subscriptions records the listeners an owner registered so that teardown
// removes exactly what was added.
type subscriptions struct {
	list []subscription
}

// listen registers fn on target and records it.
func (s *subscriptions) listen(target dom.EventTarget, event string, fn func(dom.Event)) *dom.EventHandler {
	h := dom.NewEventHandler(fn)
	s.add(target, event, h)
	return h
}

// add registers h unless the same (target, event, handler) is already recorded.
func (s *subscriptions) add(target dom.EventTarget, event string, h *dom.EventHandler) {
	for _, sub := range s.list {
		if sub.target == target && sub.event == event && sub.handler == h {
			return
		}
	}
	target.AddEventListener(event, h)
	s.list = append(s.list, subscription{target, event, h})
}

// release unregisters everything, most recent first.
func (s *subscriptions) release() {
	for i := len(s.list) - 1; i >= 0; i-- {
		sub := s.list[i]
		sub.target.RemoveEventListener(sub.event, sub.handler)
	}
	s.list = nil
}
