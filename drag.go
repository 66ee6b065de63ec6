package flexy

import (
	"github.com/flexydesign/flexy/dom"
)

type DragDirection string

const (
	DragVertical   DragDirection = "vertical"
	DragHorizontal DragDirection = "horizontal"
	DragBoth       DragDirection = "both"
)

// DraggableScroll lets the user scroll el by dragging it with the mouse. The
// scroll position is kept in the scrollTop and scrollLeft properties.
// The returned function removes every listener, including the document
// listeners of a drag in progress.
func DraggableScroll(el *dom.Element, direction DragDirection) (release func()) {
	if el == nil {
		return func() {}
	}
	if direction == "" {
		direction = DragBoth
	}
	doc := el.OwnerDocument()

	var subs, drag subscriptions
	var startTop, startLeft, startX, startY float64

	var move, up *dom.EventHandler
	move = dom.NewEventHandler(func(evt dom.Event) {
		me, ok := evt.(*dom.MouseEvent)
		if !ok {
			return
		}
		dx := me.ClientX - startX
		dy := me.ClientY - startY
		if direction != DragHorizontal {
			el.SetProperty("scrollTop", startTop-dy)
		}
		if direction != DragVertical {
			el.SetProperty("scrollLeft", startLeft-dx)
		}
	})
	up = dom.NewEventHandler(func(dom.Event) {
		el.Style().Set("cursor", "grab")
		drag.release()
	})

	subs.listen(el, "mousedown", func(evt dom.Event) {
		evt.PreventDefault()
		evt.StopImmediatePropagation()
		me, ok := evt.(*dom.MouseEvent)
		if !ok {
			return
		}
		startTop = el.PropertyFloat("scrollTop")
		startLeft = el.PropertyFloat("scrollLeft")
		startX, startY = me.ClientX, me.ClientY

		el.Style().Set("cursor", "grabbing")
		el.Style().Set("user-select", "none")
		drag.add(doc, "mousemove", move)
		drag.add(doc, "mouseup", up)
	})

	return func() {
		drag.release()
		subs.release()
	}
}
