package scene

import "fmt"

type EventType int

const (
	EventDoubleClick EventType = iota
)

func (t EventType) String() string {
	switch t {
	case EventDoubleClick:
		return "mouse:dblclick"
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event carries the object struck by the pointer, nil on empty canvas.
type Event struct {
	Type   EventType
	Target Object
}

type Listener func(ev *Event) error

// Listeners registers closures per event type.
type Listeners map[EventType][]Listener

func (ls *Listeners) Add(typ EventType, fun Listener) {
	if *ls == nil {
		*ls = make(Listeners)
	}
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call runs the listeners for ev in registration order and stops at the
// first error.
func (ls Listeners) Call(ev *Event) error {
	for _, fun := range ls[ev.Type] {
		if err := fun(ev); err != nil {
			return err
		}
	}
	return nil
}

func (c *Canvas) On(typ EventType, fun Listener) {
	c.listeners.Add(typ, fun)
}

// DoubleClick dispatches a double click on target to the listeners.
func (c *Canvas) DoubleClick(target Object) error {
	return c.listeners.Call(&Event{Type: EventDoubleClick, Target: target})
}
