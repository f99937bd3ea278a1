package scene

import (
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

var ErrNotOnCanvas = errors.New("object not placed on this canvas")
var ErrIndexOutOfRange = errors.New("insert index out of range")

// Canvas owns the top level objects, the active selection and render
// scheduling. It is not safe for concurrent use.
type Canvas struct {
	objects   []Object
	active    Object
	dirty     bool
	listeners Listeners
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

// Objects returns a copy of the top level objects in stacking order.
func (c *Canvas) Objects() []Object {
	return append([]Object(nil), c.objects...)
}

// IndexOf returns the stacking index of a top level object or -1.
func (c *Canvas) IndexOf(obj Object) int {
	for i, o := range c.objects {
		if o == obj {
			return i
		}
	}
	return -1
}

func (c *Canvas) Add(objs ...Object) error {
	return c.Insert(len(c.objects), objs...)
}

// Insert places objs at index, keeping their order.
func (c *Canvas) Insert(index int, objs ...Object) error {
	if index < 0 || index > len(c.objects) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(c.objects))
	}
	if err := checkDistinct(objs); err != nil {
		return err
	}
	for _, o := range objs {
		b := o.Item()
		if b.group != nil {
			return fmt.Errorf("%w: %v in %v", ErrAlreadyInGroup, o, b.group)
		}
		if b.canvas != nil {
			return fmt.Errorf("%w: %v", ErrAlreadyOnCanvas, o)
		}
	}
	tail := append([]Object(nil), c.objects[index:]...)
	c.objects = append(append(c.objects[:index], objs...), tail...)
	for _, o := range objs {
		c.attach(o)
	}
	return nil
}

// Remove detaches top level objects from the canvas. Unknown objects are an
// error and leave the canvas untouched.
func (c *Canvas) Remove(objs ...Object) error {
	if err := checkDistinct(objs); err != nil {
		return err
	}
	for _, o := range objs {
		if c.IndexOf(o) < 0 {
			return fmt.Errorf("%w: %v", ErrNotOnCanvas, o)
		}
	}
	for _, o := range objs {
		i := c.IndexOf(o)
		c.objects = append(c.objects[:i], c.objects[i+1:]...)
		c.detach(o)
		if c.isActive(o) {
			c.active = nil
		}
	}
	return nil
}

func (c *Canvas) attach(obj Object) {
	Walk([]Object{obj}, func(o Object, _ int) bool {
		o.Item().canvas = c
		return true
	})
}

func (c *Canvas) detach(obj Object) {
	Walk([]Object{obj}, func(o Object, _ int) bool {
		o.Item().canvas = nil
		return true
	})
}

func (c *Canvas) isActive(obj Object) bool {
	if c.active == obj {
		return true
	}
	if s, ok := c.active.(*ActiveSelection); ok {
		for _, o := range s.objects {
			if o == obj {
				return true
			}
		}
	}
	return false
}

// SetActiveObject makes obj the active object. A selection is accepted when
// all its members are top level objects of this canvas.
func (c *Canvas) SetActiveObject(obj Object) error {
	if s, ok := obj.(*ActiveSelection); ok {
		if s.canvas != c {
			return fmt.Errorf("%w: %v", ErrNotOnCanvas, s)
		}
		for _, o := range s.objects {
			if c.IndexOf(o) < 0 {
				return fmt.Errorf("%w: %v", ErrNotOnCanvas, o)
			}
		}
	} else if c.IndexOf(obj) < 0 {
		return fmt.Errorf("%w: %v", ErrNotOnCanvas, obj)
	}
	c.active = obj
	return nil
}

func (c *Canvas) ActiveObject() Object {
	return c.active
}

func (c *Canvas) DiscardActiveObject() {
	c.active = nil
}

// RequestRenderAll marks the canvas dirty. Requests coalesce until Render.
func (c *Canvas) RequestRenderAll() {
	c.dirty = true
}

func (c *Canvas) RenderPending() bool {
	return c.dirty
}

// Render writes the object tree to w if a render was requested.
func (c *Canvas) Render(w io.Writer) error {
	if !c.dirty {
		return nil
	}
	c.dirty = false
	n := 0
	var sb strings.Builder
	Walk(c.objects, func(o Object, depth int) bool {
		b := o.Item()
		flags := ""
		if !b.Enabled() {
			flags = fmt.Sprintf(" [opacity %g]", b.Opacity)
		}
		if c.isActive(o) {
			flags += " *"
		}
		fmt.Fprintf(&sb, "%s%v%s\n", strings.Repeat("  ", depth), o, flags)
		n++
		return true
	})
	_, err := io.WriteString(w, sb.String())
	log.Tracef("rendered %d objects", n)
	return err
}

// Find returns the first object named name, searching depth first.
func (c *Canvas) Find(name string) Object {
	return FindFirst(c.objects, func(o Object) bool {
		return o.Item().Name == name
	})
}
