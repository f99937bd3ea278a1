package scene

import (
	"errors"
	"fmt"
)

var ErrUnboundSelection = errors.New("active selection not bound to a canvas")

// ActiveSelection is the canvas's transient multi-object selection. Members
// stay top level canvas objects until the selection is turned into a group.
type ActiveSelection struct {
	Base
	objects []Object
}

// NewActiveSelection selects objs on c. It does not make the selection active.
func (c *Canvas) NewActiveSelection(objs ...Object) *ActiveSelection {
	s := &ActiveSelection{
		Base:    newBase(ActiveSelectionType, "selection"),
		objects: append([]Object(nil), objs...),
	}
	s.canvas = c
	return s
}

func (s *ActiveSelection) Objects() []Object {
	return append([]Object(nil), s.objects...)
}

func (s *ActiveSelection) Bounds() Rect {
	r, _ := unionBounds(s.objects)
	return r
}

// ToGroup replaces the selected objects with a new group holding them in
// selection order. The group takes the stacking position of the lowest
// member, or the top of the stack for an empty selection, and becomes the
// active object.
func (s *ActiveSelection) ToGroup() (*Group, error) {
	if s.canvas == nil {
		return nil, ErrUnboundSelection
	}
	index := -1
	for _, o := range s.objects {
		if i := s.canvas.IndexOf(o); i >= 0 && (index < 0 || i < index) {
			index = i
		}
	}
	if index < 0 {
		index = len(s.canvas.objects)
	}
	return s.ToGroupAt(index)
}

// ToGroupAt is ToGroup with an explicit stacking index, counted after the
// members are removed and clamped to the canvas.
func (s *ActiveSelection) ToGroupAt(index int) (*Group, error) {
	c := s.canvas
	if c == nil {
		return nil, ErrUnboundSelection
	}
	if err := checkDistinct(s.objects); err != nil {
		return nil, err
	}
	for _, o := range s.objects {
		if c.IndexOf(o) < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNotOnCanvas, o)
		}
	}
	if err := c.Remove(s.objects...); err != nil {
		return nil, err
	}
	g, err := NewGroup("", s.objects...)
	if err != nil {
		return nil, err
	}
	index = max(0, min(index, len(c.objects)))
	if err = c.Insert(index, g); err != nil {
		return nil, err
	}
	s.objects = nil
	c.active = g
	return g, nil
}

func (s ActiveSelection) String() string {
	return fmt.Sprintf("%v n:%d", s.typ, len(s.objects))
}
