package scene

import (
	"errors"
	"fmt"
)

var ErrAlreadyInGroup = errors.New("object already belongs to a group")
var ErrAlreadyOnCanvas = errors.New("object already placed on a canvas")

// Group is a composite object. Children are stored in group coordinates, the
// group origin is the top left corner of their bounding box at creation time.
type Group struct {
	Base
	objects []Object
}

// NewGroup groups objs given in the coordinates of their current container.
// The objects must be free standing: not part of a group and not on a canvas.
func NewGroup(name string, objs ...Object) (*Group, error) {
	g := &Group{Base: newBase(GroupType, name)}
	if err := checkDistinct(objs); err != nil {
		return nil, err
	}
	for _, o := range objs {
		b := o.Item()
		if b.group != nil {
			return nil, fmt.Errorf("%w: %v in %v", ErrAlreadyInGroup, o, b.group)
		}
		if b.canvas != nil {
			return nil, fmt.Errorf("%w: %v", ErrAlreadyOnCanvas, o)
		}
	}
	if r, ok := unionBounds(objs); ok {
		g.Left = r.Min.X
		g.Top = r.Min.Y
	}
	for _, o := range objs {
		b := o.Item()
		b.Left -= g.Left
		b.Top -= g.Top
		b.group = g
	}
	g.objects = append([]Object(nil), objs...)
	return g, nil
}

// Objects returns a copy of the children in stacking order.
func (g *Group) Objects() []Object {
	return append([]Object(nil), g.objects...)
}

func (g *Group) Len() int {
	return len(g.objects)
}

// RestoreObjectsState hands the children back as free standing objects:
// positions are converted to the group's parent coordinates and the parent
// link is cleared. The group is left empty.
func (g *Group) RestoreObjectsState() {
	for _, o := range g.objects {
		b := o.Item()
		b.Left += g.Left
		b.Top += g.Top
		b.group = nil
	}
	g.objects = nil
}

func (g *Group) Bounds() Rect {
	r, ok := unionBounds(g.objects)
	if !ok {
		return Rect{Min: Point{g.Left, g.Top}, Max: Point{g.Left, g.Top}}
	}
	return r.Translate(g.Left, g.Top)
}

func (g Group) String() string {
	return fmt.Sprintf("%v %q %v n:%d", g.typ, g.Name, g.Bounds(), len(g.objects))
}
