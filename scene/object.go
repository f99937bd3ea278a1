package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrDuplicateObject = errors.New("object listed more than once")

type ObjectType byte

const (
	RectType            ObjectType = 0x1
	EllipseType         ObjectType = 0x2
	PathType            ObjectType = 0x3
	GroupType           ObjectType = 0x4
	ActiveSelectionType ObjectType = 0x5
)

func (t ObjectType) String() string {
	switch t {
	case RectType:
		return "rect"
	case EllipseType:
		return "ellipse"
	case PathType:
		return "path"
	case GroupType:
		return "group"
	case ActiveSelectionType:
		return "activeSelection"
	}
	return fmt.Sprintf("unknown(%d)", byte(t))
}

// ParseObjectType maps a type name back to its tag.
func ParseObjectType(name string) (ObjectType, error) {
	for _, t := range []ObjectType{RectType, EllipseType, PathType, GroupType, ActiveSelectionType} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown object type %q", name)
}

// Object is anything that can be placed on a canvas.
type Object interface {
	Item() *Base
	Type() ObjectType
	Bounds() Rect
	String() string
}

// Base holds the state shared by every object. Left and Top are relative to
// the parent group's origin while the object belongs to a group, and canvas
// coordinates otherwise.
type Base struct {
	Id          uuid.UUID
	Name        string
	Left        float64
	Top         float64
	Opacity     float64
	Selectable  bool
	HasControls bool

	typ    ObjectType
	group  *Group
	canvas *Canvas
}

func newBase(typ ObjectType, name string) Base {
	id := uuid.New()
	if name == "" {
		name = id.String()[:8]
	}
	return Base{
		Id:          id,
		Name:        name,
		Opacity:     1,
		Selectable:  true,
		HasControls: true,
		typ:         typ,
	}
}

func (b *Base) Item() *Base {
	return b
}

func (b *Base) Type() ObjectType {
	return b.typ
}

func (b *Base) IsType(t ObjectType) bool {
	return b.typ == t
}

// Group returns the group that owns the object, nil for top level objects.
func (b *Base) Group() *Group {
	return b.group
}

// Canvas returns the canvas the object is attached to, if any.
func (b *Base) Canvas() *Canvas {
	return b.canvas
}

func (b *Base) Enabled() bool {
	return b.Opacity == 1 && b.Selectable && b.HasControls
}

func (b Base) String() string {
	return fmt.Sprintf("%v %q", b.typ, b.Name)
}

type Point struct {
	X float64
	Y float64
}

type Rect struct {
	Min Point
	Max Point
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Min: Point{r.Min.X + dx, r.Min.Y + dy},
		Max: Point{r.Max.X + dx, r.Max.Y + dy},
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)},
		Max: Point{max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Min.X, r.Min.Y, r.Width(), r.Height())
}

// unionBounds returns the bounding box of objs and false if objs is empty.
func unionBounds(objs []Object) (Rect, bool) {
	if len(objs) == 0 {
		return Rect{}, false
	}
	r := objs[0].Bounds()
	for _, o := range objs[1:] {
		r = r.Union(o.Bounds())
	}
	return r, true
}

func checkDistinct(objs []Object) error {
	seen := make(map[Object]bool, len(objs))
	for _, o := range objs {
		if seen[o] {
			return fmt.Errorf("%w: %v", ErrDuplicateObject, o)
		}
		seen[o] = true
	}
	return nil
}
