package navigator

import (
	"fmt"

	"github.com/ddvk/groupnav/scene"
)

// Slot is one former child of a dissolved group: either a live object or a
// hole standing for a child group that is itself dissolved one level deeper.
type Slot struct {
	obj  scene.Object
	hole bool
}

func Occupied(obj scene.Object) Slot {
	return Slot{obj: obj}
}

func Hole() Slot {
	return Slot{hole: true}
}

func (s Slot) IsHole() bool {
	return s.hole
}

// Object returns the slot's object, nil for holes.
func (s Slot) Object() scene.Object {
	return s.obj
}

func (s Slot) String() string {
	if s.hole {
		return "<hole>"
	}
	return fmt.Sprint(s.obj)
}

// Frame records the children of one dissolved group, in order, along with
// the group's stacking index and origin, which an empty group needs to be
// re-formed in place.
type Frame struct {
	Name  string
	Index int
	Left  float64
	Top   float64
	Slots []Slot
}

func newFrame(g *scene.Group, index int) *Frame {
	objs := g.Objects()
	f := &Frame{
		Name:  g.Name,
		Index: index,
		Left:  g.Left,
		Top:   g.Top,
		Slots: make([]Slot, 0, len(objs)),
	}
	for _, o := range objs {
		f.Slots = append(f.Slots, Occupied(o))
	}
	return f
}

// Objects returns the live objects of the frame, skipping holes.
func (f *Frame) Objects() []scene.Object {
	objs := make([]scene.Object, 0, len(f.Slots))
	for _, s := range f.Slots {
		if s.hole || s.obj == nil {
			continue
		}
		objs = append(objs, s.obj)
	}
	return objs
}

func (f *Frame) Holes() int {
	n := 0
	for _, s := range f.Slots {
		if s.hole {
			n++
		}
	}
	return n
}

func (f *Frame) Contains(obj scene.Object) bool {
	return f.indexOf(obj) >= 0
}

func (f *Frame) indexOf(obj scene.Object) int {
	for i, s := range f.Slots {
		if !s.hole && s.obj == obj {
			return i
		}
	}
	return -1
}

// punch replaces obj with the frame's single hole.
func (f *Frame) punch(obj scene.Object) error {
	if f.Holes() > 0 {
		return fmt.Errorf("%w: frame %q already has a hole", ErrHoleInvariant, f.Name)
	}
	i := f.indexOf(obj)
	if i < 0 {
		return fmt.Errorf("%w: %v not in frame %q", ErrHoleInvariant, obj, f.Name)
	}
	f.Slots[i] = Hole()
	return nil
}

// fill puts obj into the frame's hole.
func (f *Frame) fill(obj scene.Object) error {
	if n := f.Holes(); n != 1 {
		return fmt.Errorf("%w: frame %q has %d holes", ErrHoleInvariant, f.Name, n)
	}
	for i, s := range f.Slots {
		if s.hole {
			f.Slots[i] = Occupied(obj)
		}
	}
	return nil
}
