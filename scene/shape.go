package scene

import "fmt"

// Shape is a leaf object.
type Shape struct {
	Base
	Width  float64
	Height float64
}

func NewShape(typ ObjectType, name string, left, top, width, height float64) *Shape {
	s := &Shape{
		Base:   newBase(typ, name),
		Width:  width,
		Height: height,
	}
	s.Left = left
	s.Top = top
	return s
}

func NewRect(name string, left, top, width, height float64) *Shape {
	return NewShape(RectType, name, left, top, width, height)
}

func NewEllipse(name string, left, top, width, height float64) *Shape {
	return NewShape(EllipseType, name, left, top, width, height)
}

func (s *Shape) Bounds() Rect {
	return Rect{
		Min: Point{s.Left, s.Top},
		Max: Point{s.Left + s.Width, s.Top + s.Height},
	}
}

func (s Shape) String() string {
	return fmt.Sprintf("%v %q %v", s.typ, s.Name, s.Bounds())
}
