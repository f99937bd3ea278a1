// Package navigator implements entering nested groups on a canvas: groups
// enclosing a target are dissolved one level at a time so their members can
// be edited directly, and are re-formed in their original nesting on the way
// back out.
package navigator

import (
	"errors"
	"fmt"

	"github.com/ddvk/groupnav/scene"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotAttached   = errors.New("group not placed on any canvas")
	ErrWrongCanvas   = errors.New("group not placed on the target canvas")
	ErrNotRootGroup  = errors.New("must be a root group")
	ErrHoleInvariant = errors.New("frame hole invariant violated")
)

const DefaultDisabledOpacity = 0.3

type Option func(*Navigator)

// WithDisabledOpacity sets the opacity of objects outside the entered group.
func WithDisabledOpacity(opacity float64) Option {
	return func(n *Navigator) {
		n.disabledOpacity = opacity
	}
}

// Navigator keeps the stack of entered groups of one canvas.
// Operations must not run concurrently with each other or with other
// mutations of the canvas.
type Navigator struct {
	canvas          *scene.Canvas
	stack           []*Frame
	disabledOpacity float64
}

func New(canvas *scene.Canvas, opts ...Option) *Navigator {
	n := &Navigator{
		canvas:          canvas,
		disabledOpacity: DefaultDisabledOpacity,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Attach subscribes the navigator to double clicks on its canvas.
func (n *Navigator) Attach() {
	n.canvas.On(scene.EventDoubleClick, n.HandleDoubleClick)
}

// HandleDoubleClick enters the struck group, or goes back one level when the
// click missed a group.
func (n *Navigator) HandleDoubleClick(ev *scene.Event) error {
	if g, ok := ev.Target.(*scene.Group); ok {
		return n.EnterGroup(g)
	}
	return n.Back()
}

func (n *Navigator) IsAtRoot() bool {
	return len(n.stack) == 0
}

func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Frames returns the entered levels, outermost first.
func (n *Navigator) Frames() []*Frame {
	return append([]*Frame(nil), n.stack...)
}

// EnterGroup dissolves group and every group enclosing it, outermost first.
// If the outermost ancestor is not one of the objects of the current level,
// levels are left until it is.
func (n *Navigator) EnterGroup(group *scene.Group) error {
	if err := n.checkGroupCanvas(group); err != nil {
		return err
	}
	chain := append(scene.Ancestors(group), group)
	for !n.IsAtRoot() && !n.current().Contains(chain[0]) {
		if err := n.Back(); err != nil {
			return err
		}
		chain = append(scene.Ancestors(group), group)
	}
	for _, g := range chain {
		if err := n.enterRootGroup(g); err != nil {
			return err
		}
	}
	n.canvas.RequestRenderAll()
	return nil
}

// EnterObjectGroup goes back to the root and then enters the group owning
// obj, if any.
// TODO: leave only up to the common ancestor of the current level and obj.
func (n *Navigator) EnterObjectGroup(obj scene.Object) error {
	if err := n.GoToRoot(); err != nil {
		return err
	}
	if g := obj.Item().Group(); g != nil {
		return n.EnterGroup(g)
	}
	return nil
}

// Back re-forms the most recently entered group. It is a no-op at the root.
// On error the stack is left unchanged.
func (n *Navigator) Back() error {
	frame := n.current()
	if frame == nil {
		return nil
	}
	var parent *Frame
	if len(n.stack) > 1 {
		parent = n.stack[len(n.stack)-2]
		if h := parent.Holes(); h != 1 {
			return fmt.Errorf("%w: frame %q has %d holes", ErrHoleInvariant, parent.Name, h)
		}
	}

	canvas := n.canvas
	members := frame.Objects()
	selection := canvas.NewActiveSelection(members...)
	if err := canvas.SetActiveObject(selection); err != nil {
		return err
	}
	active, ok := canvas.ActiveObject().(*scene.ActiveSelection)
	if !ok {
		return fmt.Errorf("unexpected active object %v", canvas.ActiveObject())
	}
	var group *scene.Group
	var err error
	if len(members) == 0 {
		group, err = active.ToGroupAt(frame.Index)
	} else {
		group, err = active.ToGroup()
	}
	if err != nil {
		canvas.DiscardActiveObject()
		return err
	}
	group.Name = frame.Name
	if len(members) == 0 {
		group.Left = frame.Left
		group.Top = frame.Top
	}
	n.pop()

	level := canvas.Objects()
	if parent != nil {
		if err = parent.fill(group); err != nil {
			return err
		}
		level = parent.Objects()
	}
	n.restoreObjects(level)
	canvas.DiscardActiveObject()
	canvas.RequestRenderAll()

	log.WithFields(log.Fields{
		"group": group.Name,
		"id":    group.Id,
		"depth": n.Depth(),
	}).Debug("left group")
	return nil
}

// GoToRoot leaves every entered group.
func (n *Navigator) GoToRoot() error {
	for !n.IsAtRoot() {
		if err := n.Back(); err != nil {
			return err
		}
	}
	return nil
}

// enterRootGroup dissolves one top level group. Everything that can fail is
// checked before the stack or the canvas change.
func (n *Navigator) enterRootGroup(group *scene.Group) error {
	if parent := group.Group(); parent != nil {
		return fmt.Errorf("%w: %v is in %v", ErrNotRootGroup, group, parent)
	}
	index := n.canvas.IndexOf(group)
	if index < 0 {
		return fmt.Errorf("%w: %v", ErrNotAttached, group)
	}
	current := n.current()
	var siblings []scene.Object
	if current != nil {
		if current.Holes() > 0 || !current.Contains(group) {
			return fmt.Errorf("%w: %v is not an object of frame %q", ErrHoleInvariant, group, current.Name)
		}
		siblings = current.Objects()
	} else {
		siblings = n.canvas.Objects()
	}

	frame := newFrame(group, index)
	if err := n.ungroup(group, index); err != nil {
		return err
	}
	if current != nil {
		if err := current.punch(group); err != nil {
			return err
		}
	}
	n.stack = append(n.stack, frame)
	for _, o := range siblings {
		if o != group {
			n.disableObject(o)
		}
	}

	log.WithFields(log.Fields{
		"group": group.Name,
		"id":    group.Id,
		"depth": n.Depth(),
	}).Debug("entered group")
	return nil
}

// ungroup replaces group on the canvas with its children. The group is
// removed before its children are released so the whole subtree is detached.
func (n *Navigator) ungroup(group *scene.Group, index int) error {
	canvas := n.canvas
	items := group.Objects()
	if err := canvas.Remove(group); err != nil {
		return err
	}
	group.RestoreObjectsState()
	if err := canvas.Insert(index, items...); err != nil {
		return err
	}
	canvas.DiscardActiveObject()
	return nil
}

func (n *Navigator) disableObject(obj scene.Object) {
	b := obj.Item()
	b.Opacity = n.disabledOpacity
	b.Selectable = false
	b.HasControls = false
}

func (n *Navigator) restoreObjects(objs []scene.Object) {
	for _, o := range objs {
		b := o.Item()
		b.Opacity = 1
		b.Selectable = true
		b.HasControls = true
	}
}

func (n *Navigator) checkGroupCanvas(group *scene.Group) error {
	c := group.Canvas()
	if c == nil {
		return fmt.Errorf("%w: %v", ErrNotAttached, group)
	}
	if c != n.canvas {
		return fmt.Errorf("%w: %v", ErrWrongCanvas, group)
	}
	return nil
}

func (n *Navigator) current() *Frame {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) pop() *Frame {
	f := n.current()
	if f != nil {
		n.stack = n.stack[:len(n.stack)-1]
	}
	return f
}
