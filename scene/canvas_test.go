package scene

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(objs []Object) []string {
	var res []string
	for _, o := range objs {
		res = append(res, o.Item().Name)
	}
	return res
}

func TestAddAttachesDescendants(t *testing.T) {
	s1 := NewRect("shape1", 0, 0, 1, 1)
	s2 := NewRect("shape2", 2, 2, 1, 1)
	g, err := NewGroup("g", s1, s2)
	require.NoError(t, err)

	c := NewCanvas()
	require.NoError(t, c.Add(g))

	assert.Same(t, c, g.Canvas())
	assert.Same(t, c, s2.Canvas())
	assert.Same(t, s2, c.Find("shape2"))
	assert.Nil(t, c.Find("missing"))
	assert.Equal(t, []string{"g"}, names(c.Objects()))
}

func TestRemoveDetaches(t *testing.T) {
	s1 := NewRect("shape1", 0, 0, 1, 1)
	g, err := NewGroup("g", s1)
	require.NoError(t, err)
	c := NewCanvas()
	require.NoError(t, c.Add(g))
	require.NoError(t, c.SetActiveObject(g))

	require.NoError(t, c.Remove(g))
	assert.Nil(t, g.Canvas())
	assert.Nil(t, s1.Canvas())
	assert.Nil(t, c.ActiveObject())

	assert.ErrorIs(t, c.Remove(g), ErrNotOnCanvas)
}

func TestInsertKeepsOrder(t *testing.T) {
	a := NewRect("a", 0, 0, 1, 1)
	b := NewRect("b", 0, 0, 1, 1)
	x := NewRect("x", 0, 0, 1, 1)
	y := NewRect("y", 0, 0, 1, 1)
	c := NewCanvas()
	require.NoError(t, c.Add(a, b))
	require.NoError(t, c.Insert(1, x, y))
	assert.Equal(t, []string{"a", "x", "y", "b"}, names(c.Objects()))
	assert.Equal(t, 3, c.IndexOf(b))

	assert.ErrorIs(t, c.Insert(9, NewRect("z", 0, 0, 1, 1)), ErrIndexOutOfRange)
	assert.ErrorIs(t, c.Add(a), ErrAlreadyOnCanvas)
}

func TestAddRejectsGroupMember(t *testing.T) {
	a := NewRect("a", 0, 0, 1, 1)
	_, err := NewGroup("g", a)
	require.NoError(t, err)
	assert.ErrorIs(t, NewCanvas().Add(a), ErrAlreadyInGroup)
}

func TestRenderCoalesces(t *testing.T) {
	c := NewCanvas()
	require.NoError(t, c.Add(NewRect("a", 0, 0, 10, 10)))

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Empty(t, buf.String())

	c.RequestRenderAll()
	c.RequestRenderAll()
	assert.True(t, c.RenderPending())
	require.NoError(t, c.Render(&buf))
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "rect \"a\" (0,0 10x10)\n", buf.String())
	assert.False(t, c.RenderPending())
}

func TestRenderTree(t *testing.T) {
	s1 := NewRect("s1", 0, 0, 10, 10)
	g, err := NewGroup("g", s1)
	require.NoError(t, err)
	c := NewCanvas()
	require.NoError(t, c.Add(g))
	g.Opacity = 0.5
	require.NoError(t, c.SetActiveObject(g))

	var buf bytes.Buffer
	c.RequestRenderAll()
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "group \"g\" (0,0 10x10) n:1 [opacity 0.5] *\n  rect \"s1\" (0,0 10x10)\n", buf.String())
}

func TestDoubleClickDispatch(t *testing.T) {
	c := NewCanvas()
	a := NewRect("a", 0, 0, 1, 1)
	require.NoError(t, c.Add(a))

	var targets []Object
	c.On(EventDoubleClick, func(ev *Event) error {
		assert.Equal(t, EventDoubleClick, ev.Type)
		targets = append(targets, ev.Target)
		return nil
	})
	require.NoError(t, c.DoubleClick(a))
	require.NoError(t, c.DoubleClick(nil))
	require.Len(t, targets, 2)
	assert.Same(t, a, targets[0])
	assert.Nil(t, targets[1])
}

func TestDoubleClickStopsAtError(t *testing.T) {
	c := NewCanvas()
	boom := errors.New("boom")
	called := false
	c.On(EventDoubleClick, func(*Event) error { return boom })
	c.On(EventDoubleClick, func(*Event) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, c.DoubleClick(nil), boom)
	assert.False(t, called)
	assert.NoError(t, c.Render(io.Discard))
}

func TestDuplicateObjectsRejected(t *testing.T) {
	a := NewRect("a", 0, 0, 1, 1)
	b := NewRect("b", 0, 0, 1, 1)
	c := NewCanvas()
	require.NoError(t, c.Add(a, b))

	assert.ErrorIs(t, c.Remove(a, a), ErrDuplicateObject)
	assert.Equal(t, []string{"a", "b"}, names(c.Objects()))
	assert.Same(t, c, a.Canvas())

	x := NewRect("x", 0, 0, 1, 1)
	assert.ErrorIs(t, c.Insert(0, x, x), ErrDuplicateObject)
	assert.Nil(t, x.Canvas())

	_, err := NewGroup("g", x, x)
	assert.ErrorIs(t, err, ErrDuplicateObject)
	assert.Nil(t, x.Group())
}

func TestFindStopsAtFirstMatch(t *testing.T) {
	inner := NewRect("dup", 0, 0, 1, 1)
	g, err := NewGroup("g", inner)
	require.NoError(t, err)
	outer := NewRect("dup", 5, 5, 1, 1)
	c := NewCanvas()
	require.NoError(t, c.Add(g, outer))

	assert.Same(t, inner, c.Find("dup"))

	visited := 0
	found := FindFirst(c.Objects(), func(o Object) bool {
		visited++
		return o == Object(g)
	})
	assert.Same(t, g, found)
	assert.Equal(t, 1, visited)
}
