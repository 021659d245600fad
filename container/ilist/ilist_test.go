package ilist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[E any](l *List[E]) []E {
	var out []E
	for it := range l.All() {
		out = append(out, it.Value)
	}

	return out
}

func items(a *Arena[int], vs ...int) []*Item[int] {
	out := make([]*Item[int], len(vs))
	for i, v := range vs {
		out[i] = a.New(v)
	}

	return out
}

func TestListLinking(t *testing.T) {
	for _, mode := range []Mode{Normal, Safe, AutoUnlink} {
		t.Run(mode.String(), func(t *testing.T) {
			a := NewArena[int](2)
			l := New[int](mode)
			require.True(t, l.Empty())
			require.Nil(t, l.Front())

			it := items(a, 1, 2, 3, 4)
			l.PushBack(it[1])
			l.PushFront(it[0])
			l.PushBack(it[3])
			l.InsertBefore(it[3], it[2])

			assert.Equal(t, []int{1, 2, 3, 4}, values(l))
			assert.Equal(t, 4, l.Len())
			assert.Equal(t, 1, l.Front().Value)
			assert.Equal(t, mode, l.Mode())

			l.Remove(it[1])
			assert.Equal(t, []int{1, 3, 4}, values(l))

			assert.Equal(t, it[2], l.Find(func(v int) bool { return v == 3 }))
			assert.Nil(t, l.Find(func(v int) bool { return v == 2 }))

			extra := a.New(5)
			l.InsertBefore(nil, extra)
			assert.Equal(t, []int{1, 3, 4, 5}, values(l))
		})
	}
}

func TestSafeModeClearsHooks(t *testing.T) {
	a := NewArena[int](0)
	l := New[int](Safe)
	it := items(a, 1, 2)

	l.PushBack(it[0])
	l.PushBack(it[1])
	require.True(t, it[0].Linked())

	assert.Panics(t, func() { l.PushBack(it[0]) }, "double link")

	l.Remove(it[0])
	assert.False(t, it[0].Linked())

	l.PushFront(it[0])
	assert.Equal(t, []int{1, 2}, values(l), "relinking after removal is allowed")

	l.Clear()
	assert.True(t, l.Empty())
	assert.False(t, it[0].Linked())
	assert.False(t, it[1].Linked())
}

func TestNormalModeKeepsStaleHooks(t *testing.T) {
	a := NewArena[int](0)
	l := New[int](Normal)
	it := items(a, 1, 2)

	l.PushBack(it[0])
	l.PushBack(it[1])
	l.Clear()

	assert.True(t, l.Empty())
	assert.True(t, it[0].Linked(), "normal clear does not touch items")
}

func TestAutoUnlink(t *testing.T) {
	a := NewArena[int](0)
	l := New[int](AutoUnlink)
	it := items(a, 1, 2, 3)

	for _, i := range it {
		l.PushBack(i)
	}

	it[1].Unlink()
	assert.Equal(t, []int{1, 3}, values(l))
	assert.False(t, it[1].Linked())

	assert.Panics(t, it[1].Unlink, "unlinked item has no owner")

	safe := New[int](Safe)
	other := a.New(9)
	safe.PushBack(other)
	assert.Panics(t, other.Unlink, "safe lists do not auto unlink")
}

func TestRemoveDuringIteration(t *testing.T) {
	a := NewArena[int](3)
	l := New[int](Safe)
	for _, it := range items(a, 1, 2, 3, 4, 5, 6) {
		l.PushBack(it)
	}

	for it := range l.All() {
		if it.Value%2 == 0 {
			l.Remove(it)
		}
	}

	assert.Equal(t, []int{1, 3, 5}, values(l))
}

func TestSortAndReverse(t *testing.T) {
	a := NewArena[int](0)
	l := New[int](Normal)
	for _, it := range items(a, 4, 1, 3, 1, 5, 9, 2, 6) {
		l.PushBack(it)
	}

	l.SortFunc(func(x, y int) int { return x - y })
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5, 6, 9}, values(l))

	l.Reverse()
	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, values(l))

	l.PushBack(a.New(0))
	assert.Equal(t, 0, values(l)[8])
}

func TestArena(t *testing.T) {
	a := NewArena[int](4)

	first := a.New(1)
	for i := range 10 {
		a.New(i)
	}

	assert.Equal(t, 11, a.Len())
	assert.Equal(t, 1, first.Value, "items do not move when chunks are added")

	a.Reserve(100)
	n := len(a.chunks)
	for i := range 100 {
		a.New(i)
	}
	assert.Equal(t, n, len(a.chunks), "reserved items need no new chunk")

	a.Reset()
	assert.Zero(t, a.Len())
	assert.Empty(t, a.chunks)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "safe", Safe.String())
	assert.Equal(t, "auto_unlink", AutoUnlink.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
