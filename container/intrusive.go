package container

import (
	"iter"

	"github.com/weiihann/contbench/container/ilist"
)

// IntrusiveList links values stored in its own arena through an intrusive
// list, so pushing never allocates a separate node. Erased values stay in
// the arena until Clear.
type IntrusiveList[E any] struct {
	arena *ilist.Arena[E]
	list  *ilist.List[E]
	n     int
}

// NewIntrusiveList returns an empty IntrusiveList using the given mode.
func NewIntrusiveList[E any](mode ilist.Mode) *IntrusiveList[E] {
	return &IntrusiveList[E]{
		arena: ilist.NewArena[E](0),
		list:  ilist.New[E](mode),
	}
}

// NewIntrusiveListOf returns an IntrusiveList holding n copies of v.
func NewIntrusiveListOf[E any](mode ilist.Mode, n int, v E) *IntrusiveList[E] {
	l := NewIntrusiveList[E](mode)
	l.Reserve(n)

	for range n {
		l.PushBack(v)
	}

	return l
}

func (l *IntrusiveList[E]) Category() Category { return Linked }

// Len is tracked by the wrapper; the underlying list walks to count.
func (l *IntrusiveList[E]) Len() int { return l.n }

// Mode returns the link mode of the underlying list.
func (l *IntrusiveList[E]) Mode() ilist.Mode { return l.list.Mode() }

func (l *IntrusiveList[E]) Reserve(n int) { l.arena.Reserve(n - l.n) }

func (l *IntrusiveList[E]) PushBack(v E) {
	l.list.PushBack(l.arena.New(v))
	l.n++
}

func (l *IntrusiveList[E]) PushFront(v E) {
	l.list.PushFront(l.arena.New(v))
	l.n++
}

func (l *IntrusiveList[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for it := range l.list.All() {
			if !yield(it.Value) {
				return
			}
		}
	}
}

func (l *IntrusiveList[E]) Each(fn func(v *E)) {
	for it := range l.list.All() {
		fn(&it.Value)
	}
}

func (l *IntrusiveList[E]) Find(pred func(E) bool) bool {
	return l.list.Find(pred) != nil
}

func (l *IntrusiveList[E]) InsertBefore(pred func(E) bool, v E) {
	l.list.InsertBefore(l.list.Find(pred), l.arena.New(v))
	l.n++
}

func (l *IntrusiveList[E]) EraseFirst(pred func(E) bool) bool {
	it := l.list.Find(pred)
	if it == nil {
		return false
	}

	l.list.Remove(it)
	l.n--

	return true
}

func (l *IntrusiveList[E]) RemoveIf(pred func(E) bool) int {
	removed := 0

	for it := range l.list.All() {
		if pred(it.Value) {
			l.list.Remove(it)
			removed++
		}
	}

	l.n -= removed

	return removed
}

func (l *IntrusiveList[E]) SortFunc(cmp func(a, b E) int) { l.list.SortFunc(cmp) }

func (l *IntrusiveList[E]) SortStableFunc(cmp func(a, b E) int) { l.list.SortFunc(cmp) }

func (l *IntrusiveList[E]) Reverse() { l.list.Reverse() }

func (l *IntrusiveList[E]) Clear() {
	l.list.Clear()
	l.arena.Reset()
	l.n = 0
}
