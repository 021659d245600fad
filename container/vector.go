package container

import (
	"iter"
	"slices"
)

// Vector is a growable slice.
type Vector[E any] struct {
	s []E
}

// NewVector returns an empty Vector.
func NewVector[E any]() *Vector[E] {
	return &Vector[E]{}
}

// NewVectorOf returns a Vector holding n copies of v.
func NewVectorOf[E any](n int, v E) *Vector[E] {
	s := make([]E, n)
	for i := range s {
		s[i] = v
	}

	return &Vector[E]{s: s}
}

func (v *Vector[E]) Category() Category { return Contiguous }

func (v *Vector[E]) Len() int { return len(v.s) }

// Cap returns the current capacity.
func (v *Vector[E]) Cap() int { return cap(v.s) }

func (v *Vector[E]) PushBack(e E) {
	v.s = append(v.s, e)
}

// PushFront shifts every value one slot to the right.
func (v *Vector[E]) PushFront(e E) {
	v.s = slices.Insert(v.s, 0, e)
}

func (v *Vector[E]) Reserve(n int) {
	if n > len(v.s) {
		v.s = slices.Grow(v.s, n-len(v.s))
	}
}

func (v *Vector[E]) At(i int) E { return v.s[i] }

func (v *Vector[E]) Set(i int, e E) { v.s[i] = e }

func (v *Vector[E]) Swap(i, j int) { v.s[i], v.s[j] = v.s[j], v.s[i] }

// Slice exposes the backing slice. It is invalidated by the next growth.
func (v *Vector[E]) Slice() []E { return v.s }

func (v *Vector[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range v.s {
			if !yield(e) {
				return
			}
		}
	}
}

func (v *Vector[E]) Each(fn func(e *E)) {
	for i := range v.s {
		fn(&v.s[i])
	}
}

func (v *Vector[E]) Find(pred func(E) bool) bool {
	return slices.IndexFunc(v.s, pred) >= 0
}

func (v *Vector[E]) InsertBefore(pred func(E) bool, e E) {
	i := slices.IndexFunc(v.s, pred)
	if i < 0 {
		i = len(v.s)
	}

	v.s = slices.Insert(v.s, i, e)
}

func (v *Vector[E]) EraseFirst(pred func(E) bool) bool {
	i := slices.IndexFunc(v.s, pred)
	if i < 0 {
		return false
	}

	v.s = slices.Delete(v.s, i, i+1)

	return true
}

func (v *Vector[E]) RemoveIf(pred func(E) bool) int {
	n := len(v.s)
	v.s = slices.DeleteFunc(v.s, pred)

	return n - len(v.s)
}

func (v *Vector[E]) Clear() {
	clear(v.s)
	v.s = nil
}
