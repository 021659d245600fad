package container

import (
	"iter"

	"github.com/gammazero/deque"
)

// Deque is a ring buffer with O(1) pushes at both ends and indexed access.
type Deque[E any] struct {
	q deque.Deque[E]
}

// NewDeque returns an empty Deque.
func NewDeque[E any]() *Deque[E] {
	return &Deque[E]{}
}

// NewDequeOf returns a Deque holding n copies of v.
func NewDequeOf[E any](n int, v E) *Deque[E] {
	d := &Deque[E]{}
	d.q.Grow(n)

	for range n {
		d.q.PushBack(v)
	}

	return d
}

func (d *Deque[E]) Category() Category { return Contiguous }

func (d *Deque[E]) Len() int { return d.q.Len() }

func (d *Deque[E]) PushBack(v E) { d.q.PushBack(v) }

func (d *Deque[E]) PushFront(v E) { d.q.PushFront(v) }

func (d *Deque[E]) Reserve(n int) {
	if n > d.q.Len() {
		d.q.Grow(n - d.q.Len())
	}
}

func (d *Deque[E]) At(i int) E { return d.q.At(i) }

func (d *Deque[E]) Set(i int, v E) { d.q.Set(i, v) }

func (d *Deque[E]) Swap(i, j int) {
	a, b := d.q.At(i), d.q.At(j)
	d.q.Set(i, b)
	d.q.Set(j, a)
}

func (d *Deque[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := range d.q.Len() {
			if !yield(d.q.At(i)) {
				return
			}
		}
	}
}

// Each writes every value back after fn returns.
func (d *Deque[E]) Each(fn func(v *E)) {
	for i := range d.q.Len() {
		v := d.q.At(i)
		fn(&v)
		d.q.Set(i, v)
	}
}

func (d *Deque[E]) Find(pred func(E) bool) bool {
	return d.q.Index(pred) >= 0
}

func (d *Deque[E]) InsertBefore(pred func(E) bool, v E) {
	i := d.q.Index(pred)
	if i < 0 {
		d.q.PushBack(v)

		return
	}

	d.q.Insert(i, v)
}

func (d *Deque[E]) EraseFirst(pred func(E) bool) bool {
	i := d.q.Index(pred)
	if i < 0 {
		return false
	}

	d.q.Remove(i)

	return true
}

// RemoveIf compacts the kept values towards the front and trims the back.
func (d *Deque[E]) RemoveIf(pred func(E) bool) int {
	n := d.q.Len()
	w := 0

	for r := range n {
		v := d.q.At(r)
		if pred(v) {
			continue
		}

		if w != r {
			d.q.Set(w, v)
		}
		w++
	}

	for range n - w {
		d.q.PopBack()
	}

	return n - w
}

func (d *Deque[E]) Clear() { d.q.Clear() }
