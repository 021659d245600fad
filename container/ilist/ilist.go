// Package ilist implements an intrusive doubly linked list. The list never
// allocates: the links live inside the caller's Items, which are usually
// carved out of an Arena.
package ilist

import (
	"fmt"
	"iter"
)

// Mode selects how strictly the list tracks membership.
type Mode int

const (
	// Normal leaves stale links in removed items and clears in O(1).
	Normal Mode = iota
	// Safe resets the links of every removed item and rejects items that
	// are still linked.
	Safe
	// AutoUnlink is Safe and additionally lets an item remove itself.
	AutoUnlink
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Safe:
		return "safe"
	case AutoUnlink:
		return "auto_unlink"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Item is a value with its list hook.
type Item[E any] struct {
	next, prev *Item[E]
	owner      *List[E]
	Value      E
}

// Linked reports whether the item is in a list. In Normal mode a removed
// item still reports true.
func (it *Item[E]) Linked() bool {
	return it.next != nil
}

// Unlink removes the item from the list it is linked into. It only works
// for lists in AutoUnlink mode.
func (it *Item[E]) Unlink() {
	if it.owner == nil {
		panic("ilist: Unlink on an item without an auto-unlink owner")
	}

	it.owner.Remove(it)
}

// List is an intrusive list. Its length is not cached, so Len walks the
// items.
type List[E any] struct {
	root Item[E]
	mode Mode
}

// New returns an empty list using the given link mode.
func New[E any](mode Mode) *List[E] {
	l := &List[E]{mode: mode}
	l.root.next = &l.root
	l.root.prev = &l.root

	return l
}

// Mode returns the link mode.
func (l *List[E]) Mode() Mode { return l.mode }

// Empty reports whether the list has no items.
func (l *List[E]) Empty() bool { return l.root.next == &l.root }

// Len counts the linked items.
func (l *List[E]) Len() int {
	n := 0
	for it := l.root.next; it != &l.root; it = it.next {
		n++
	}

	return n
}

// Front returns the first item or nil.
func (l *List[E]) Front() *Item[E] {
	if l.Empty() {
		return nil
	}

	return l.root.next
}

func (l *List[E]) link(at, it *Item[E]) {
	if l.mode != Normal && it.next != nil {
		panic("ilist: item is already linked")
	}

	it.prev = at
	it.next = at.next
	at.next.prev = it
	at.next = it

	if l.mode == AutoUnlink {
		it.owner = l
	}
}

// PushBack links it at the back.
func (l *List[E]) PushBack(it *Item[E]) { l.link(l.root.prev, it) }

// PushFront links it at the front.
func (l *List[E]) PushFront(it *Item[E]) { l.link(&l.root, it) }

// InsertBefore links it before at. A nil at appends.
func (l *List[E]) InsertBefore(at, it *Item[E]) {
	if at == nil {
		at = &l.root
	}

	l.link(at.prev, it)
}

// Remove unlinks it.
func (l *List[E]) Remove(it *Item[E]) {
	it.prev.next = it.next
	it.next.prev = it.prev

	if l.mode != Normal {
		it.next = nil
		it.prev = nil
		it.owner = nil
	}
}

// All yields every linked item front to back. The current item may be
// removed during iteration.
func (l *List[E]) All() iter.Seq[*Item[E]] {
	return func(yield func(*Item[E]) bool) {
		for it := l.root.next; it != &l.root; {
			next := it.next
			if !yield(it) {
				return
			}
			it = next
		}
	}
}

// Find returns the first item whose value matches pred, or nil.
func (l *List[E]) Find(pred func(E) bool) *Item[E] {
	for it := l.root.next; it != &l.root; it = it.next {
		if pred(it.Value) {
			return it
		}
	}

	return nil
}

// Clear unlinks every item. In Normal mode this is O(1) and the items keep
// stale links.
func (l *List[E]) Clear() {
	if l.mode != Normal {
		for it := l.root.next; it != &l.root; {
			next := it.next
			it.next = nil
			it.prev = nil
			it.owner = nil
			it = next
		}
	}

	l.root.next = &l.root
	l.root.prev = &l.root
}

// SortFunc stably sorts the items by relinking them.
func (l *List[E]) SortFunc(cmp func(a, b E) int) {
	if l.root.next == l.root.prev {
		return
	}

	head := l.root.next
	l.root.prev.next = nil

	head = mergeSort(head, cmp)

	prev := &l.root
	for it := head; it != nil; it = it.next {
		it.prev = prev
		prev.next = it
		prev = it
	}

	prev.next = &l.root
	l.root.prev = prev
}

// Reverse swaps the links of every item.
func (l *List[E]) Reverse() {
	it := &l.root
	for {
		it.next, it.prev = it.prev, it.next
		it = it.prev
		if it == &l.root {
			return
		}
	}
}

func mergeSort[E any](head *Item[E], cmp func(a, b E) int) *Item[E] {
	for k := 1; ; k *= 2 {
		p := head
		head = nil

		var tail *Item[E]

		merges := 0

		for p != nil {
			merges++

			q := p
			psize := 0

			for psize < k && q != nil {
				psize++
				q = q.next
			}

			qsize := k

			for psize > 0 || (qsize > 0 && q != nil) {
				var e *Item[E]

				switch {
				case psize == 0:
					e, q = q, q.next
					qsize--
				case qsize == 0 || q == nil:
					e, p = p, p.next
					psize--
				case cmp(p.Value, q.Value) <= 0:
					e, p = p, p.next
					psize--
				default:
					e, q = q, q.next
					qsize--
				}

				if tail == nil {
					head = e
				} else {
					tail.next = e
				}

				tail = e
			}

			p = q
		}

		tail.next = nil

		if merges <= 1 {
			return head
		}
	}
}
