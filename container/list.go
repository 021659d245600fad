package container

import "iter"

type node[E any] struct {
	next, prev *node[E]
	v          E
}

// List is a doubly linked list with one allocation per value. The zero
// value is not usable; construct with NewList.
type List[E any] struct {
	root node[E]
	n    int
}

// NewList returns an empty List.
func NewList[E any]() *List[E] {
	l := &List[E]{}
	l.root.next = &l.root
	l.root.prev = &l.root

	return l
}

// NewListOf returns a List holding n copies of v.
func NewListOf[E any](n int, v E) *List[E] {
	l := NewList[E]()
	for range n {
		l.PushBack(v)
	}

	return l
}

func (l *List[E]) Category() Category { return Linked }

func (l *List[E]) Len() int { return l.n }

func (l *List[E]) insertAfter(at *node[E], v E) {
	nd := &node[E]{v: v, prev: at, next: at.next}
	at.next.prev = nd
	at.next = nd
	l.n++
}

func (l *List[E]) remove(nd *node[E]) {
	nd.prev.next = nd.next
	nd.next.prev = nd.prev
	nd.next = nil
	nd.prev = nil
	l.n--
}

func (l *List[E]) PushBack(v E) { l.insertAfter(l.root.prev, v) }

func (l *List[E]) PushFront(v E) { l.insertAfter(&l.root, v) }

func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for nd := l.root.next; nd != &l.root; nd = nd.next {
			if !yield(nd.v) {
				return
			}
		}
	}
}

func (l *List[E]) Each(fn func(v *E)) {
	for nd := l.root.next; nd != &l.root; nd = nd.next {
		fn(&nd.v)
	}
}

func (l *List[E]) first(pred func(E) bool) *node[E] {
	for nd := l.root.next; nd != &l.root; nd = nd.next {
		if pred(nd.v) {
			return nd
		}
	}

	return nil
}

func (l *List[E]) Find(pred func(E) bool) bool {
	return l.first(pred) != nil
}

func (l *List[E]) InsertBefore(pred func(E) bool, v E) {
	at := l.first(pred)
	if at == nil {
		at = &l.root
	}

	l.insertAfter(at.prev, v)
}

func (l *List[E]) EraseFirst(pred func(E) bool) bool {
	nd := l.first(pred)
	if nd == nil {
		return false
	}

	l.remove(nd)

	return true
}

func (l *List[E]) RemoveIf(pred func(E) bool) int {
	removed := 0

	for nd := l.root.next; nd != &l.root; {
		next := nd.next
		if pred(nd.v) {
			l.remove(nd)
			removed++
		}
		nd = next
	}

	return removed
}

// SortFunc sorts the list by relinking nodes with a bottom-up merge sort.
// No value is copied.
func (l *List[E]) SortFunc(cmp func(a, b E) int) {
	if l.n < 2 {
		return
	}

	// Detach into a nil terminated chain.
	head := l.root.next
	l.root.prev.next = nil

	head = mergeSort(head, cmp)

	prev := &l.root
	for nd := head; nd != nil; nd = nd.next {
		nd.prev = prev
		prev.next = nd
		prev = nd
	}

	prev.next = &l.root
	l.root.prev = prev
}

// SortStableFunc is SortFunc; the merge sort is already stable.
func (l *List[E]) SortStableFunc(cmp func(a, b E) int) {
	l.SortFunc(cmp)
}

// Reverse swaps the links of every node.
func (l *List[E]) Reverse() {
	nd := &l.root
	for {
		nd.next, nd.prev = nd.prev, nd.next
		nd = nd.prev
		if nd == &l.root {
			return
		}
	}
}

// Clear unlinks every node.
func (l *List[E]) Clear() {
	for nd := l.root.next; nd != &l.root; {
		next := nd.next
		nd.next = nil
		nd.prev = nil
		nd = next
	}

	l.root.next = &l.root
	l.root.prev = &l.root
	l.n = 0
}

// mergeSort sorts a nil terminated chain linked through next only.
func mergeSort[E any](head *node[E], cmp func(a, b E) int) *node[E] {
	for k := 1; ; k *= 2 {
		p := head
		head = nil

		var tail *node[E]

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
				var e *node[E]

				switch {
				case psize == 0:
					e, q = q, q.next
					qsize--
				case qsize == 0 || q == nil:
					e, p = p, p.next
					psize--
				case cmp(p.v, q.v) <= 0:
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
