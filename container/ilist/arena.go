package ilist

// DefaultChunk is the number of items per arena chunk.
const DefaultChunk = 4096

// Arena hands out Items from fixed-capacity chunks. An item never moves
// once handed out, so the pointers stay valid until Reset.
type Arena[E any] struct {
	chunks [][]Item[E]
	chunk  int
	n      int
}

// NewArena returns an arena allocating chunk items at a time. A
// non-positive chunk selects DefaultChunk.
func NewArena[E any](chunk int) *Arena[E] {
	if chunk <= 0 {
		chunk = DefaultChunk
	}

	return &Arena[E]{chunk: chunk}
}

// Len returns the number of items handed out.
func (a *Arena[E]) Len() int { return a.n }

func (a *Arena[E]) free() int {
	if len(a.chunks) == 0 {
		return 0
	}

	last := a.chunks[len(a.chunks)-1]

	return cap(last) - len(last)
}

// Reserve makes sure the next n calls to New do not allocate.
func (a *Arena[E]) Reserve(n int) {
	if a.free() >= n {
		return
	}

	a.chunks = append(a.chunks, make([]Item[E], 0, max(n, a.chunk)))
}

// New returns a fresh unlinked item holding v.
func (a *Arena[E]) New(v E) *Item[E] {
	if a.free() == 0 {
		a.chunks = append(a.chunks, make([]Item[E], 0, a.chunk))
	}

	last := len(a.chunks) - 1
	a.chunks[last] = append(a.chunks[last], Item[E]{Value: v})
	a.n++

	return &a.chunks[last][len(a.chunks[last])-1]
}

// Reset drops every chunk. Items handed out earlier must no longer be
// linked into any list.
func (a *Arena[E]) Reset() {
	clear(a.chunks)
	a.chunks = nil
	a.n = 0
}
