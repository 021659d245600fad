// Package colony implements an unordered slot map. Values live in blocks
// that never move; erasing a value marks its slot and the next insert
// reuses it, so handles to other values stay valid across inserts and
// erases.
package colony

import (
	"iter"
	"slices"

	"github.com/weiihann/contbench/container"
)

const (
	minBlock = 8
	maxBlock = 8192
)

type slot[E any] struct {
	v      E
	erased bool
}

type block[E any] struct {
	slots []slot[E]
	live  int
}

// Handle identifies one slot. It stays valid until the value is erased.
type Handle struct {
	block int
	index int
}

// Colony is an unordered container with stable slots. The zero value is
// ready to use.
type Colony[E any] struct {
	blocks []*block[E]
	free   []Handle
	n      int
	next   int
}

// New returns an empty Colony.
func New[E any]() *Colony[E] {
	return &Colony[E]{}
}

func (c *Colony[E]) Category() container.Category { return container.SlotMap }

// Len returns the number of live values.
func (c *Colony[E]) Len() int { return c.n }

// Cap returns the number of slots, live or erased.
func (c *Colony[E]) Cap() int {
	total := 0
	for _, b := range c.blocks {
		total += cap(b.slots)
	}

	return total
}

func (c *Colony[E]) spare() int {
	spare := len(c.free)
	if len(c.blocks) > 0 {
		last := c.blocks[len(c.blocks)-1]
		spare += cap(last.slots) - len(last.slots)
	}

	return spare
}

func (c *Colony[E]) grow(size int) {
	c.blocks = append(c.blocks, &block[E]{slots: make([]slot[E], 0, size)})
}

// Reserve makes sure n more values fit without allocating a block.
func (c *Colony[E]) Reserve(n int) {
	if c.spare() >= n {
		return
	}

	// Inserts only append to the last block, so the new block must hold
	// everything the free list cannot.
	c.grow(n - len(c.free))
}

// Insert stores v, reusing the most recently erased slot if any.
func (c *Colony[E]) Insert(v E) Handle {
	c.n++

	if k := len(c.free); k > 0 {
		h := c.free[k-1]
		c.free = c.free[:k-1]

		b := c.blocks[h.block]
		b.slots[h.index] = slot[E]{v: v}
		b.live++

		return h
	}

	if len(c.blocks) == 0 || c.full() {
		if c.next == 0 {
			c.next = minBlock
		}

		c.grow(c.next)
		c.next = min(c.next*2, maxBlock)
	}

	bi := len(c.blocks) - 1
	b := c.blocks[bi]
	b.slots = append(b.slots, slot[E]{v: v})
	b.live++

	return Handle{block: bi, index: len(b.slots) - 1}
}

// Add is Insert without the handle.
func (c *Colony[E]) Add(v E) { c.Insert(v) }

func (c *Colony[E]) full() bool {
	last := c.blocks[len(c.blocks)-1]

	return len(last.slots) == cap(last.slots)
}

// Get returns a pointer to the value behind h.
func (c *Colony[E]) Get(h Handle) (*E, bool) {
	if h.block < 0 || h.block >= len(c.blocks) {
		return nil, false
	}

	b := c.blocks[h.block]
	if h.index < 0 || h.index >= len(b.slots) || b.slots[h.index].erased {
		return nil, false
	}

	return &b.slots[h.index].v, true
}

// Erase removes the value behind h. It reports false for a stale handle.
func (c *Colony[E]) Erase(h Handle) bool {
	if _, ok := c.Get(h); !ok {
		return false
	}

	b := c.blocks[h.block]
	b.slots[h.index] = slot[E]{erased: true}
	b.live--
	c.n--
	c.free = append(c.free, h)

	return true
}

// Handles yields the handle of every live value in iteration order.
func (c *Colony[E]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for bi, b := range c.blocks {
			if b.live == 0 {
				continue
			}

			for i := range b.slots {
				if b.slots[i].erased {
					continue
				}

				if !yield(Handle{block: bi, index: i}) {
					return
				}
			}
		}
	}
}

// All yields every live value in iteration order.
func (c *Colony[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for h := range c.Handles() {
			if !yield(c.blocks[h.block].slots[h.index].v) {
				return
			}
		}
	}
}

// Each calls fn with a pointer to every live value.
func (c *Colony[E]) Each(fn func(v *E)) {
	for h := range c.Handles() {
		fn(&c.blocks[h.block].slots[h.index].v)
	}
}

// Find reports whether any live value matches pred.
func (c *Colony[E]) Find(pred func(E) bool) bool {
	for v := range c.All() {
		if pred(v) {
			return true
		}
	}

	return false
}

// EraseFirst erases the first live value matching pred.
func (c *Colony[E]) EraseFirst(pred func(E) bool) bool {
	for h := range c.Handles() {
		if pred(c.blocks[h.block].slots[h.index].v) {
			return c.Erase(h)
		}
	}

	return false
}

// RemoveIf erases every live value matching pred.
func (c *Colony[E]) RemoveIf(pred func(E) bool) int {
	removed := 0

	for h := range c.Handles() {
		if pred(c.blocks[h.block].slots[h.index].v) {
			c.Erase(h)
			removed++
		}
	}

	return removed
}

func (c *Colony[E]) rewrite(values []E) {
	i := 0
	for h := range c.Handles() {
		c.blocks[h.block].slots[h.index].v = values[i]
		i++
	}
}

// SortFunc orders the values in iteration order. Slots keep their
// positions; values move between them.
func (c *Colony[E]) SortFunc(cmp func(a, b E) int) {
	values := slices.Collect(c.All())
	slices.SortFunc(values, cmp)
	c.rewrite(values)
}

// SortStableFunc is SortFunc with a stable merge based sort.
func (c *Colony[E]) SortStableFunc(cmp func(a, b E) int) {
	values := slices.Collect(c.All())
	slices.SortStableFunc(values, cmp)
	c.rewrite(values)
}

// Reverse reverses the iteration order of the values.
func (c *Colony[E]) Reverse() {
	values := slices.Collect(c.All())
	slices.Reverse(values)
	c.rewrite(values)
}

// Clear drops every block.
func (c *Colony[E]) Clear() {
	clear(c.blocks)
	c.blocks = nil
	c.free = nil
	c.n = 0
	c.next = 0
}
