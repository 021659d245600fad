package workload

import "fmt"

// Backup caches the input vector of the last requested size. Repeated
// trials at one size reuse it; asking for another size rebuilds it.
//
// A Backup is owned by one create policy and is not safe for concurrent
// use.
type Backup[E any] struct {
	build    func(size int) []E
	values   []E
	size     int
	valid    bool
	rebuilds int
}

// NewBackup returns an empty Backup filled on demand by build.
func NewBackup[E any](build func(size int) []E) *Backup[E] {
	return &Backup[E]{build: build}
}

// Ensure makes the buffer hold exactly size values and reports whether it
// had to be rebuilt.
func (b *Backup[E]) Ensure(size int) bool {
	if b.valid && b.size == size {
		return false
	}

	clear(b.values)

	b.values = b.build(size)
	if len(b.values) != size {
		panic(fmt.Sprintf(
			"workload: build returned %d values for size %d",
			len(b.values), size,
		))
	}

	b.size = size
	b.valid = true
	b.rebuilds++

	return true
}

// Values returns the cached buffer. Callers must not modify it.
func (b *Backup[E]) Values() []E { return b.values }

// Size returns the size the buffer was built for and whether it is valid.
func (b *Backup[E]) Size() (int, bool) { return b.size, b.valid }

// Rebuilds counts how many times the buffer was (re)built.
func (b *Backup[E]) Rebuilds() int { return b.rebuilds }

// Invalidate drops the buffer and releases its memory.
func (b *Backup[E]) Invalidate() {
	clear(b.values)
	b.values = nil
	b.size = 0
	b.valid = false
}
