// Package element defines the value types stored in the benchmarked
// containers. Every type carries a uint64 key that the operation policies
// search, compare and rewrite; the remaining bytes only change how
// expensive a value is to copy.
package element

import (
	"cmp"
	"reflect"
	"strings"
	"unsafe"
)

// Element is implemented by every value type under test.
type Element[E any] interface {
	Key() uint64
	WithKey(k uint64) E
}

// Trivial8 is a plain 8 byte value.
type Trivial8 struct {
	A uint64
}

func (t Trivial8) Key() uint64 { return t.A }

func (t Trivial8) WithKey(k uint64) Trivial8 { t.A = k; return t }

// Trivial32 is a plain 32 byte value.
type Trivial32 struct {
	A uint64
	_ [24]byte
}

func (t Trivial32) Key() uint64 { return t.A }

func (t Trivial32) WithKey(k uint64) Trivial32 { t.A = k; return t }

// Trivial128 is a plain 128 byte value.
type Trivial128 struct {
	A uint64
	_ [120]byte
}

func (t Trivial128) Key() uint64 { return t.A }

func (t Trivial128) WithKey(k uint64) Trivial128 { t.A = k; return t }

// Trivial1024 is a plain 1 KiB value.
type Trivial1024 struct {
	A uint64
	_ [1016]byte
}

func (t Trivial1024) Key() uint64 { return t.A }

func (t Trivial1024) WithKey(k uint64) Trivial1024 { t.A = k; return t }

// Trivial4096 is a plain 4 KiB value.
type Trivial4096 struct {
	A uint64
	_ [4088]byte
}

func (t Trivial4096) Key() uint64 { return t.A }

func (t Trivial4096) WithKey(k uint64) Trivial4096 { t.A = k; return t }

// payload is long enough that no runtime could keep it inline.
var payload = strings.Repeat(
	"some pretty long string to make sure it is not stored inline ", 2,
)

// String carries a heap string next to its key.
type String struct {
	A    uint64
	Data string
}

func (s String) Key() uint64 { return s.A }

func (s String) WithKey(k uint64) String {
	s.A = k
	if s.Data == "" {
		s.Data = payload
	}

	return s
}

// Blob owns a separately allocated 32 byte payload, so every fresh value
// costs one allocation.
type Blob struct {
	A    uint64
	Data *[32]byte
}

func (b Blob) Key() uint64 { return b.A }

func (b Blob) WithKey(k uint64) Blob {
	b.A = k
	if b.Data == nil {
		b.Data = new([32]byte)
	}

	return b
}

// New returns a value of type E holding key k.
func New[E Element[E]](k uint64) E {
	var zero E

	return zero.WithKey(k)
}

// Compare orders two values by key.
func Compare[E Element[E]](a, b E) int {
	return cmp.Compare(a.Key(), b.Key())
}

// Name returns the Go type name of E, used in graph titles.
func Name[E any]() string {
	return reflect.TypeFor[E]().Name()
}

// Size returns the in-memory size of one E.
func Size[E any]() uintptr {
	var zero E

	return unsafe.Sizeof(zero)
}

// IsSmall reports whether E is cheap enough for the quadratic benchmarks.
func IsSmall[E any]() bool {
	return Size[E]() <= 32
}
