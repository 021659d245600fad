// Package container provides the container families compared by the
// benchmarks and the capability interfaces the operation policies are
// written against. A policy that needs a capability a container lacks
// does not compile for that container.
package container

import "iter"

// Category tags the storage family of a container. Operations that have
// several algorithms for the same logical step pick one by category.
type Category int

const (
	// Contiguous containers support indexed access in O(1).
	Contiguous Category = iota
	// Linked containers are node based and sort or reverse by relinking.
	Linked
	// SlotMap containers are unordered blocks of reusable slots.
	SlotMap
)

func (c Category) String() string {
	switch c {
	case Contiguous:
		return "contiguous"
	case Linked:
		return "linked"
	case SlotMap:
		return "slotmap"
	default:
		return "unknown"
	}
}

// Sequence is implemented by every container in this module.
type Sequence interface {
	Category() Category
	Len() int
}

// Backer appends at the back.
type Backer[E any] interface {
	PushBack(v E)
}

// Fronter prepends at the front.
type Fronter[E any] interface {
	PushFront(v E)
}

// Inserter adds a value at an unspecified position.
type Inserter[E any] interface {
	Add(v E)
}

// Reserver preallocates room for n values.
type Reserver interface {
	Reserve(n int)
}

// Iterable yields every value in container order.
type Iterable[E any] interface {
	All() iter.Seq[E]
}

// Mutable calls fn with a pointer to every stored value.
type Mutable[E any] interface {
	Each(fn func(v *E))
}

// Finder answers linear searches.
type Finder[E any] interface {
	// Find reports whether any value matches pred.
	Find(pred func(E) bool) bool
}

// Eraser removes values found by linear search.
type Eraser[E any] interface {
	// EraseFirst removes the first value matching pred.
	EraseFirst(pred func(E) bool) bool
	// RemoveIf removes every value matching pred and returns the count.
	RemoveIf(pred func(E) bool) int
}

// Positioner inserts relative to a value found by linear search. Only
// ordered containers implement it.
type Positioner[E any] interface {
	// InsertBefore inserts v before the first value matching pred,
	// or at the end when none matches.
	InsertBefore(pred func(E) bool, v E)
}

// RandomAccess is implemented by contiguous containers.
type RandomAccess[E any] interface {
	Len() int
	At(i int) E
	Set(i int, v E)
	Swap(i, j int)
}

// SelfSorter is implemented by containers that reorder themselves without
// indexed access.
type SelfSorter[E any] interface {
	SortFunc(cmp func(a, b E) int)
	SortStableFunc(cmp func(a, b E) int)
	Reverse()
}

// Clearer drops every value and releases what it can.
type Clearer interface {
	Clear()
}
