package policy

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/weiihann/contbench/container"
	"github.com/weiihann/contbench/element"
	"github.com/weiihann/contbench/harness"
)

// Sort orders the container by key. Contiguous containers go through the
// generic comparison sort; linked and slot map containers sort themselves.
func Sort[C container.Sequence, E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, _ int) { sortByCategory[E](c, false) })
}

// StableSort is Sort with a stable algorithm.
func StableSort[C container.Sequence, E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, _ int) { sortByCategory[E](c, true) })
}

// Reverse reverses the container order.
func Reverse[C container.Sequence, E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, _ int) { reverseByCategory[E](c) })
}

func sortByCategory[E element.Element[E]](c container.Sequence, stable bool) {
	switch c.Category() {
	case container.Contiguous:
		data := byKey[E]{as[container.RandomAccess[E]](c)}
		if stable {
			sort.Stable(data)
		} else {
			sort.Sort(data)
		}
	case container.Linked, container.SlotMap:
		s := as[container.SelfSorter[E]](c)
		if stable {
			s.SortStableFunc(element.Compare[E])
		} else {
			s.SortFunc(element.Compare[E])
		}
	default:
		panic(fmt.Sprintf("policy: cannot sort %s container %T", c.Category(), c))
	}
}

func reverseByCategory[E element.Element[E]](c container.Sequence) {
	switch c.Category() {
	case container.Contiguous:
		ra := as[container.RandomAccess[E]](c)
		for i, j := 0, ra.Len()-1; i < j; i, j = i+1, j-1 {
			ra.Swap(i, j)
		}
	case container.Linked, container.SlotMap:
		as[container.SelfSorter[E]](c).Reverse()
	default:
		panic(fmt.Sprintf("policy: cannot reverse %s container %T", c.Category(), c))
	}
}

// as asserts that a container tagged with a category provides the
// capability the category promises.
func as[T any](c container.Sequence) T {
	t, ok := c.(T)
	if !ok {
		panic(fmt.Sprintf("policy: %s container %T does not implement %v",
			c.Category(), c, reflect.TypeFor[T]()))
	}

	return t
}

type byKey[E element.Element[E]] struct {
	container.RandomAccess[E]
}

func (b byKey[E]) Less(i, j int) bool {
	return b.At(i).Key() < b.At(j).Key()
}
