package policy

import (
	"fmt"
	mrand "math/rand"

	"github.com/weiihann/contbench/container"
	"github.com/weiihann/contbench/element"
	"github.com/weiihann/contbench/harness"
	"github.com/weiihann/contbench/workload"
	xrand "golang.org/x/exp/rand"
)

// Passes is the number of searches made by Find-style operations that do
// not scale with the container size.
const Passes = 1000

// sink keeps the compiler from discarding searches whose results are
// otherwise unused.
var sink int

func op[C any](f func(c C, size int)) harness.Operation[C] {
	return harness.OperationFunc[C](f)
}

func keyIs[E element.Element[E]](k uint64) func(E) bool {
	return func(v E) bool { return v.Key() == k }
}

// NoOp does nothing. Paired with a create policy it times construction.
func NoOp[C any]() harness.Operation[C] {
	return op(func(C, int) {})
}

// ReserveSize preallocates room for size values.
func ReserveSize[C container.Reserver]() harness.Operation[C] {
	return op(func(c C, size int) { c.Reserve(size) })
}

// FillBack pushes size copies of one prebuilt value to the back.
func FillBack[C container.Backer[E], E element.Element[E]]() harness.Operation[C] {
	v := element.New[E](0)

	return op(func(c C, size int) {
		for range size {
			c.PushBack(v)
		}
	})
}

// EmplaceBack constructs size values in turn and pushes each to the back.
func EmplaceBack[C container.Backer[E], E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, size int) {
		for i := range size {
			c.PushBack(element.New[E](uint64(i)))
		}
	})
}

// FillBackBackup pushes the first size values of backup to the back. The
// backup must already hold at least size values, which is what
// EmptyPrepareBackup guarantees when both share the same Backup.
func FillBackBackup[C container.Backer[E], E element.Element[E]](
	backup *workload.Backup[E],
) harness.Operation[C] {
	if backup == nil {
		panic("policy: FillBackBackup needs a backup")
	}

	return op(func(c C, size int) {
		n, ok := backup.Size()
		if !ok || n < size {
			panic(fmt.Sprintf(
				"policy: FillBackBackup at size %d but backup holds %d values (valid=%v)",
				size, n, ok,
			))
		}

		for _, v := range backup.Values()[:size] {
			c.PushBack(v)
		}
	})
}

// FillFront pushes size copies of one prebuilt value to the front.
func FillFront[C container.Fronter[E], E element.Element[E]]() harness.Operation[C] {
	v := element.New[E](0)

	return op(func(c C, size int) {
		for range size {
			c.PushFront(v)
		}
	})
}

// EmplaceFront constructs size values in turn and pushes each to the front.
func EmplaceFront[C container.Fronter[E], E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, size int) {
		for i := range size {
			c.PushFront(element.New[E](uint64(i)))
		}
	})
}

// InsertSimple adds size copies of one prebuilt value to an unordered
// container.
func InsertSimple[C container.Inserter[E], E element.Element[E]]() harness.Operation[C] {
	v := element.New[E](0)

	return op(func(c C, size int) {
		for range size {
			c.Add(v)
		}
	})
}

// EmplaceInsertSimple constructs size values and adds each to an unordered
// container.
func EmplaceInsertSimple[C container.Inserter[E], E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, size int) {
		for i := range size {
			c.Add(element.New[E](uint64(i)))
		}
	})
}

// Find searches for every key below size.
func Find[C container.Finder[E], E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, size int) {
		found := 0
		for i := range size {
			if c.Find(keyIs[E](uint64(i))) {
				found++
			}
		}
		sink += found
	})
}

// Insert makes Passes searches for key i and inserts a new value before
// each hit.
func Insert[C container.Positioner[E], E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, size int) {
		for i := range Passes {
			c.InsertBefore(keyIs[E](uint64(i)), element.New[E](uint64(size+i)))
		}
	})
}

// Write bumps the key of every stored value in place.
func Write[C container.Mutable[E], E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, _ int) {
		c.Each(func(v *E) { *v = (*v).WithKey((*v).Key() + 1) })
	})
}

// Iterate visits every value and folds the keys.
func Iterate[C container.Iterable[E], E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, _ int) {
		var sum uint64
		for v := range c.All() {
			sum += v.Key()
		}
		sink += int(sum & 1)
	})
}

// Erase removes the first value keyed i for Passes keys.
func Erase[C container.Eraser[E], E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, _ int) {
		for i := range Passes {
			c.EraseFirst(keyIs[E](uint64(i)))
		}
	})
}

// RemoveErase removes every value keyed i for Passes keys.
func RemoveErase[C container.Eraser[E], E element.Element[E]]() harness.Operation[C] {
	return op(func(c C, _ int) {
		for i := range Passes {
			c.RemoveIf(keyIs[E](uint64(i)))
		}
	})
}

// RandomErase removes about percent of the values in a single pass. Which
// values go is fixed by seed, so every trial erases the same positions.
func RandomErase[C container.Eraser[E], E element.Element[E]](
	percent int,
	seed int64,
) harness.Operation[C] {
	if percent < 0 || percent > 100 {
		panic(fmt.Sprintf("policy: erase percent %d out of range", percent))
	}

	return op(func(c C, _ int) {
		rng := mrand.New(mrand.NewSource(seed))
		c.RemoveIf(func(E) bool { return rng.Intn(100) < percent })
	})
}

// RandomSortedInsert inserts size random keys, each before the first value
// with a greater or equal key, keeping the container sorted. The source is
// seeded once, so the sequence continues across trials.
func RandomSortedInsert[C container.Positioner[E], E element.Element[E]](
	seed uint64,
) harness.Operation[C] {
	rng := xrand.New(xrand.NewSource(seed))

	return op(func(c C, size int) {
		for range size {
			k := rng.Uint64()
			c.InsertBefore(func(v E) bool { return v.Key() >= k }, element.New[E](k))
		}
	})
}

// Destroy tears the owned container down.
func Destroy[C container.Clearer]() harness.Operation[*Owner[C]] {
	return op(func(o *Owner[C], _ int) { o.Reset() })
}
