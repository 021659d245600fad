package suite

import (
	"time"

	"github.com/weiihann/contbench/container"
	"github.com/weiihann/contbench/container/colony"
	"github.com/weiihann/contbench/container/ilist"
	"github.com/weiihann/contbench/element"
	"github.com/weiihann/contbench/harness"
	"github.com/weiihann/contbench/policy"
)

// sweep is what one graph needs to run its series.
type sweep struct {
	h     *harness.Harness
	unit  time.Duration
	sizes []int
	seed  int64
	small bool
}

func run[C any](
	s sweep,
	label string,
	create harness.Creator[C],
	ops ...harness.Operation[C],
) {
	harness.Bench(s.h, label, s.unit, s.sizes, create, ops...)
}

func newIntrusive[E any](mode ilist.Mode) func() *container.IntrusiveList[E] {
	return func() *container.IntrusiveList[E] {
		return container.NewIntrusiveList[E](mode)
	}
}

func filledColony[E element.Element[E]](n int) *colony.Colony[E] {
	c := colony.New[E]()
	c.Reserve(n)

	v := element.New[E](0)
	for range n {
		c.Add(v)
	}

	return c
}

func fillBack[E element.Element[E]](s sweep) {
	run(s, "vector",
		policy.Empty(container.NewVector[E]),
		policy.FillBack[*container.Vector[E], E]())
	run(s, "list",
		policy.Empty(container.NewList[E]),
		policy.FillBack[*container.List[E], E]())
	run(s, "deque",
		policy.Empty(container.NewDeque[E]),
		policy.FillBack[*container.Deque[E], E]())
	run(s, "ilist",
		policy.Empty(newIntrusive[E](ilist.Normal)),
		policy.FillBack[*container.IntrusiveList[E], E]())
	run(s, "vector_reserve",
		policy.Empty(container.NewVector[E]),
		policy.ReserveSize[*container.Vector[E]](),
		policy.FillBack[*container.Vector[E], E]())
	run(s, "colony",
		policy.Empty(colony.New[E]),
		policy.InsertSimple[*colony.Colony[E], E]())
	run(s, "colony_reserve",
		policy.Empty(colony.New[E]),
		policy.ReserveSize[*colony.Colony[E]](),
		policy.InsertSimple[*colony.Colony[E], E]())
}

func emplaceBack[E element.Element[E]](s sweep) {
	run(s, "vector",
		policy.Empty(container.NewVector[E]),
		policy.EmplaceBack[*container.Vector[E], E]())
	run(s, "list",
		policy.Empty(container.NewList[E]),
		policy.EmplaceBack[*container.List[E], E]())
	run(s, "deque",
		policy.Empty(container.NewDeque[E]),
		policy.EmplaceBack[*container.Deque[E], E]())
	run(s, "ilist",
		policy.Empty(newIntrusive[E](ilist.Normal)),
		policy.EmplaceBack[*container.IntrusiveList[E], E]())
	run(s, "colony",
		policy.Empty(colony.New[E]),
		policy.EmplaceInsertSimple[*colony.Colony[E], E]())
	run(s, "vector_reserve",
		policy.Empty(container.NewVector[E]),
		policy.ReserveSize[*container.Vector[E]](),
		policy.EmplaceBack[*container.Vector[E], E]())
	run(s, "colony_reserve",
		policy.Empty(colony.New[E]),
		policy.ReserveSize[*colony.Colony[E]](),
		policy.EmplaceInsertSimple[*colony.Colony[E], E]())
}

// The colony is unordered, so it has no front. Shifting large values to
// make room at the front of a vector takes too long to be worth a series.

func fillFront[E element.Element[E]](s sweep) {
	if s.small {
		run(s, "vector",
			policy.Empty(container.NewVector[E]),
			policy.FillFront[*container.Vector[E], E]())
	}
	run(s, "list",
		policy.Empty(container.NewList[E]),
		policy.FillFront[*container.List[E], E]())
	run(s, "deque",
		policy.Empty(container.NewDeque[E]),
		policy.FillFront[*container.Deque[E], E]())
	run(s, "ilist",
		policy.Empty(newIntrusive[E](ilist.Normal)),
		policy.FillFront[*container.IntrusiveList[E], E]())
}

func emplaceFront[E element.Element[E]](s sweep) {
	if s.small {
		run(s, "vector",
			policy.Empty(container.NewVector[E]),
			policy.EmplaceFront[*container.Vector[E], E]())
	}
	run(s, "list",
		policy.Empty(container.NewList[E]),
		policy.EmplaceFront[*container.List[E], E]())
	run(s, "deque",
		policy.Empty(container.NewDeque[E]),
		policy.EmplaceFront[*container.Deque[E], E]())
	run(s, "ilist",
		policy.Empty(newIntrusive[E](ilist.Normal)),
		policy.EmplaceFront[*container.IntrusiveList[E], E]())
}

// withShuffled runs op against every family filled in shuffled order,
// each series labelled with its family name plus suffix.
func withShuffled[E element.Element[E]](
	s sweep,
	suffix string,
	vector harness.Operation[*container.Vector[E]],
	list harness.Operation[*container.List[E]],
	deque harness.Operation[*container.Deque[E]],
	intrusive harness.Operation[*container.IntrusiveList[E]],
	slots harness.Operation[*colony.Colony[E]],
) {
	harness.Bench[*container.Vector[E]](s.h, "vector"+suffix, s.unit, s.sizes,
		policy.FilledRandom[*container.Vector[E], E](container.NewVector[E], s.seed),
		vector)
	harness.Bench[*container.List[E]](s.h, "list"+suffix, s.unit, s.sizes,
		policy.FilledRandom[*container.List[E], E](container.NewList[E], s.seed),
		list)
	harness.Bench[*container.Deque[E]](s.h, "deque"+suffix, s.unit, s.sizes,
		policy.FilledRandom[*container.Deque[E], E](container.NewDeque[E], s.seed),
		deque)
	harness.Bench[*container.IntrusiveList[E]](s.h, "ilist"+suffix, s.unit, s.sizes,
		policy.FilledRandom[*container.IntrusiveList[E], E](newIntrusive[E](ilist.Normal), s.seed),
		intrusive)

	if slots != nil {
		harness.Bench[*colony.Colony[E]](s.h, "colony"+suffix, s.unit, s.sizes,
			policy.FilledRandomInsert[*colony.Colony[E], E](colony.New[E], s.seed),
			slots)
	}
}

func find[E element.Element[E]](s sweep) {
	withShuffled(s, "",
		policy.Find[*container.Vector[E], E](),
		policy.Find[*container.List[E], E](),
		policy.Find[*container.Deque[E], E](),
		policy.Find[*container.IntrusiveList[E], E](),
		policy.Find[*colony.Colony[E], E]())
}

func write[E element.Element[E]](s sweep) {
	withShuffled(s, "",
		policy.Write[*container.Vector[E], E](),
		policy.Write[*container.List[E], E](),
		policy.Write[*container.Deque[E], E](),
		policy.Write[*container.IntrusiveList[E], E](),
		policy.Write[*colony.Colony[E], E]())
}

func traversal[E element.Element[E]](s sweep) {
	withShuffled(s, "",
		policy.Iterate[*container.Vector[E], E](),
		policy.Iterate[*container.List[E], E](),
		policy.Iterate[*container.Deque[E], E](),
		policy.Iterate[*container.IntrusiveList[E], E](),
		policy.Iterate[*colony.Colony[E], E]())
}

// The colony has no position to insert before.
func randomInsert[E element.Element[E]](s sweep) {
	withShuffled(s, "",
		policy.Insert[*container.Vector[E], E](),
		policy.Insert[*container.List[E], E](),
		policy.Insert[*container.Deque[E], E](),
		policy.Insert[*container.IntrusiveList[E], E](),
		nil)
}

func randomRemove[E element.Element[E]](s sweep) {
	withShuffled(s, "",
		policy.Erase[*container.Vector[E], E](),
		policy.Erase[*container.List[E], E](),
		policy.Erase[*container.Deque[E], E](),
		policy.Erase[*container.IntrusiveList[E], E](),
		policy.Erase[*colony.Colony[E], E]())
	withShuffled(s, "_rem",
		policy.RemoveErase[*container.Vector[E], E](),
		policy.RemoveErase[*container.List[E], E](),
		policy.RemoveErase[*container.Deque[E], E](),
		policy.RemoveErase[*container.IntrusiveList[E], E](),
		policy.RemoveErase[*colony.Colony[E], E]())
}

func randomErase[E element.Element[E]](percent int) func(s sweep) {
	return func(s sweep) {
		withShuffled(s, "",
			policy.RandomErase[*container.Vector[E], E](percent, s.seed),
			policy.RandomErase[*container.List[E], E](percent, s.seed),
			policy.RandomErase[*container.Deque[E], E](percent, s.seed),
			policy.RandomErase[*container.IntrusiveList[E], E](percent, s.seed),
			policy.RandomErase[*colony.Colony[E], E](percent, s.seed))
	}
}

func sortAll[E element.Element[E]](s sweep) {
	withShuffled(s, "",
		policy.Sort[*container.Vector[E], E](),
		policy.Sort[*container.List[E], E](),
		policy.Sort[*container.Deque[E], E](),
		policy.Sort[*container.IntrusiveList[E], E](),
		policy.Sort[*colony.Colony[E], E]())
	harness.Bench[*colony.Colony[E]](s.h, "colony_timsort", s.unit, s.sizes,
		policy.FilledRandomInsert[*colony.Colony[E], E](colony.New[E], s.seed),
		policy.StableSort[*colony.Colony[E], E]())
}

func reverseAll[E element.Element[E]](s sweep) {
	v := element.New[E](0)

	run(s, "vector",
		policy.Filled(func(n int) *container.Vector[E] { return container.NewVectorOf(n, v) }),
		policy.Reverse[*container.Vector[E], E]())
	run(s, "list",
		policy.Filled(func(n int) *container.List[E] { return container.NewListOf(n, v) }),
		policy.Reverse[*container.List[E], E]())
	run(s, "deque",
		policy.Filled(func(n int) *container.Deque[E] { return container.NewDequeOf(n, v) }),
		policy.Reverse[*container.Deque[E], E]())

	for _, mode := range []ilist.Mode{ilist.Normal, ilist.Safe, ilist.AutoUnlink} {
		label := "ilist"
		if mode != ilist.Normal {
			label += "_" + mode.String()
		}

		run(s, label,
			policy.Filled(func(n int) *container.IntrusiveList[E] {
				return container.NewIntrusiveListOf(mode, n, v)
			}),
			policy.Reverse[*container.IntrusiveList[E], E]())
	}

	run(s, "colony",
		policy.Filled(filledColony[E]),
		policy.Reverse[*colony.Colony[E], E]())
}

// Ordered families are filled with distinct values so heap payloads are
// freed one by one.
func destruction[E element.Element[E]](s sweep) {
	run(s, "vector",
		policy.BackupSmartFilled[*container.Vector[E], E](container.NewVector[E]),
		policy.Destroy[*container.Vector[E]]())
	run(s, "list",
		policy.BackupSmartFilled[*container.List[E], E](container.NewList[E]),
		policy.Destroy[*container.List[E]]())
	run(s, "deque",
		policy.BackupSmartFilled[*container.Deque[E], E](container.NewDeque[E]),
		policy.Destroy[*container.Deque[E]]())
	run(s, "ilist",
		policy.BackupSmartFilled[*container.IntrusiveList[E], E](newIntrusive[E](ilist.Normal)),
		policy.Destroy[*container.IntrusiveList[E]]())
	run(s, "colony",
		policy.SmartFilled(filledColony[E]),
		policy.Destroy[*colony.Colony[E]]())
}

func numberCrunching[E element.Element[E]](s sweep) {
	seed := uint64(s.seed)

	run(s, "vector",
		policy.Empty(container.NewVector[E]),
		policy.RandomSortedInsert[*container.Vector[E], E](seed))
	run(s, "list",
		policy.Empty(container.NewList[E]),
		policy.RandomSortedInsert[*container.List[E], E](seed))
	run(s, "deque",
		policy.Empty(container.NewDeque[E]),
		policy.RandomSortedInsert[*container.Deque[E], E](seed))
	run(s, "ilist",
		policy.Empty(newIntrusive[E](ilist.Normal)),
		policy.RandomSortedInsert[*container.IntrusiveList[E], E](seed))
}

// Each series shares one backup between the create policy that prepares
// it and the operation that reads it.
func fillBackBackup[E element.Element[E]](s sweep) {
	vector := policy.EmptyPrepareBackup[*container.Vector[E], E](container.NewVector[E])
	harness.Bench[*container.Vector[E]](s.h, "vector", s.unit, s.sizes, vector,
		policy.FillBackBackup[*container.Vector[E], E](vector.Backup()))

	reserved := policy.EmptyPrepareBackup[*container.Vector[E], E](container.NewVector[E])
	harness.Bench[*container.Vector[E]](s.h, "vector_reserve", s.unit, s.sizes, reserved,
		policy.ReserveSize[*container.Vector[E]](),
		policy.FillBackBackup[*container.Vector[E], E](reserved.Backup()))

	list := policy.EmptyPrepareBackup[*container.List[E], E](container.NewList[E])
	harness.Bench[*container.List[E]](s.h, "list", s.unit, s.sizes, list,
		policy.FillBackBackup[*container.List[E], E](list.Backup()))

	deque := policy.EmptyPrepareBackup[*container.Deque[E], E](container.NewDeque[E])
	harness.Bench[*container.Deque[E]](s.h, "deque", s.unit, s.sizes, deque,
		policy.FillBackBackup[*container.Deque[E], E](deque.Backup()))

	intrusive := policy.EmptyPrepareBackup[*container.IntrusiveList[E], E](newIntrusive[E](ilist.Normal))
	harness.Bench[*container.IntrusiveList[E]](s.h, "ilist", s.unit, s.sizes, intrusive,
		policy.FillBackBackup[*container.IntrusiveList[E], E](intrusive.Backup()))
}
