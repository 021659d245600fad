// Package policy holds the create and operation policies that benchmarks
// compose. Create policies own whatever scratch input they reuse across
// trials; operation policies declare the container capabilities they need
// through their type constraints.
package policy

import (
	"github.com/weiihann/contbench/container"
	"github.com/weiihann/contbench/element"
	"github.com/weiihann/contbench/harness"
	"github.com/weiihann/contbench/workload"
)

// Empty makes a fresh empty container for every trial.
func Empty[C any](newC func() C) harness.Creator[C] {
	return harness.CreatorFunc[C](func(int) C { return newC() })
}

// Filled makes a container holding size default values.
func Filled[C any](newN func(size int) C) harness.Creator[C] {
	return harness.CreatorFunc[C](newN)
}

// Prefilled fills a fresh container from a cached input buffer. The
// buffer is built on the first trial of each size and reused by the other
// trials of that size.
type Prefilled[C any, E any] struct {
	newC   func() C
	add    func(c C, v E)
	backup *workload.Backup[E]
}

// Make builds the container for one trial.
func (p *Prefilled[C, E]) Make(size int) C {
	p.backup.Ensure(size)

	c := p.newC()
	for _, v := range p.backup.Values() {
		p.add(c, v)
	}

	return c
}

// Clean releases the cached buffer.
func (p *Prefilled[C, E]) Clean() { p.backup.Invalidate() }

// Backup exposes the cached buffer.
func (p *Prefilled[C, E]) Backup() *workload.Backup[E] { return p.backup }

// FilledRandom pushes every key below size, in a seed-fixed shuffled order,
// to the back of a fresh container.
func FilledRandom[C container.Backer[E], E element.Element[E]](
	newC func() C,
	seed int64,
) *Prefilled[C, E] {
	return &Prefilled[C, E]{
		newC:   newC,
		add:    func(c C, v E) { c.PushBack(v) },
		backup: workload.NewBackup(workload.ShuffledBuilder[E](seed)),
	}
}

// FilledRandomInsert is FilledRandom for unordered containers.
func FilledRandomInsert[C container.Inserter[E], E element.Element[E]](
	newC func() C,
	seed int64,
) *Prefilled[C, E] {
	return &Prefilled[C, E]{
		newC:   newC,
		add:    func(c C, v E) { c.Add(v) },
		backup: workload.NewBackup(workload.ShuffledBuilder[E](seed)),
	}
}

// PrepareBackup makes an empty container and makes sure its backup holds
// the keys 0..size-1, for operations that copy from it during the trial.
type PrepareBackup[C any, E element.Element[E]] struct {
	newC   func() C
	backup *workload.Backup[E]
}

// EmptyPrepareBackup returns a PrepareBackup creating containers with newC.
func EmptyPrepareBackup[C any, E element.Element[E]](
	newC func() C,
) *PrepareBackup[C, E] {
	return &PrepareBackup[C, E]{
		newC:   newC,
		backup: workload.NewBackup(workload.SequentialBuilder[E]()),
	}
}

func (p *PrepareBackup[C, E]) Make(size int) C {
	p.backup.Ensure(size)

	return p.newC()
}

func (p *PrepareBackup[C, E]) Clean() { p.backup.Invalidate() }

// Backup is the buffer FillBackBackup must be bound to.
func (p *PrepareBackup[C, E]) Backup() *workload.Backup[E] { return p.backup }

// Owner is an owning handle to a container, so destroying the container
// can itself be the timed operation.
type Owner[C container.Clearer] struct {
	c    C
	live bool
}

// Own wraps c.
func Own[C container.Clearer](c C) *Owner[C] {
	return &Owner[C]{c: c, live: true}
}

// Get returns the owned container.
func (o *Owner[C]) Get() C { return o.c }

// Live reports whether the container has not been destroyed yet.
func (o *Owner[C]) Live() bool { return o.live }

// Reset clears and drops the container.
func (o *Owner[C]) Reset() {
	if !o.live {
		return
	}

	o.c.Clear()

	var zero C
	o.c = zero
	o.live = false
}

// SmartFilled makes an owned container holding size default values.
func SmartFilled[C container.Clearer](
	newN func(size int) C,
) harness.Creator[*Owner[C]] {
	return harness.CreatorFunc[*Owner[C]](func(size int) *Owner[C] {
		return Own(newN(size))
	})
}

// BackupSmartFilled makes an owned container filled with the keys
// 0..size-1 from a cached buffer.
func BackupSmartFilled[C interface {
	container.Clearer
	container.Backer[E]
}, E element.Element[E]](newC func() C) harness.Creator[*Owner[C]] {
	return &ownedPrefilled[C, E]{
		inner: &Prefilled[C, E]{
			newC:   newC,
			add:    func(c C, v E) { c.PushBack(v) },
			backup: workload.NewBackup(workload.SequentialBuilder[E]()),
		},
	}
}

type ownedPrefilled[C container.Clearer, E any] struct {
	inner *Prefilled[C, E]
}

func (p *ownedPrefilled[C, E]) Make(size int) *Owner[C] {
	return Own(p.inner.Make(size))
}

func (p *ownedPrefilled[C, E]) Clean() { p.inner.Clean() }
