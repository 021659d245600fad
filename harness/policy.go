package harness

// Creator builds the starting container of a trial. Clean releases any
// scratch state the creator keeps between trials; Bench calls it once,
// after the whole size sweep.
type Creator[C any] interface {
	Make(size int) C
	Clean()
}

// Operation performs one unit of timed work against a container.
type Operation[C any] interface {
	Run(c C, size int)
}

// OperationFunc adapts a function to Operation.
type OperationFunc[C any] func(c C, size int)

func (f OperationFunc[C]) Run(c C, size int) { f(c, size) }

// Chain runs its operations in order against the same container.
type Chain[C any] []Operation[C]

func (ch Chain[C]) Run(c C, size int) {
	for _, op := range ch {
		op.Run(c, size)
	}
}

// CreatorFunc adapts a constructor without scratch state to Creator.
type CreatorFunc[C any] func(size int) C

func (f CreatorFunc[C]) Make(size int) C { return f(size) }

func (f CreatorFunc[C]) Clean() {}
