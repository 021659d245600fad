// Package workload produces the deterministic inputs the create policies
// fill containers from. Every generator is a pure function of its size and
// seed, so two calls with the same arguments yield the same values.
package workload

import (
	mrand "math/rand"

	"github.com/weiihann/contbench/element"
)

// DefaultSeed matches the default seed of the Mersenne Twister, which the
// shuffled inputs have always been generated from.
const DefaultSeed int64 = 5489

// Sequential returns size values keyed 0..size-1 in ascending order.
func Sequential[E element.Element[E]](size int) []E {
	values := make([]E, size)
	for i := range values {
		values[i] = element.New[E](uint64(i))
	}

	return values
}

// Shuffled returns the keys 0..size-1 in a permutation fixed by seed.
func Shuffled[E element.Element[E]](size int, seed int64) []E {
	values := Sequential[E](size)
	rng := mrand.New(mrand.NewSource(seed))

	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	return values
}

// SequentialBuilder adapts Sequential to a Backup build function.
func SequentialBuilder[E element.Element[E]]() func(size int) []E {
	return Sequential[E]
}

// ShuffledBuilder adapts Shuffled with a fixed seed to a Backup build
// function.
func ShuffledBuilder[E element.Element[E]](seed int64) func(size int) []E {
	return func(size int) []E {
		return Shuffled[E](size, seed)
	}
}
