// Package vector implements the hashed array layout with a block-wise hash filter.
//
// Eight hash slots are compared against the needle at once, producing a bitmask
// of candidate positions. Candidates are verified in ascending index order, so
// results are identical to a slot-by-slot scan.
package vector

import (
	"math/bits"

	"github.com/aglyzov/go-smallmap"
	"github.com/aglyzov/go-smallmap/internal/strhash"
)

// Array maps string keys to values of type V.
// It is not safe for concurrent use.
type Array[V any] struct {
	length int
	hashes []uint32 // len is always a multiple of blockWidth
	keys   []string
	vals   []V
	hash   func(string) uint32
}

// New returns an empty Array.
func New[V any](opts ...Option) *Array[V] {
	o := options{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	capacity := roundToBlocks(o.capacity)

	return &Array[V]{
		hashes: make([]uint32, capacity),
		keys:   make([]string, capacity),
		vals:   make([]V, capacity),
		hash:   strhash.Sum,
	}
}

// Len returns the number of keys.
func (a *Array[V]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots.
func (a *Array[V]) Cap() int {
	return len(a.hashes)
}

func (a *Array[V]) index(h uint32, key string) int {
	for from := 0; from < a.length; from += blockWidth {
		mask := matchBlock((*[blockWidth]uint32)(a.hashes[from:from+blockWidth]), h)

		// we're pessimists and assume the hash usually doesn't match
		if mask == 0 {
			continue
		}
		if rest := a.length - from; rest < blockWidth {
			mask &= uint8(1)<<rest - 1
		}

		for ; mask != 0; mask &= mask - 1 {
			i := from + bits.TrailingZeros8(mask)
			if a.keys[i] == key {
				return i
			}
		}
	}
	return -1
}

// Add associates val with key, overwriting a previous value. It never fails.
func (a *Array[V]) Add(key string, val V) error {
	h := a.hash(key)

	if i := a.index(h, key); i != -1 {
		a.vals[i] = val
		return nil
	}

	if a.length == len(a.hashes) {
		a.grow()
	}

	a.hashes[a.length] = h
	a.keys[a.length] = key
	a.vals[a.length] = val
	a.length++

	return nil
}

func (a *Array[V]) grow() {
	capacity := 2 * len(a.hashes)

	hashes := make([]uint32, capacity)
	keys := make([]string, capacity)
	vals := make([]V, capacity)

	copy(hashes, a.hashes[:a.length])
	copy(keys, a.keys[:a.length])
	copy(vals, a.vals[:a.length])

	a.hashes, a.keys, a.vals = hashes, keys, vals
}

// Get returns a value associated with the key.
func (a *Array[V]) Get(key string) (val V, ok bool) {
	if i := a.index(a.hash(key), key); i != -1 {
		return a.vals[i], true
	}
	return
}

// Find returns a value associated with the key or smallmap.ErrNotFound.
func (a *Array[V]) Find(key string) (V, error) {
	val, ok := a.Get(key)
	if !ok {
		return val, smallmap.ErrNotFound
	}
	return val, nil
}

// Range calls fn for every entry in insertion order until fn returns false.
func (a *Array[V]) Range(fn func(key string, val V) bool) {
	for i := 0; i < a.length; i++ {
		if !fn(a.keys[i], a.vals[i]) {
			return
		}
	}
}
