// Package hashed implements a growable array of (hash, key, value) triples.
//
// Lookups scan the dense hash slice first and only compare keys whose hash
// matches, so for a few dozen keys a miss costs one pass over a small []uint32.
package hashed

import (
	"github.com/aglyzov/go-smallmap"
	"github.com/aglyzov/go-smallmap/internal/strhash"
)

// Array maps string keys to values of type V.
// It is not safe for concurrent use.
type Array[V any] struct {
	length int
	hashes []uint32
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

	return &Array[V]{
		hashes: make([]uint32, o.capacity),
		keys:   make([]string, o.capacity),
		vals:   make([]V, o.capacity),
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
	for from := 0; from < a.length; {
		j := strhash.IndexOf(a.hashes[from:a.length], h)
		if j == -1 {
			return -1
		}
		i := from + j
		// hashes are equal - the keys still may differ
		if a.keys[i] == key {
			return i
		}
		from = i + 1
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
