// Package plain implements a growable array of (key, value) pairs with no hash
// filter at all. Every lookup compares keys one by one, which makes it the
// baseline the other containers are measured against.
package plain

import "github.com/aglyzov/go-smallmap"

// Array maps string keys to values of type V.
// It is not safe for concurrent use.
type Array[V any] struct {
	length int
	keys   []string
	vals   []V
}

// New returns an empty Array.
func New[V any](opts ...Option) *Array[V] {
	o := options{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &Array[V]{
		keys: make([]string, o.capacity),
		vals: make([]V, o.capacity),
	}
}

// Len returns the number of keys.
func (a *Array[V]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots.
func (a *Array[V]) Cap() int {
	return len(a.keys)
}

func (a *Array[V]) index(key string) int {
	for i, k := range a.keys[:a.length] {
		if k == key {
			return i
		}
	}
	return -1
}

// Add associates val with key, overwriting a previous value. It never fails.
func (a *Array[V]) Add(key string, val V) error {
	if i := a.index(key); i != -1 {
		a.vals[i] = val
		return nil
	}

	if a.length == len(a.keys) {
		capacity := 2 * len(a.keys)

		keys := make([]string, capacity)
		vals := make([]V, capacity)

		copy(keys, a.keys[:a.length])
		copy(vals, a.vals[:a.length])

		a.keys, a.vals = keys, vals
	}

	a.keys[a.length] = key
	a.vals[a.length] = val
	a.length++

	return nil
}

// Get returns a value associated with the key.
func (a *Array[V]) Get(key string) (val V, ok bool) {
	if i := a.index(key); i != -1 {
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
