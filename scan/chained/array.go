// Package chained implements a hashed array split into a chain of segments.
//
// Each segment doubles the capacity of the previous one. New keys always go
// to the tail segment and a filled segment is never copied, only scanned.
package chained

import (
	"github.com/aglyzov/go-smallmap"
	"github.com/aglyzov/go-smallmap/internal/strhash"
)

type segment[V any] struct {
	length int
	hashes []uint32
	keys   []string
	vals   []V
	next   *segment[V]
}

func newSegment[V any](capacity int) *segment[V] {
	return &segment[V]{
		hashes: make([]uint32, capacity),
		keys:   make([]string, capacity),
		vals:   make([]V, capacity),
	}
}

func (s *segment[V]) full() bool {
	return s.length == len(s.hashes)
}

func (s *segment[V]) index(h uint32, key string) int {
	for from := 0; from < s.length; {
		j := strhash.IndexOf(s.hashes[from:s.length], h)
		if j == -1 {
			return -1
		}
		i := from + j
		// hashes are equal - the keys still may differ
		if s.keys[i] == key {
			return i
		}
		from = i + 1
	}
	return -1
}

// Array maps string keys to values of type V.
// It is not safe for concurrent use.
type Array[V any] struct {
	length int
	first  *segment[V]
	last   *segment[V]
	hash   func(string) uint32
}

// New returns an Array with a single empty segment.
func New[V any](opts ...Option) *Array[V] {
	o := options{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	first := newSegment[V](o.capacity)

	return &Array[V]{
		first: first,
		last:  first,
		hash:  strhash.Sum,
	}
}

// Len returns the number of keys.
func (a *Array[V]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots in all segments.
func (a *Array[V]) Cap() (total int) {
	for s := a.first; s != nil; s = s.next {
		total += len(s.hashes)
	}
	return
}

// Segments returns the length of the segment chain.
func (a *Array[V]) Segments() (num int) {
	for s := a.first; s != nil; s = s.next {
		num++
	}
	return
}

// find walks segments oldest first.
func (a *Array[V]) find(h uint32, key string) (*segment[V], int) {
	for s := a.first; s != nil; s = s.next {
		if i := s.index(h, key); i != -1 {
			return s, i
		}
	}
	return nil, -1
}

// Add associates val with key, overwriting a previous value. It never fails.
func (a *Array[V]) Add(key string, val V) error {
	h := a.hash(key)

	if s, i := a.find(h, key); s != nil {
		s.vals[i] = val
		return nil
	}

	if a.last.full() {
		s := newSegment[V](2 * len(a.last.hashes))
		a.last.next = s
		a.last = s
	}

	last := a.last
	last.hashes[last.length] = h
	last.keys[last.length] = key
	last.vals[last.length] = val
	last.length++
	a.length++

	return nil
}

// Get returns a value associated with the key.
func (a *Array[V]) Get(key string) (val V, ok bool) {
	if s, i := a.find(a.hash(key), key); s != nil {
		return s.vals[i], true
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
	for s := a.first; s != nil; s = s.next {
		for i := 0; i < s.length; i++ {
			if !fn(s.keys[i], s.vals[i]) {
				return
			}
		}
	}
}
