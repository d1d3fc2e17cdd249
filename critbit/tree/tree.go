// Package tree implements a crit-bit trie kept in flat arenas.
//
// Leaves live in the keys/vals slices, internal nodes in the nodes slice, and
// all links are 16-bit tagged indexes (see ptr). The i-th inserted key owns
// keys[i] and, for i > 0, the node created together with it in nodes[i].
// Thus a tree of N leaves has N-1 nodes and nodes[0] stays unused.
//
// Lookups cost O(key length) and do not depend on the number of keys.
// The tree holds at most MaxLeaves keys.
package tree

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/aglyzov/go-smallmap"
)

const (
	// MaxLeaves is the largest number of keys a Tree can hold.
	MaxLeaves = 1 << 15

	// maxPos is the last char position a node can test.
	maxPos = math.MaxUint16
)

type node struct {
	child [2]ptr
	// pos is the offset of the differing char
	pos uint16
	// mask contains the single crit bit of the differing char
	mask uint16
}

// dir calculates the direction for the given key
func (n *node) dir(key string) int {
	if charAt(key, int(n.pos))&n.mask != 0 {
		return 1
	}
	return 0
}

// slot addresses a stored ptr: a child of nodes[node] or the root when node is 0.
type slot struct {
	node int
	side int
}

// Tree maps string keys to values of type V.
// It is not safe for concurrent use.
type Tree[V any] struct {
	length int
	root   ptr
	nodes  []node
	keys   []string
	vals   []V
}

// New returns an empty Tree.
func New[V any](opts ...Option) *Tree[V] {
	o := options{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[V]{
		nodes: make([]node, o.capacity),
		keys:  make([]string, o.capacity),
		vals:  make([]V, o.capacity),
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[V]) Len() int {
	return t.length
}

// Cap returns the number of leaves allocated.
func (t *Tree[V]) Cap() int {
	return len(t.keys)
}

func (t *Tree[V]) load(s slot) ptr {
	if s.node == 0 {
		return t.root
	}
	return t.nodes[s.node].child[s.side]
}

func (t *Tree[V]) store(s slot, p ptr) {
	if s.node == 0 {
		t.root = p
		return
	}
	t.nodes[s.node].child[s.side] = p
}

// closest walks the tree for the key and returns the slot of the leaf it ends at.
func (t *Tree[V]) closest(key string) slot {
	var s slot

	for p := t.root; !p.isLeaf(); p = t.load(s) {
		n := &t.nodes[p.index()]
		s = slot{node: p.index(), side: n.dir(key)}
	}

	return s
}

// Add associates val with key, overwriting a previous value.
//
// It fails with smallmap.ErrFull when a new key would exceed MaxLeaves and with
// smallmap.ErrEncodingExhausted when the key equals an existing one over all
// positions a node can test. A failed Add leaves the tree unchanged.
func (t *Tree[V]) Add(key string, val V) error {
	// test for empty tree
	if t.length == 0 {
		t.keys[0] = key
		t.vals[0] = val
		t.root = leafPtr(0)
		t.length = 1
		return nil
	}

	var (
		s        = t.closest(key)
		p        = t.load(s)
		existing = t.keys[p.index()]
	)

	// key exists - just replace the value
	if existing == key {
		t.vals[p.index()] = val
		return nil
	}

	if t.length == MaxLeaves {
		return errors.Wrapf(smallmap.ErrFull, "cannot add %q to a tree of %d keys", key, t.length)
	}

	pos, mask, ok := critBit(key, existing)
	if !ok {
		return errors.Wrapf(smallmap.ErrEncodingExhausted,
			"%q and %q share the first %d chars", clip(key), clip(existing), maxPos+1)
	}

	// the new node and leaf both take index t.length
	nn := node{pos: uint16(pos), mask: mask}
	if charAt(key, pos)&mask == 0 {
		nn.child = [2]ptr{leafPtr(t.length), p}
	} else {
		nn.child = [2]ptr{p, leafPtr(t.length)}
	}

	if t.length == len(t.nodes) {
		t.grow(s, nodePtr(t.length))
	} else {
		t.store(s, nodePtr(t.length))
	}

	t.nodes[t.length] = nn
	t.keys[t.length] = key
	t.vals[t.length] = val
	t.length++

	return nil
}

// grow doubles the arenas and points the slot s at p on the way.
func (t *Tree[V]) grow(s slot, p ptr) {
	capacity := 2 * len(t.nodes)

	nodes := make([]node, capacity)
	keys := make([]string, capacity)
	vals := make([]V, capacity)

	// redirect after allocating so a failed allocation leaves the tree intact,
	// and before copying so the copy carries the updated ptr
	t.store(s, p)

	copy(nodes, t.nodes[:t.length])
	copy(keys, t.keys[:t.length])
	copy(vals, t.vals[:t.length])

	t.nodes, t.keys, t.vals = nodes, keys, vals
}

// critBit finds the first char position where a and b differ
// and the lowest differing bit of that char.
func critBit(a, b string) (pos int, mask uint16, ok bool) {
	for ; pos <= maxPos; pos++ {
		if bits := charAt(a, pos) ^ charAt(b, pos); bits != 0 {
			return pos, bits & -bits, true
		}
	}
	return 0, 0, false
}

func clip(key string) string {
	const size = 16
	if len(key) > size {
		return key[:size] + "..."
	}
	return key
}

// Get returns a value associated with the key.
func (t *Tree[V]) Get(key string) (val V, ok bool) {
	// test for empty tree
	if t.length == 0 {
		return
	}

	p := t.root
	for !p.isLeaf() {
		n := &t.nodes[p.index()]
		p = n.child[n.dir(key)]
	}

	// the walk only agrees with the key on the tested bits
	if i := p.index(); t.keys[i] == key {
		return t.vals[i], true
	}
	return
}

// Find returns a value associated with the key or smallmap.ErrNotFound.
func (t *Tree[V]) Find(key string) (V, error) {
	val, ok := t.Get(key)
	if !ok {
		return val, smallmap.ErrNotFound
	}
	return val, nil
}

// Range calls fn for every key in insertion order until fn returns false.
func (t *Tree[V]) Range(fn func(key string, val V) bool) {
	for i := 0; i < t.length; i++ {
		if !fn(t.keys[i], t.vals[i]) {
			return
		}
	}
}

// Dump writes the tree structure to w, one twig per line.
func (t *Tree[V]) Dump(w io.Writer) {
	if t.length == 0 {
		fmt.Fprintln(w, "T: EMPTY")
		return
	}
	t.dump(w, t.root, "T:", "")
}

func (t *Tree[V]) dump(w io.Writer, p ptr, tag, indent string) {
	if p.isLeaf() {
		i := p.index()
		fmt.Fprintf(w, "%s%s LEAF #%d key=%q val=%v\n", indent, tag, i, t.keys[i], t.vals[i])
		return
	}

	n := &t.nodes[p.index()]
	fmt.Fprintf(w, "%s%s NODE #%d pos=%d mask=%09b\n", indent, tag, p.index(), n.pos, n.mask)

	t.dump(w, n.child[0], "L:", indent+"  ")
	t.dump(w, n.child[1], "R:", indent+"  ")
}
