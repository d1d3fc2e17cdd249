// Package smallmap holds the contract shared by a handful of small string-keyed
// containers tuned for tens to a few hundreds of entries.
//
// The containers live in their own packages:
//
//   - scan/hashed  - growable array of (hash, key, value), scalar scan over hashes;
//   - scan/vector  - same layout, hashes are filtered 8 slots at a time;
//   - scan/plain   - growable array of (key, value), plain key comparison;
//   - scan/chained - chain of doubling segments, filled segments are never copied;
//   - critbit/tree - crit-bit trie over an index arena with 16-bit tagged pointers.
//
// All of them are single-writer structures without any internal locking.
package smallmap
