// Package strhash provides the string fingerprint used by the hash-scan containers
// and a scalar search over a slice of fingerprints.
package strhash

import "github.com/cespare/xxhash"

// Sum returns a 32-bit fingerprint of s. It is stable within a process only.
func Sum(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}

// IndexOf returns the index of the first h in hashes or -1.
func IndexOf(hashes []uint32, h uint32) int {
	for i, v := range hashes {
		if v == h {
			return i
		}
	}
	return -1
}
