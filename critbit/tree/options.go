package tree

import "math/bits"

const defaultCapacity = 16

type options struct {
	capacity int
}

// Option configures a new Tree.
type Option func(*options)

// WithCapacity sets the number of leaves allocated up front. The value is
// rounded up to a power of two and capped at MaxLeaves.
// Non-positive values keep the default of 16.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = min(1<<bits.Len(uint(n-1)), MaxLeaves)
		}
	}
}
