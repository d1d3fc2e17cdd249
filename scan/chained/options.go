package chained

const defaultCapacity = 16

type options struct {
	capacity int
}

// Option configures a new Array.
type Option func(*options)

// WithCapacity sets the capacity of the first segment. Every following segment
// is twice as large as its predecessor.
// Non-positive values keep the default of 16.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
