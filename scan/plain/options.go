package plain

const defaultCapacity = 16

type options struct {
	capacity int
}

// Option configures a new Array.
type Option func(*options)

// WithCapacity sets the number of slots allocated up front.
// Non-positive values keep the default of 16.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
