package smallmap

// Map is the two-operation contract every container implements.
//
// Add inserts a key or overwrites the value of an existing one.
// Find returns the value of a key or ErrNotFound.
type Map[V any] interface {
	Add(key string, val V) error
	Find(key string) (V, error)
	Len() int
}
