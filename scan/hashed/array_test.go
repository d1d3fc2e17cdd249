package hashed

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-smallmap"
)

var _ smallmap.Map[int] = (*Array[int])(nil)

func TestNew(t *testing.T) {
	t.Parallel()

	a := New[int]()

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, defaultCapacity, a.Cap())
	assert.Equal(t, 5, New[int](WithCapacity(5)).Cap())
	assert.Equal(t, defaultCapacity, New[int](WithCapacity(-1)).Cap())
}

func TestFind_Empty(t *testing.T) {
	t.Parallel()

	a := New[int]()

	for _, key := range []string{"", "a", "\x00"} {
		_, err := a.Find(key)
		assert.ErrorIs(t, err, smallmap.ErrNotFound, key)
	}
}

func TestAdd_Find(t *testing.T) {
	t.Parallel()

	a := New[int]()

	for i, key := range []string{"the", "of", "and", "a"} {
		require.NoError(t, a.Add(key, []int{3, 2, 3, 1}[i]))
	}

	for _, tcase := range []*struct {
		Key    string
		ExpVal int
		ExpErr error
	}{
		{"a", 1, nil},
		{"and", 3, nil},
		{"the", 3, nil},
		{"of", 2, nil},
		{"xyz", 0, smallmap.ErrNotFound},
		{"", 0, smallmap.ErrNotFound},
		{"an", 0, smallmap.ErrNotFound},
	} {
		tcase := tcase

		t.Run(fmt.Sprintf("%#v", tcase.Key), func(t *testing.T) {
			val, err := a.Find(tcase.Key)

			assert.ErrorIs(t, err, tcase.ExpErr)
			assert.Equal(t, tcase.ExpVal, val)
		})
	}
}

func TestAdd_Overwrite(t *testing.T) {
	t.Parallel()

	a := New[string]()

	require.NoError(t, a.Add("", "empty"))
	require.NoError(t, a.Add("k", "v1"))
	require.NoError(t, a.Add("k", "v2"))

	val, err := a.Find("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", val)
	assert.Equal(t, 2, a.Len())

	val, ok := a.Get("")
	assert.True(t, ok)
	assert.Equal(t, "empty", val)
}

func TestAdd_Grow(t *testing.T) {
	t.Parallel()

	var (
		a    = New[int](WithCapacity(1))
		keys = lo.Times(100, func(i int) string { return fmt.Sprintf("key-%03d", i) })
	)

	for i, key := range keys {
		require.NoError(t, a.Add(key, i))
	}

	assert.Equal(t, len(keys), a.Len())
	assert.Equal(t, 128, a.Cap())

	for i, key := range keys {
		val, err := a.Find(key)
		require.NoError(t, err, key)
		assert.Equal(t, i, val, key)
	}
}

func TestAdd_HashCollisions(t *testing.T) {
	t.Parallel()

	a := New[int]()
	a.hash = func(string) uint32 { return 42 }

	for i, key := range []string{"x", "y", "z", "y"} {
		require.NoError(t, a.Add(key, i))
	}

	assert.Equal(t, 3, a.Len())

	for key, exp := range map[string]int{"x": 0, "y": 3, "z": 2} {
		val, err := a.Find(key)
		require.NoError(t, err)
		assert.Equal(t, exp, val, key)
	}

	_, err := a.Find("w")
	assert.ErrorIs(t, err, smallmap.ErrNotFound)
}

func TestRange(t *testing.T) {
	t.Parallel()

	a := New[int]()
	for i, key := range []string{"c", "a", "b"} {
		require.NoError(t, a.Add(key, i))
	}

	var keys []string
	a.Range(func(key string, val int) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"c", "a", "b"}, keys)

	keys = nil
	a.Range(func(key string, val int) bool {
		keys = append(keys, key)
		return false
	})
	assert.Equal(t, []string{"c"}, keys)
}

func TestAdd_FakeData(t *testing.T) {
	t.Parallel()

	const (
		total = 500
		seed  = 1234567890
	)

	var (
		a     = New[string]()
		state = map[string]string{}
		fake  = gofakeit.New(seed)
	)

	for i := 0; i < total; i++ {
		var (
			key = fake.Word()
			val = fake.Name()
		)

		require.NoError(t, a.Add(key, val))
		state[key] = val
	}

	assert.Equal(t, len(state), a.Len())

	for key, val := range state {
		actual, err := a.Find(key)

		require.NoError(t, err, key)
		assert.Equal(t, val, actual, key)
	}
}
