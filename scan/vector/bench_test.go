package vector

import (
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/samber/lo"
)

var sizes = []int{16, 64, 256}

func BenchmarkGoMap_Find(b *testing.B) {
	for _, n := range sizes {
		keys := getKeys(n)
		m := make(map[string]int, len(keys))
		for i, key := range keys {
			m[key] = i
		}

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = m[keys[i%len(keys)]]
			}
		})
	}
}

func BenchmarkArray_Add(b *testing.B) {
	for _, n := range sizes {
		keys := getKeys(n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a := New[int]()
				for j, key := range keys {
					_ = a.Add(key, j)
				}
			}
		})
	}
}

func BenchmarkArray_Find(b *testing.B) {
	for _, n := range sizes {
		keys := getKeys(n)
		a := New[int]()
		for i, key := range keys {
			_ = a.Add(key, i)
		}

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = a.Find(keys[i%len(keys)])
			}
		})
	}
}

func getKeys(total int) []string {
	const seed = 1234567890

	faker := gofakeit.New(seed)

	return lo.Uniq(lo.Times(total, func(int) string {
		return faker.Sentence(3)
	}))
}
