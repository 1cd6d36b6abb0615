package skipset

import (
	"math/rand"
	"testing"
)

type keyDistribution struct {
	name string
	gen  func(n int) []int
}

func benchDistributions() []keyDistribution {
	return []keyDistribution{
		{name: "Uniform", gen: func(n int) []int {
			r := rand.New(rand.NewSource(1))
			keys := make([]int, n)
			for i := range keys {
				keys[i] = r.Int()
			}
			return keys
		}},
		{name: "Ascending", gen: func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				keys[i] = i
			}
			return keys
		}},
		{name: "Descending", gen: func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				keys[i] = n - i
			}
			return keys
		}},
	}
}

func BenchmarkInsert(b *testing.B) {
	for _, dist := range benchDistributions() {
		dist := dist
		b.Run(dist.name, func(b *testing.B) {
			keys := dist.gen(b.N)
			s := NewOrdered[int](WithCapacity(b.N), WithMaxHeight(HeightCap))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Insert(keys[i])
			}
		})
	}
}

func BenchmarkFind(b *testing.B) {
	const size = 1 << 16
	s := NewOrdered[int](WithCapacity(size), WithMaxHeight(HeightCap))
	r := rand.New(rand.NewSource(1))
	keys := make([]int, size)
	for i := range keys {
		keys[i] = r.Int()
		s.Insert(keys[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Find(keys[i&(size-1)])
	}
}

func BenchmarkInsertEraseChurn(b *testing.B) {
	const size = 1 << 12
	s := NewOrdered[int](WithCapacity(size), WithMaxHeight(HeightCap))
	for i := 0; i < size; i++ {
		s.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := i & (size - 1)
		it := s.Find(key)
		if it.Valid() {
			if _, err := s.Erase(it); err != nil {
				b.Fatalf("erase failed: %v", err)
			}
		}
		s.Insert(key)
	}
}

func BenchmarkIterate(b *testing.B) {
	const size = 1 << 14
	s := NewOrdered[int](WithCapacity(size), WithMaxHeight(HeightCap))
	for i := 0; i < size; i++ {
		s.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := s.Begin(); it.Valid(); {
			if err := it.Next(); err != nil {
				b.Fatalf("advance failed: %v", err)
			}
		}
	}
}
