package lazyvec_test

import (
	"testing"

	lazyvec "github.com/BartMassey/lazy-vec"
)

func BenchmarkWrite_Dense(b *testing.B) {
	a := lazyvec.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Write(i&(1<<24-1), i)
	}
}

func BenchmarkWrite_Sparse(b *testing.B) {
	a := lazyvec.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Spread writes over a wide range so most of the index table stays
		// untouched.
		a.Write((i*1021)&(1<<24-1), i)
	}
}

func BenchmarkWrite_Overwrite(b *testing.B) {
	a := lazyvec.New[int]()
	a.Write(0, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Write(0, i)
	}
}

func BenchmarkRead(b *testing.B) {
	const n = 1 << 16
	a := lazyvec.New[int](lazyvec.WithCapacity(n))
	for i := 0; i < n; i++ {
		a.Write(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Read(i & (n - 1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetOrInsert(b *testing.B) {
	a := lazyvec.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.GetOrInsert(i&1023, i)
	}
}
