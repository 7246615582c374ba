package cache

import "testing"

func BenchmarkLRUGetHit(b *testing.B) {
	c := New[int, int](256)
	for i := 0; i < 256; i++ {
		c.Set(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i & 255)
	}
}

func BenchmarkLRUSetEvict(b *testing.B) {
	c := New[int, int](256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(i, i)
	}
}
