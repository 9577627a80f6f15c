package scopedtls_test

import (
	"testing"

	"github.com/baxromumarov/scopedtls"
)

func BenchmarkSet(b *testing.B) {
	s := scopedtls.New[int]("bench")
	body := func() {}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Set(1, body)
	}
}

func BenchmarkWith(b *testing.B) {
	s := scopedtls.New[int]("bench")

	s.Set(0, func() {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s.Do(func(v *int) { *v++ })
		}
	})
}

func BenchmarkIsSet(b *testing.B) {
	s := scopedtls.New[int]("bench")

	s.Set(0, func() {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = s.IsSet()
		}
	})
}

func BenchmarkSetParallel(b *testing.B) {
	s := scopedtls.New[int]("bench")

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Set(1, func() {
				s.Do(func(v *int) { *v++ })
			})
		}
	})
}
