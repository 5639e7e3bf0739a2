package lexorank

import "testing"

func BenchmarkBefore(b *testing.B) {
	s := figmaStrategy{}
	for i := 0; i < b.N; i++ {
		s.Before("AA")
	}
}

func BenchmarkAfter(b *testing.B) {
	s := figmaStrategy{}
	for i := 0; i < b.N; i++ {
		s.After("AA")
	}
}

func BenchmarkBetween(b *testing.B) {
	s := figmaStrategy{}
	for i := 0; i < b.N; i++ {
		s.Between("AA", "AB")
	}
}

func BenchmarkNBetween(b *testing.B) {
	lr := Default()
	for i := 0; i < b.N; i++ {
		if _, err := lr.NBetween("A", "z", 100); err != nil {
			b.Fatal(err)
		}
	}
}
