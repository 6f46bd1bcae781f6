package common

import "testing"

func TestSeededRNG_Deterministic(t *testing.T) {
	a := NewSeededRNG(1234)
	b := NewSeededRNG(1234)
	for i := 0; i < 100; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d diverged: %f != %f", i, av, bv)
		}
	}
}

func TestSeededRNG_ResetRewinds(t *testing.T) {
	r := NewSeededRNG(42)
	first := r.Float64()
	r.Float64()
	r.Reset()
	if got := r.Float64(); got != first {
		t.Errorf("Expected %f after Reset, got %f", first, got)
	}
	if r.Seed() != 42 {
		t.Errorf("Expected seed 42, got %d", r.Seed())
	}
}

func TestSeededRNG_Bounds(t *testing.T) {
	r := NewSeededRNG(7)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %f", v)
		}
		if n := r.Intn(4); n < 0 || n > 3 {
			t.Fatalf("Intn(4) out of range: %d", n)
		}
		if f := r.Range(8, 13); f < 8 || f >= 13 {
			t.Fatalf("Range(8, 13) out of range: %f", f)
		}
	}
}
