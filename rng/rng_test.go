package rng

import (
	"math"
	"testing"
)

func TestFloat64Range(t *testing.T) {
	r := New(42)
	for i := 0; i < 10_000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}

func TestNormFloat64Moments(t *testing.T) {
	r := New(42)
	const n = 200_000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := r.NormFloat64()
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	// standard error of the mean is 1/sqrt(n) ~ 0.0022
	if math.Abs(mean) > 0.02 {
		t.Errorf("empirical mean %v too far from 0", mean)
	}
	if math.Abs(variance-1) > 0.02 {
		t.Errorf("empirical variance %v too far from 1", variance)
	}
}

func TestDeterministicSeed(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 100; i++ {
		if a.NormFloat64() != b.NormFloat64() {
			t.Fatal("same seed should produce the same stream")
		}
	}
}
