package harness

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	vals := []float64{30, 10, 20}
	if got := quantile(vals, 0.5); got != 20 {
		t.Fatalf("p50=%v", got)
	}
	if got := quantile(vals, 0.9); math.Abs(got-28) > 1e-9 {
		t.Fatalf("p90=%v, want 28", got)
	}
	if vals[0] != 30 {
		t.Fatal("quantile must not reorder its input")
	}
}

func TestQuantile_SingleSample(t *testing.T) {
	for _, q := range []float64{0, 0.5, 0.9, 1} {
		if got := quantile([]float64{4.2}, q); got != 4.2 {
			t.Fatalf("q=%v got %v", q, got)
		}
	}
}

func TestQuantile_IntegralIndex(t *testing.T) {
	// n=11 puts p90 exactly on index 9.
	vals := make([]float64, 11)
	for i := range vals {
		vals[i] = float64(i * 10)
	}
	if got := quantile(vals, 0.9); got != 90 {
		t.Fatalf("p90=%v", got)
	}
	if got := quantile(vals, 0.5); got != 50 {
		t.Fatalf("p50=%v", got)
	}
}

func TestSpread(t *testing.T) {
	std, lo, hi := spread([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if lo != 2 || hi != 9 {
		t.Fatalf("bounds=%v,%v", lo, hi)
	}
	if math.Abs(std-2.138089935) > 1e-6 {
		t.Fatalf("std=%v", std)
	}
	if std, _, _ := spread([]float64{3}); std != 0 {
		t.Fatalf("single sample std=%v", std)
	}
}
