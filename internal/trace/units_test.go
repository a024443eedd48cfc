package trace

import "testing"

func TestUnitScale(t *testing.T) {
	tests := []struct {
		header string
		want   float64
	}{
		{"Task Duration(us)", 1e-3},
		{"Task Duration(ns)", 1e-6},
		{"aicore_time(ms)", 1.0},
		{"Total Time(s)", 1000.0},
		{"exec sec", 1000.0},
		{"Duration μs", 1e-3},
		{"Duration µs", 1e-3},
		{"Avg Time ns", 1e-6},
		{"Duration", 1.0},
		{"Name", 1.0},
		{"", 1.0},
	}
	for _, tc := range tests {
		if got := UnitScale(tc.header); got != tc.want {
			t.Errorf("UnitScale(%q)=%v, want %v", tc.header, got, tc.want)
		}
	}
}

func TestUnitScale_Total(t *testing.T) {
	allowed := map[float64]bool{1e-6: true, 1e-3: true, 1.0: true, 1000.0: true}
	for _, h := range []string{"x", "(S)", "TIME(US)", "weird (sec)", "ms", "??"} {
		got := UnitScale(h)
		if !allowed[got] {
			t.Fatalf("UnitScale(%q)=%v is not a known factor", h, got)
		}
		if again := UnitScale(h); again != got {
			t.Fatalf("UnitScale(%q) not deterministic: %v then %v", h, got, again)
		}
	}
}
