package report

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeErrorStats(t *testing.T) {
	errs := []float64{0.3, 0.1, 0.9, 0.2, 0.5}
	args := []float64{10, 20, 30, 40, 50}
	s := ComputeErrorStats(errs, args)

	if math.Abs(s.Mean-0.4) > 1e-12 {
		t.Errorf("mean = %v, want 0.4", s.Mean)
	}
	if s.P50 != 0.3 {
		t.Errorf("p50 = %v, want 0.3", s.P50)
	}
	if s.Max != 0.9 || s.MaxAt != 30 {
		t.Errorf("max = %v at %v, want 0.9 at 30", s.Max, s.MaxAt)
	}
	if errs[0] != 0.3 || errs[2] != 0.9 {
		t.Error("input slice was reordered")
	}
}

func TestComputeErrorStatsEmpty(t *testing.T) {
	if s := ComputeErrorStats(nil, nil); s != (ErrorStats{}) {
		t.Errorf("empty input = %+v, want zero value", s)
	}
}
