package evaluation

import (
	"math"
	"testing"
)

func TestPredictBucketBoundaries(t *testing.T) {
	var p WatchTimePredictor

	cases := []struct {
		score    float64
		duration float64
		want     float64
	}{
		{100, 100, 95},
		{92, 100, 95},
		{90, 100, 95}, // boundary belongs to the higher bucket
		{89.999, 100, 82.5},
		{75, 100, 82.5},
		{74.999, 100, 62.5},
		{50, 100, 62.5},
		{49.999, 100, 37.5},
		{25, 100, 37.5},
		{24.999, 100, 12.5},
		{0, 100, 12.5},
	}

	for _, tc := range cases {
		got := p.Predict(tc.score, tc.duration)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Predict(%v, %v) = %v, want %v", tc.score, tc.duration, got, tc.want)
		}
	}
}

func TestPredictMonotoneInScore(t *testing.T) {
	var p WatchTimePredictor

	prev := -1.0
	for score := 0.0; score < 100; score += 0.5 {
		got := p.Predict(score, 200)
		if got < prev {
			t.Fatalf("Predict not non-decreasing: score=%v got=%v prev=%v", score, got, prev)
		}
		prev = got
	}
}

func TestPredictLinearInDuration(t *testing.T) {
	var p WatchTimePredictor

	for _, score := range []float64{0, 13, 25, 42, 50, 60, 75, 88, 90, 100} {
		unit := p.Predict(score, 1)
		for _, duration := range []float64{0, 30, 600, 7200} {
			got := p.Predict(score, duration)
			if math.Abs(got-unit*duration) > 1e-9 {
				t.Errorf("Predict(%v, %v) = %v, want %v", score, duration, got, unit*duration)
			}
		}
	}
}
