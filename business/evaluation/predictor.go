package evaluation

// watchTimeBuckets maps a story-score percentage onto the midpoint of its
// range, expressed as a fraction of the video duration. Buckets are half-open
// with the boundary belonging to the higher bucket.
var watchTimeBuckets = []struct {
	floor    float64
	fraction float64
}{
	{90, 0.95},
	{75, 0.825},
	{50, 0.625},
	{25, 0.375},
	{0, 0.125},
}

// WatchTimePredictor turns a candidate's story-score percentage into a
// predicted watch time. It is a coarse monotone step function, no
// interpolation.
type WatchTimePredictor struct{}

// Predict returns the predicted watch time in seconds. scorePercent must
// already be a percentage in [0,100]; callers own that guarantee.
func (WatchTimePredictor) Predict(scorePercent, durationSeconds float64) float64 {
	for _, b := range watchTimeBuckets {
		if scorePercent >= b.floor {
			return b.fraction * durationSeconds
		}
	}

	return watchTimeBuckets[len(watchTimeBuckets)-1].fraction * durationSeconds
}
