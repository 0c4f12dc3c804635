package evaluation

import (
	"math"

	"knowingYou/domain"
)

// RMSEResult carries a computed score together with whether there was
// anything to compute. A user with no watch-time samples has no score, which
// is not the same thing as a perfect score of zero.
type RMSEResult struct {
	Value      float64 `json:"value"`
	Calculated bool    `json:"calculated"`
	SampleSize int     `json:"sampleSize,omitempty"`
}

// RMSE reduces a user's predicted/actual watch-time pairs to a single
// population root-mean-squared error in seconds, rounded to two decimals for
// presentation. Sample order does not matter.
func RMSE(samples []domain.WatchTimeSample) RMSEResult {
	if len(samples) == 0 {
		return RMSEResult{}
	}

	var sumSquared float64
	for _, sample := range samples {
		diff := sample.ActualWatchTimeSeconds - sample.PredictedWatchTimeSeconds
		sumSquared += diff * diff
	}

	meanSquared := sumSquared / float64(len(samples))

	return RMSEResult{
		Value:      math.Round(math.Sqrt(meanSquared)*100) / 100,
		Calculated: true,
		SampleSize: len(samples),
	}
}
