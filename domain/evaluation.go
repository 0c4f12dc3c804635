package domain

// WatchTimeSample pairs the watch time predicted from a candidate's story
// score with what the user actually watched. Field names are consumed by the
// dashboard RMSE table and must stay stable.
type WatchTimeSample struct {
	PredictedWatchTimeSeconds float64 `json:"predictedWatchTimeSeconds"`
	ActualWatchTimeSeconds    float64 `json:"actualWatchTimeSeconds"`
	VideoDuration             float64 `json:"videoDuration"`
}

// EvaluationSummary is the per-user aggregate produced by one evaluation run.
// Counters split views and during-viewing actions by whether the video came
// from a KnowingYou recommendation. Every field name is load-bearing for the
// dashboard charts and must stay stable.
type EvaluationSummary struct {
	UserID                    string            `json:"userId"`
	TotalVideosWatched        int               `json:"totalVideosWatched"`
	NonKyRecommendations      int               `json:"nonKyRecommendations"`
	KyRecommendations         int               `json:"kyRecommendations"`
	Likes                     int               `json:"likes"`
	LikesDuringViewing        int               `json:"likesDuringViewing"`
	Dislikes                  int               `json:"dislikes"`
	DislikesDuringViewing     int               `json:"dislikesDuringViewing"`
	Subscriptions             int               `json:"subscriptions"`
	SubscriptionDuringViewing int               `json:"subscriptionDuringViewing"`
	NonKyRecLikes             int               `json:"nonKyRecLikes"`
	KyRecLikes                int               `json:"kyRecLikes"`
	NonKyRecDislikes          int               `json:"nonKyRecDislikes"`
	KyRecDislikes             int               `json:"kyRecDislikes"`
	NonKyRecSubscriptions     int               `json:"nonKyRecSubscriptions"`
	KyRecSubscriptions        int               `json:"kyRecSubscriptions"`
	WatchData                 []WatchTimeSample `json:"watchData"`
}

// NewEvaluationSummary returns the zero summary for one user. WatchData is
// allocated so an untouched summary still marshals as an empty array.
func NewEvaluationSummary(userID string) EvaluationSummary {
	return EvaluationSummary{
		UserID:    userID,
		WatchData: []WatchTimeSample{},
	}
}
