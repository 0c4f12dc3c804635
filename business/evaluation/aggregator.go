package evaluation

import (
	"context"

	"knowingYou/domain"
	"knowingYou/pkg/logger"
)

// BatchFetcher supplies a user's recommendation batches in fetch order.
type BatchFetcher func(ctx context.Context, userID string) ([]domain.RecommendationBatch, error)

// Aggregator folds one user's interaction records into an EvaluationSummary.
type Aggregator struct {
	predictor WatchTimePredictor
}

func NewAggregator() Aggregator {
	return Aggregator{predictor: WatchTimePredictor{}}
}

// Aggregate walks the interaction records once and produces the summary.
// Recommendation batches are fetched lazily, at most once per call, the first
// time a recommended video is seen; the cache lives and dies with this call.
// A failed batch fetch, a missing duration or an unmatched video id only
// suppress the watch-time sample, never the counters.
func (a Aggregator) Aggregate(ctx context.Context, userID string, interactions []domain.InteractionRecord, fetch BatchFetcher) domain.EvaluationSummary {
	summary := domain.NewEvaluationSummary(userID)

	var (
		batches []domain.RecommendationBatch
		fetched bool
	)

	for _, item := range interactions {
		summary.TotalVideosWatched++

		if item.WasRecommended {
			summary.KyRecommendations++

			if !fetched {
				fetched = true

				var err error
				batches, err = fetch(ctx, userID)
				if err != nil {
					logger.Error("Failed to fetch recommendation batches", "userId", userID, "error", err)
					batches = nil
				}
			}

			if item.DurationSeconds != nil {
				if sample, ok := a.watchTimeSample(item, batches); ok {
					summary.WatchData = append(summary.WatchData, sample)
				}
			}
		} else {
			summary.NonKyRecommendations++
		}

		if item.HasLiked {
			summary.Likes++
			if item.WhileWatching.HasLiked {
				summary.LikesDuringViewing++
				if item.WasRecommended {
					summary.KyRecLikes++
				} else {
					summary.NonKyRecLikes++
				}
			}
		} else if item.HasDisliked {
			summary.Dislikes++
			if item.WhileWatching.HasDisliked {
				summary.DislikesDuringViewing++
				if item.WasRecommended {
					summary.KyRecDislikes++
				} else {
					summary.NonKyRecDislikes++
				}
			}
		}

		if item.HasSubscribed {
			summary.Subscriptions++
			if item.WhileWatching.HasSubscribed {
				summary.SubscriptionDuringViewing++
				if item.WasRecommended {
					summary.KyRecSubscriptions++
				} else {
					summary.NonKyRecSubscriptions++
				}
			}
		}
	}

	return summary
}

// watchTimeSample joins one recommended video against the fetched batches.
// The first candidate with a matching video id wins, in batch fetch order.
func (a Aggregator) watchTimeSample(item domain.InteractionRecord, batches []domain.RecommendationBatch) (domain.WatchTimeSample, bool) {
	for _, batch := range batches {
		for _, candidate := range batch.ToRecommend {
			if candidate.VideoID != item.VideoID {
				continue
			}

			duration := *item.DurationSeconds

			return domain.WatchTimeSample{
				PredictedWatchTimeSeconds: a.predictor.Predict(candidate.ScorePercent, duration),
				ActualWatchTimeSeconds:    item.WatchTimeSeconds,
				VideoDuration:             duration,
			}, true
		}
	}

	return domain.WatchTimeSample{}, false
}
