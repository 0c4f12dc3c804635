package evaluation

import (
	"context"
	"fmt"

	"knowingYou/domain"
	"knowingYou/pkg/logger"
	"knowingYou/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// InteractionRepository contract interface
type InteractionRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]domain.InteractionRecord, error)
}

// RecommendationRepository contract interface
type RecommendationRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]domain.RecommendationBatch, error)
}

type Service struct {
	interactionRepo    InteractionRepository
	recommendationRepo RecommendationRepository
	aggregator         Aggregator
	workers            int
	failFast           bool
}

func NewService(interactionRepo InteractionRepository, recommendationRepo RecommendationRepository, workers int, failFast bool) *Service {
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Service{
		interactionRepo:    interactionRepo,
		recommendationRepo: recommendationRepo,
		aggregator:         NewAggregator(),
		workers:            workers,
		failFast:           failFast,
	}
}

// Evaluate runs the aggregation pipeline for every requested user with
// bounded parallelism. The result slice is ordered exactly like userIDs
// regardless of completion order, and a user with no interactions still
// yields the zero summary. With failFast disabled (the default), a failed
// interaction fetch degrades that one user to the zero summary instead of
// failing the whole run.
func (s *Service) Evaluate(ctx context.Context, userIDs []string) ([]domain.EvaluationSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	results := make([]domain.EvaluationSummary, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, userID := range userIDs {
		g.Go(func() error {
			interactions, err := s.interactionRepo.GetByUserID(gctx, userID)
			if err != nil {
				if s.failFast {
					return fmt.Errorf("failed to fetch interactions for user %s: %w", userID, err)
				}

				logger.Error("Failed to fetch interactions, returning empty summary", "userId", userID, "error", err)
				interactions = nil
			}

			results[i] = s.aggregator.Aggregate(gctx, userID, interactions, s.recommendationRepo.GetByUserID)
			metrics.UsersEvaluated.Inc()
			metrics.WatchTimeSamples.Add(float64(len(results[i].WatchData)))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
