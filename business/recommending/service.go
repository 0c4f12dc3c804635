package recommending

import (
	"context"
	"fmt"

	"knowingYou/domain"
)

// BatchReader contract interface
type BatchReader interface {
	GetByUserID(ctx context.Context, userID string) ([]domain.RecommendationBatch, error)
}

type Service struct {
	batchRepo BatchReader
}

func NewService(batchRepo BatchReader) *Service {
	return &Service{batchRepo: batchRepo}
}

// GetRecommendations returns the batches previously produced for the user,
// oldest first. The scoring model behind them is opaque to this service.
func (s *Service) GetRecommendations(ctx context.Context, userID string) ([]domain.RecommendationBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	batches, err := s.batchRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return batches, nil
}
