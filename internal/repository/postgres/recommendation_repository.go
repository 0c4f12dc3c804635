package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"knowingYou/business/evaluation"
	"knowingYou/domain"
	"knowingYou/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{
		DB: db,
	}
}

// GetByUserID returns the user's recommendation batches in creation order,
// with the JSONB candidate payload decoded and each candidate's story token
// reduced to a clamped score percentage. Candidates whose token cannot be
// parsed are dropped here so downstream joins only see scorable entries.
func (r *RecommendationRepository) GetByUserID(ctx context.Context, userID string) ([]domain.RecommendationBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var batches []domain.RecommendationBatch
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&batches).Error; err != nil {
		return nil, fmt.Errorf("failed to query recommendation_batches: %w", err)
	}

	for i := range batches {
		if err := decodeBatch(&batches[i]); err != nil {
			return nil, err
		}
	}

	return batches, nil
}

func (r *RecommendationRepository) Save(ctx context.Context, batch *domain.RecommendationBatch) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}

	payload, err := json.Marshal(batch.ToRecommend)
	if err != nil {
		return fmt.Errorf("failed to encode candidates: %w", err)
	}
	batch.Payload = datatypes.JSON(payload)

	if err := r.DB.WithContext(ctx).Create(batch).Error; err != nil {
		return fmt.Errorf("failed to save recommendation batch: %w", err)
	}

	return nil
}

func decodeBatch(batch *domain.RecommendationBatch) error {
	var candidates []domain.Candidate
	if err := json.Unmarshal(batch.Payload, &candidates); err != nil {
		return fmt.Errorf("failed to decode candidates for batch %s: %w", batch.ID, err)
	}

	batch.ToRecommend = candidates[:0]
	for _, candidate := range candidates {
		percent, err := evaluation.ScorePercentage(candidate.Story)
		if err != nil {
			logger.Warn("Dropping candidate with unparsable story token", "batchId", batch.ID, "videoId", candidate.VideoID, "error", err)
			continue
		}

		candidate.ScorePercent = evaluation.ClampPercentage(percent)
		batch.ToRecommend = append(batch.ToRecommend, candidate)
	}

	return nil
}
