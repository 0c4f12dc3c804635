package postgres

import (
	"context"
	"fmt"

	"knowingYou/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{
		DB: db,
	}
}

// GetByUserID returns the user's watched-video records in the order they were
// reported. Records are normalized on the way out so the aggregation logic
// never sees a shape the producer should not have sent.
func (r *InteractionRepository) GetByUserID(ctx context.Context, userID string) ([]domain.InteractionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.InteractionRecord
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}

	for i := range records {
		normalizeInteraction(&records[i])
	}

	return records, nil
}

func (r *InteractionRepository) Save(ctx context.Context, record *domain.InteractionRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	normalizeInteraction(record)

	if err := r.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}

	return nil
}

// normalizeInteraction enforces the record shape at the storage boundary:
// watch time is non-negative, a non-positive duration means "unknown", and a
// during-viewing flag cannot outlive its overall flag.
func normalizeInteraction(record *domain.InteractionRecord) {
	if record.WatchTimeSeconds < 0 {
		record.WatchTimeSeconds = 0
	}

	if record.DurationSeconds != nil && *record.DurationSeconds <= 0 {
		record.DurationSeconds = nil
	}

	record.WhileWatching.HasLiked = record.WhileWatching.HasLiked && record.HasLiked
	record.WhileWatching.HasDisliked = record.WhileWatching.HasDisliked && record.HasDisliked
	record.WhileWatching.HasSubscribed = record.WhileWatching.HasSubscribed && record.HasSubscribed
}
