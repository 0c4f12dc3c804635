package training

import (
	"context"
	"errors"
	"fmt"

	"knowingYou/domain"
	"knowingYou/pkg/logger"
)

// InteractionWriter contract interface
type InteractionWriter interface {
	Save(ctx context.Context, record *domain.InteractionRecord) error
}

type Service struct {
	interactionRepo InteractionWriter
}

func NewService(interactionRepo InteractionWriter) *Service {
	return &Service{
		interactionRepo: interactionRepo,
	}
}

// RecordInteraction persists one watched-video report from the extension.
// This is the ingest side of the evaluation pipeline; the agent itself trains
// elsewhere from the same records.
func (s *Service) RecordInteraction(ctx context.Context, record domain.InteractionRecord) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when recording interaction")
		return fmt.Errorf("context error: %w", err)
	}

	if record.UserID == "" || record.VideoID == "" {
		logger.Error("Invalid interaction: user id and video id are required")
		return errors.New("user id and video id are required")
	}

	if err := s.interactionRepo.Save(ctx, &record); err != nil {
		logger.Error("Failed to save interaction", err)
		return err
	}

	logger.Info("interaction recorded", "userId", record.UserID, "videoId", record.VideoID)

	return nil
}
