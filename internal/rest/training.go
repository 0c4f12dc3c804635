package rest

import (
	"context"
	"net/http"

	"knowingYou/domain"
	"knowingYou/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const invalidDataMessage = "Invalid data!"

type TrainingService interface {
	RecordInteraction(ctx context.Context, record domain.InteractionRecord) error
}

type TrainingHandler struct {
	validate        *validator.Validate
	trainingService TrainingService
}

func NewTrainingHandler(svc TrainingService) *TrainingHandler {
	return &TrainingHandler{
		validate:        validator.New(),
		trainingService: svc,
	}
}

type (
	VideoInteractionPayload struct {
		VideoID          string   `json:"videoId" validate:"required"`
		WatchTimeSeconds float64  `json:"watchTime"`
		DurationSeconds  *float64 `json:"duration"`
		WasRecommended   bool     `json:"wasRecommended"`
		HasLiked         bool     `json:"hasLiked"`
		HasDisliked      bool     `json:"hasDisliked"`
		HasSubscribed    bool     `json:"hasSubscribed"`
	}

	WhileWatchingPayload struct {
		HasLiked      bool `json:"hasLiked"`
		HasDisliked   bool `json:"hasDisliked"`
		HasSubscribed bool `json:"hasSubscribed"`
	}

	TrainRequest struct {
		UserID           string                   `json:"userId" validate:"required"`
		VideoInteraction *VideoInteractionPayload `json:"videoInteraction" validate:"required"`
		WhileWatching    *WhileWatchingPayload    `json:"whileWatching"`
	}
)

// TrainAgent ingests one watched-video report. Missing userId or
// videoInteraction is rejected with the flat message the extension expects.
func (h *TrainingHandler) TrainAgent(c echo.Context) error {
	var req TrainRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid train-agent body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: invalidDataMessage})
	}
	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate train-agent body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: invalidDataMessage})
	}

	record := domain.InteractionRecord{
		UserID:           req.UserID,
		VideoID:          req.VideoInteraction.VideoID,
		WatchTimeSeconds: req.VideoInteraction.WatchTimeSeconds,
		DurationSeconds:  req.VideoInteraction.DurationSeconds,
		WasRecommended:   req.VideoInteraction.WasRecommended,
		HasLiked:         req.VideoInteraction.HasLiked,
		HasDisliked:      req.VideoInteraction.HasDisliked,
		HasSubscribed:    req.VideoInteraction.HasSubscribed,
	}

	if req.WhileWatching != nil {
		record.WhileWatching = domain.WhileWatching{
			HasLiked:      req.WhileWatching.HasLiked,
			HasDisliked:   req.WhileWatching.HasDisliked,
			HasSubscribed: req.WhileWatching.HasSubscribed,
		}
	}

	if err := h.trainingService.RecordInteraction(c.Request().Context(), record); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("interaction recorded"))
}
