package rest

import (
	"context"
	"net/http"

	"knowingYou/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommendingService interface {
	GetRecommendations(ctx context.Context, userID string) ([]domain.RecommendationBatch, error)
}

type RecommendationHandler struct {
	validate            *validator.Validate
	recommendingService RecommendingService
}

func NewRecommendationHandler(svc RecommendingService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:            validator.New(),
		recommendingService: svc,
	}
}

type RecommendationQuery struct {
	UserID string `query:"userId" validate:"required"`
}

func (h *RecommendationHandler) Get(c echo.Context) error {
	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: invalidDataMessage})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: invalidDataMessage})
	}

	batches, err := h.recommendingService.GetRecommendations(c.Request().Context(), q.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(batches))
}
