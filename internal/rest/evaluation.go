package rest

import (
	"context"
	"net/http"
	"time"

	"knowingYou/business/evaluation"
	"knowingYou/domain"
	"knowingYou/pkg/logger"
	"knowingYou/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type EvaluationService interface {
	Evaluate(ctx context.Context, userIDs []string) ([]domain.EvaluationSummary, error)
}

// ReportCache is an optional read-through cache over the full report.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]domain.EvaluationSummary, bool)
	Set(ctx context.Context, key string, summaries []domain.EvaluationSummary)
}

type EvaluationHandler struct {
	evaluationService EvaluationService
	cache             ReportCache
	cacheKey          func(userIDs []string) string
	userIDs           []string
}

// NewEvaluationHandler serves the dashboard. userIDs is the static list of
// users under evaluation, owned by configuration. cache may be nil.
func NewEvaluationHandler(svc EvaluationService, userIDs []string, cache ReportCache, cacheKey func([]string) string) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: svc,
		cache:             cache,
		cacheKey:          cacheKey,
		userIDs:           userIDs,
	}
}

// GetEvaluationData returns the bare summary array. The dashboard reads the
// summary fields by name, so the response is not wrapped in an envelope.
func (h *EvaluationHandler) GetEvaluationData(c echo.Context) error {
	summaries, err := h.evaluate(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, summaries)
}

// GetEvaluationCharts returns the pre-built chart series and RMSE table for
// consumers that do not want to derive them client-side.
func (h *EvaluationHandler) GetEvaluationCharts(c echo.Context) error {
	summaries, err := h.evaluate(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(evaluation.BuildReport(summaries)))
}

func (h *EvaluationHandler) evaluate(c echo.Context) ([]domain.EvaluationSummary, error) {
	start := time.Now()
	defer func() {
		metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
		metrics.EvaluationRequests.Inc()
	}()

	ctx := c.Request().Context()

	var key string
	if h.cache != nil {
		key = h.cacheKey(h.userIDs)
		if summaries, ok := h.cache.Get(ctx, key); ok {
			return summaries, nil
		}
	}

	summaries, err := h.evaluationService.Evaluate(ctx, h.userIDs)
	if err != nil {
		logger.Error("Failed to build evaluation report", err)
		return nil, err
	}

	if h.cache != nil {
		h.cache.Set(ctx, key, summaries)
	}

	return summaries, nil
}
