package router

import (
	"knowingYou/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetEvaluationRoutes(e *echo.Echo, handler *rest.EvaluationHandler) {
	e.GET("/evaluation-data", handler.GetEvaluationData)
	e.GET("/evaluation-data/charts", handler.GetEvaluationCharts)
}

func SetTrainingRoutes(e *echo.Echo, handler *rest.TrainingHandler, authRequired echo.MiddlewareFunc) {
	e.POST("/train-agent", handler.TrainAgent, authRequired)
}

func SetRecommendationRoutes(e *echo.Echo, handler *rest.RecommendationHandler) {
	e.GET("/recommendations", handler.Get)
}
