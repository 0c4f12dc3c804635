package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"knowingYou/domain"

	"github.com/labstack/echo/v4"
)

type fakeEvaluationService struct {
	summaries []domain.EvaluationSummary
	err       error
	gotUsers  []string
}

func (f *fakeEvaluationService) Evaluate(_ context.Context, userIDs []string) ([]domain.EvaluationSummary, error) {
	f.gotUsers = userIDs
	return f.summaries, f.err
}

func TestGetEvaluationDataReturnsBareArray(t *testing.T) {
	svc := &fakeEvaluationService{
		summaries: []domain.EvaluationSummary{
			func() domain.EvaluationSummary {
				s := domain.NewEvaluationSummary("u1")
				s.TotalVideosWatched = 2
				s.KyRecommendations = 1
				s.NonKyRecommendations = 1
				return s
			}(),
		},
	}
	handler := NewEvaluationHandler(svc, []string{"u1"}, nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/evaluation-data", nil)
	rec := httptest.NewRecorder()

	if err := handler.GetEvaluationData(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not a bare JSON array: %v", err)
	}
	if len(payload) != 1 {
		t.Fatalf("expected one summary, got %d", len(payload))
	}

	// spot-check the load-bearing field names
	for _, field := range []string{
		"userId", "totalVideosWatched", "kyRecommendations", "nonKyRecommendations",
		"likes", "likesDuringViewing", "kyRecLikes", "nonKyRecLikes",
		"subscriptions", "subscriptionDuringViewing", "watchData",
	} {
		if _, ok := payload[0][field]; !ok {
			t.Errorf("summary is missing field %q", field)
		}
	}

	if watchData, ok := payload[0]["watchData"].([]any); !ok || watchData == nil {
		t.Errorf("watchData must marshal as an array, got %T", payload[0]["watchData"])
	}

	if len(svc.gotUsers) != 1 || svc.gotUsers[0] != "u1" {
		t.Errorf("handler must evaluate the configured user list, got %v", svc.gotUsers)
	}
}

type fakeReportCache struct {
	stored map[string][]domain.EvaluationSummary
	hits   int
	misses int
}

func (c *fakeReportCache) Get(_ context.Context, key string) ([]domain.EvaluationSummary, bool) {
	if summaries, ok := c.stored[key]; ok {
		c.hits++
		return summaries, true
	}
	c.misses++
	return nil, false
}

func (c *fakeReportCache) Set(_ context.Context, key string, summaries []domain.EvaluationSummary) {
	c.stored[key] = summaries
}

func TestGetEvaluationDataUsesReportCache(t *testing.T) {
	svc := &fakeEvaluationService{summaries: []domain.EvaluationSummary{domain.NewEvaluationSummary("u1")}}
	cache := &fakeReportCache{stored: make(map[string][]domain.EvaluationSummary)}
	handler := NewEvaluationHandler(svc, []string{"u1"}, cache, func(ids []string) string { return "key" })

	e := echo.New()
	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/evaluation-data", nil)
		rec := httptest.NewRecorder()
		if err := handler.GetEvaluationData(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
	}

	if cache.misses != 1 || cache.hits != 1 {
		t.Errorf("expected one miss then one hit, got misses=%d hits=%d", cache.misses, cache.hits)
	}
}

func TestGetEvaluationChartsEnvelope(t *testing.T) {
	svc := &fakeEvaluationService{summaries: []domain.EvaluationSummary{domain.NewEvaluationSummary("u1")}}
	handler := NewEvaluationHandler(svc, []string{"u1"}, nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/evaluation-data/charts", nil)
	rec := httptest.NewRecorder()

	if err := handler.GetEvaluationCharts(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode charts response: %v", err)
	}
}
