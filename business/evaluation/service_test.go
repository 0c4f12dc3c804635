package evaluation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"knowingYou/domain"
)

type fakeInteractionRepo struct {
	mu      sync.Mutex
	byUser  map[string][]domain.InteractionRecord
	failFor map[string]bool
	calls   map[string]int
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{
		byUser:  make(map[string][]domain.InteractionRecord),
		failFor: make(map[string]bool),
		calls:   make(map[string]int),
	}
}

func (r *fakeInteractionRepo) GetByUserID(_ context.Context, userID string) ([]domain.InteractionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls[userID]++
	if r.failFor[userID] {
		return nil, errors.New("interactions unavailable")
	}

	return r.byUser[userID], nil
}

type fakeRecommendationRepo struct {
	mu     sync.Mutex
	byUser map[string][]domain.RecommendationBatch
	calls  map[string]int
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{
		byUser: make(map[string][]domain.RecommendationBatch),
		calls:  make(map[string]int),
	}
}

func (r *fakeRecommendationRepo) GetByUserID(_ context.Context, userID string) ([]domain.RecommendationBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls[userID]++
	return r.byUser[userID], nil
}

func TestEvaluateEmptyUserList(t *testing.T) {
	svc := NewService(newFakeInteractionRepo(), newFakeRecommendationRepo(), 4, false)

	summaries, err := svc.Evaluate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Evaluate(nil) returned error: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("expected empty result, got %d summaries", len(summaries))
	}
}

func TestEvaluateUserWithoutInteractions(t *testing.T) {
	svc := NewService(newFakeInteractionRepo(), newFakeRecommendationRepo(), 4, false)

	summaries, err := svc.Evaluate(context.Background(), []string{"u1"})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one summary, got %d", len(summaries))
	}

	s := summaries[0]
	if s.UserID != "u1" || s.TotalVideosWatched != 0 || len(s.WatchData) != 0 {
		t.Errorf("user without interactions must still yield the zero summary: %+v", s)
	}
}

func TestEvaluatePreservesInputOrder(t *testing.T) {
	interactionRepo := newFakeInteractionRepo()
	userIDs := []string{"u7", "u3", "u9", "u1", "u5", "u2", "u8", "u4", "u6"}
	for n, id := range userIDs {
		records := make([]domain.InteractionRecord, n)
		for i := range records {
			records[i] = domain.InteractionRecord{VideoID: "v"}
		}
		interactionRepo.byUser[id] = records
	}

	svc := NewService(interactionRepo, newFakeRecommendationRepo(), 3, false)

	summaries, err := svc.Evaluate(context.Background(), userIDs)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	for i, id := range userIDs {
		if summaries[i].UserID != id {
			t.Fatalf("result %d is for %q, want %q", i, summaries[i].UserID, id)
		}
		if summaries[i].TotalVideosWatched != i {
			t.Errorf("result %d has %d videos, want %d", i, summaries[i].TotalVideosWatched, i)
		}
	}
}

func TestEvaluatePartialFailureIsolation(t *testing.T) {
	interactionRepo := newFakeInteractionRepo()
	interactionRepo.byUser["ok"] = []domain.InteractionRecord{{VideoID: "v1"}}
	interactionRepo.failFor["broken"] = true

	svc := NewService(interactionRepo, newFakeRecommendationRepo(), 2, false)

	summaries, err := svc.Evaluate(context.Background(), []string{"broken", "ok"})
	if err != nil {
		t.Fatalf("partial mode must not fail the run: %v", err)
	}

	if summaries[0].UserID != "broken" || summaries[0].TotalVideosWatched != 0 {
		t.Errorf("failed user must degrade to the zero summary: %+v", summaries[0])
	}
	if summaries[1].TotalVideosWatched != 1 {
		t.Errorf("healthy user must be unaffected: %+v", summaries[1])
	}
}

func TestEvaluateFailFast(t *testing.T) {
	interactionRepo := newFakeInteractionRepo()
	interactionRepo.failFor["broken"] = true

	svc := NewService(interactionRepo, newFakeRecommendationRepo(), 2, true)

	if _, err := svc.Evaluate(context.Background(), []string{"broken", "ok"}); err == nil {
		t.Fatal("fail-fast mode must surface the fetch error")
	}
}

func TestEvaluateBatchFetchOncePerUser(t *testing.T) {
	interactionRepo := newFakeInteractionRepo()
	recommendationRepo := newFakeRecommendationRepo()

	interactionRepo.byUser["u1"] = []domain.InteractionRecord{
		{VideoID: "v1", WasRecommended: true, DurationSeconds: ptr(100)},
		{VideoID: "v2", WasRecommended: true, DurationSeconds: ptr(100)},
		{VideoID: "v3", WasRecommended: true, DurationSeconds: ptr(100)},
	}

	svc := NewService(interactionRepo, recommendationRepo, 1, false)

	if _, err := svc.Evaluate(context.Background(), []string{"u1"}); err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	if recommendationRepo.calls["u1"] != 1 {
		t.Errorf("batches fetched %d times for u1, want 1", recommendationRepo.calls["u1"])
	}

	// a second run starts cold
	if _, err := svc.Evaluate(context.Background(), []string{"u1"}); err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if recommendationRepo.calls["u1"] != 2 {
		t.Errorf("each run must fetch again, got %d total calls", recommendationRepo.calls["u1"])
	}
}
