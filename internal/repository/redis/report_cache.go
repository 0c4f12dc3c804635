package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"knowingYou/domain"
	"knowingYou/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ReportCache holds fully rendered evaluation reports for a short TTL, keyed
// by the requested user list. It deliberately never caches per-user
// recommendation batches: the batch cache lives inside a single aggregation
// call and must start cold on every run.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

// Key derives the cache key for one user list. Order matters: the report is
// order-stable over its input.
func Key(userIDs []string) string {
	sum := sha256.Sum256([]byte(strings.Join(userIDs, ",")))
	return fmt.Sprintf("evaluation:report:%s", hex.EncodeToString(sum[:8]))
}

func (c *ReportCache) Get(ctx context.Context, key string) ([]domain.EvaluationSummary, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Failed to read report cache", "key", key, "error", err)
		}
		return nil, false
	}

	var summaries []domain.EvaluationSummary
	if err := json.Unmarshal([]byte(val), &summaries); err != nil {
		logger.Warn("Failed to decode cached report", "key", key, "error", err)
		return nil, false
	}

	return summaries, true
}

func (c *ReportCache) Set(ctx context.Context, key string, summaries []domain.EvaluationSummary) {
	payload, err := json.Marshal(summaries)
	if err != nil {
		logger.Warn("Failed to encode report for cache", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("Failed to write report cache", "key", key, "error", err)
	}
}
