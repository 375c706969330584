package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"MindEaseGo/config"
	"MindEaseGo/models"
	"MindEaseGo/utils"

	"github.com/go-redis/redis/v8"
)

const (
	ModeLive = "live"
	ModeMock = "mock"

	usageKeyTTL = 30 * 24 * time.Hour
)

// UsageTracker counts AI requests per user and day. Counters live in Redis,
// each request is also appended to the AI request log table.
type UsageTracker struct {
	redis *redis.Client
	logs  AIRequestLogStore
	now   func() time.Time
}

func NewUsageTracker(client *redis.Client, logs AIRequestLogStore) *UsageTracker {
	return &UsageTracker{redis: client, logs: logs, now: time.Now}
}

func usageKey(userID string, day time.Time) string {
	return fmt.Sprintf("ai_usage:%s:%s", userID, day.UTC().Format("2006-01-02"))
}

// Track never fails the caller.
func (t *UsageTracker) Track(ctx context.Context, userID string, promptType PromptType, mode string) {
	if t == nil {
		return
	}
	now := t.now()

	if t.redis != nil {
		key := usageKey(userID, now)
		pipe := t.redis.TxPipeline()
		pipe.HIncrBy(ctx, key, string(promptType), 1)
		pipe.Expire(ctx, key, usageKeyTTL)
		if _, err := pipe.Exec(ctx); err != nil {
			config.Logger.Warnw("更新AI调用计数失败", "error", err, "uid", userID, "promptType", promptType)
		}
	}

	if t.logs != nil {
		entry := &models.AIRequestLog{
			ID:         utils.GenerateID(),
			UserID:     userID,
			PromptType: string(promptType),
			Mode:       mode,
			Timestamp:  now,
		}
		if err := t.logs.CreateAIRequestLog(ctx, entry); err != nil {
			config.Logger.Warnw("写入AI调用日志失败", "error", err, "uid", userID, "promptType", promptType)
		}
	}
}

// Usage returns the per-prompt counters of userID for day.
func (t *UsageTracker) Usage(ctx context.Context, userID string, day time.Time) (map[string]int64, error) {
	usage := map[string]int64{}
	if t == nil || t.redis == nil {
		return usage, nil
	}

	values, err := t.redis.HGetAll(ctx, usageKey(userID, day)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("read usage counters: %w", err)
	}
	for promptType, raw := range values {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		usage[promptType] = n
	}
	return usage, nil
}
