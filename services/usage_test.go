package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageKey(t *testing.T) {
	day := time.Date(2024, 5, 2, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, "ai_usage:u1:2024-05-03", usageKey("u1", day))
}

func TestUsageTracker_WithoutRedis(t *testing.T) {
	store := &memStore{}
	tracker := NewUsageTracker(nil, store)

	tracker.Track(context.Background(), "u1", ERPPrompt, ModeLive)
	require.Len(t, store.requests, 1)
	assert.Equal(t, "generate-erp", store.requests[0].PromptType)
	assert.Equal(t, ModeLive, store.requests[0].Mode)

	usage, err := tracker.Usage(context.Background(), "u1", time.Now())
	require.NoError(t, err)
	assert.Empty(t, usage)
}

func TestUsageTracker_NilIsNoop(t *testing.T) {
	var tracker *UsageTracker
	assert.NotPanics(t, func() {
		tracker.Track(context.Background(), "u1", CompanionPrompt, ModeMock)
	})
	usage, err := tracker.Usage(context.Background(), "u1", time.Now())
	require.NoError(t, err)
	assert.Empty(t, usage)
}

func TestUsageTracker_LogFailureIsSwallowed(t *testing.T) {
	tracker := NewUsageTracker(nil, &memStore{fail: true})
	assert.NotPanics(t, func() {
		tracker.Track(context.Background(), "u1", CBTPrompt, ModeMock)
	})
}
