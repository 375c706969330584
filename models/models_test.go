package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampScore(t *testing.T) {
	assert.Equal(t, 1, ClampScore(-4))
	assert.Equal(t, 1, ClampScore(0))
	assert.Equal(t, 6, ClampScore(6))
	assert.Equal(t, 10, ClampScore(42))
}

func TestChatTurn_NormalizedRole(t *testing.T) {
	assert.Equal(t, RoleAssistant, ChatTurn{Role: "assistant"}.NormalizedRole())
	assert.Equal(t, RoleSystem, ChatTurn{Role: "system"}.NormalizedRole())
	assert.Equal(t, RoleUser, ChatTurn{Role: "model"}.NormalizedRole())
	assert.Equal(t, RoleUser, ChatTurn{}.NormalizedRole())
}

func TestERPTask_ToggleCompletion(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	task := ERPTask{}

	task.ToggleCompletion(now)
	assert.True(t, task.IsCompleted)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, now, *task.CompletedAt)

	task.ToggleCompletion(now.Add(time.Hour))
	assert.False(t, task.IsCompleted)
	assert.Nil(t, task.CompletedAt)
}

func TestMoodLogQuery_Validate(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.FixedZone("CST", 8*3600))

	t.Run("defaults to last 30 days", func(t *testing.T) {
		var q MoodLogQuery
		require.NoError(t, q.Validate(now))
		assert.Equal(t, now.UTC(), q.To)
		assert.Equal(t, now.AddDate(0, 0, -30).UTC(), q.From)
		assert.Equal(t, time.UTC, q.From.Location())
	})

	t.Run("from after to", func(t *testing.T) {
		q := MoodLogQuery{From: now, To: now.Add(-time.Hour)}
		assert.Error(t, q.Validate(now))
	})
}

func TestChatTurn_UnmarshalClientShape(t *testing.T) {
	var turns []ChatTurn
	body := `[
		{"role":"assistant","content":"How are you?"},
		{"sender":"user","text":"Not great"},
		{"sender":"ai","text":"I'm here"}
	]`
	require.NoError(t, json.Unmarshal([]byte(body), &turns))

	assert.Equal(t, []ChatTurn{
		{Role: RoleAssistant, Content: "How are you?"},
		{Role: RoleUser, Content: "Not great"},
		{Role: RoleAssistant, Content: "I'm here"},
	}, turns)
}
