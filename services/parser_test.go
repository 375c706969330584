package services

import (
	"errors"
	"testing"

	"MindEaseGo/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"chatter", "Sure! Here it is: {\"a\":1} Hope that helps.", `{"a":1}`},
		{"no json", "nothing here", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.raw))
		})
	}
}

func TestParseCheckIn(t *testing.T) {
	t.Run("normalizes analysis", func(t *testing.T) {
		raw := "```json\n{\"reply\":\"I hear you\",\"analysis\":{\"moodLabel\":\" Sad \",\"anxietyScore\":14,\"note\":\"\",\"sleepHours\":0}}\n```"
		reply, analysis, err := ParseCheckIn(raw, "rough day")
		require.NoError(t, err)
		assert.Equal(t, "I hear you", reply)
		require.NotNil(t, analysis)
		assert.Equal(t, "Sad", analysis.MoodLabel)
		assert.Equal(t, 10, analysis.AnxietyScore)
		assert.Equal(t, "rough day", analysis.Note)
		assert.Nil(t, analysis.SleepHours)
	})

	t.Run("keeps sleep hours", func(t *testing.T) {
		_, analysis, err := ParseCheckIn(`{"reply":"ok","analysis":{"moodLabel":"Happy","anxietyScore":2,"note":"n","sleepHours":8}}`, "m")
		require.NoError(t, err)
		require.NotNil(t, analysis.SleepHours)
		assert.Equal(t, 8.0, *analysis.SleepHours)
	})

	t.Run("no analysis", func(t *testing.T) {
		reply, analysis, err := ParseCheckIn(`{"reply":"Tell me more"}`, "m")
		require.NoError(t, err)
		assert.Equal(t, "Tell me more", reply)
		assert.Nil(t, analysis)
	})

	t.Run("analysis without label is dropped", func(t *testing.T) {
		_, analysis, err := ParseCheckIn(`{"reply":"ok","analysis":{"anxietyScore":4}}`, "m")
		require.NoError(t, err)
		assert.Nil(t, analysis)
	})

	for name, raw := range map[string]string{
		"empty reply": `{"reply":"  "}`,
		"not json":    "I am not JSON",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := ParseCheckIn(raw, "m")
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.Equal(t, "check-in", parseErr.Kind)
		})
	}
}

func TestParseHierarchy(t *testing.T) {
	want := []models.ExposureStep{
		{Title: "Look", Difficulty: 2, Description: "a"},
		{Title: "Write", Difficulty: 3, Description: "b"},
		{Title: "Imagine", Difficulty: 5, Description: "c"},
		{Title: "Touch", Difficulty: 1, Description: "d"},
		{Title: "Face", Difficulty: 10, Description: "e"},
	}
	const five = `{"title":"Look","difficulty":2,"description":"a"},` +
		`{"title":"Write","difficulty":3,"description":"b"},` +
		`{"title":"Imagine","difficulty":5,"description":"c"},` +
		`{"title":"Touch","difficulty":0,"description":"d"},` +
		`{"title":"Face","difficulty":12,"description":"e"}`

	for name, raw := range map[string]string{
		"array":           `[` + five + `]`,
		"hierarchy":       `{"hierarchy":[{"title":" ","difficulty":5},` + five + `]}`,
		"steps":           "```json\n{\"steps\":[" + five + "]}\n```",
		"extra steps cut": `[` + five + `,{"title":"Sixth","difficulty":10,"description":"f"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			steps, err := ParseHierarchy(raw)
			require.NoError(t, err)
			if diff := cmp.Diff(want, steps); diff != "" {
				t.Errorf("steps mismatch (-want +got):\n%s", diff)
			}
		})
	}

	for name, raw := range map[string]string{
		"empty":                 `{"hierarchy":[]}`,
		"single step":           `[{"title":"Look at spiders","difficulty":3}]`,
		"blank titles not kept": `[{"title":"a","difficulty":1},{"title":"b","difficulty":2},{"title":"c","difficulty":3},{"title":"d","difficulty":4},{"title":"","difficulty":5}]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseHierarchy(raw)
			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "got %v", err)
		})
	}
}

func TestParseDeconstruction(t *testing.T) {
	result, err := ParseDeconstruction(`{"analysis":"a","challenge":"c","reframe":"r"}`)
	require.NoError(t, err)
	assert.Equal(t, models.ThoughtDeconstruction{Analysis: "a", Challenge: "c", Reframe: "r"}, result)

	_, err = ParseDeconstruction(`{"analysis":"a"}`)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParseInsights(t *testing.T) {
	themes, drift, err := ParseInsights(`{"themes":{"Checking":50},"drift":["More calm evenings"]}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Checking": 50}, themes)
	assert.Equal(t, []string{"More calm evenings"}, drift)

	_, _, err = ParseInsights(`{}`)
	assert.Error(t, err)
}
