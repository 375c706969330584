package services

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEngine_ReplyCategories(t *testing.T) {
	engine := NewMockEngine(fixedRand{n: 0})

	tests := []struct {
		name     string
		message  string
		variants []string
	}{
		{"anxiety", "I feel so anxious", replyCategories[0].variants},
		{"panic before urge", "I panic and have an urge to wash", replyCategories[0].variants},
		{"compulsion", "I have an urge to check the stove", replyCategories[1].variants},
		{"thought", "I keep having this intrusive thought", replyCategories[2].variants},
		{"greeting word", "hi there", replyCategories[3].variants},
		{"closing", "Thanks a lot, bye", replyCategories[4].variants},
		{"generic", "The weather is nice", genericReplies},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.variants[0], engine.Reply(tt.message))
		})
	}
}

func TestMockEngine_ReplyUsesRandSource(t *testing.T) {
	for i := 0; i < 3; i++ {
		engine := NewMockEngine(fixedRand{n: i})
		assert.Equal(t, replyCategories[0].variants[i], engine.Reply("I'm scared"))
	}
}

func TestMockEngine_ReplyVariantCount(t *testing.T) {
	for _, category := range replyCategories {
		assert.Len(t, category.variants, 3, category.name)
	}
	assert.Len(t, genericReplies, 3)
}

func TestMockEngine_GreetingNeedsWholeWord(t *testing.T) {
	engine := NewMockEngine(fixedRand{n: 0})
	// "this" contains "hi" but is not a greeting
	assert.Equal(t, genericReplies[0], engine.Reply("this is a long day"))
}

func TestMockEngine_CheckIn(t *testing.T) {
	engine := NewMockEngine(nil)

	t.Run("happy", func(t *testing.T) {
		reply, analysis := engine.CheckIn("I feel great today")
		require.NotNil(t, analysis)
		assert.Equal(t, "Happy", analysis.MoodLabel)
		assert.Equal(t, 2, analysis.AnxietyScore)
		assert.Equal(t, "I feel great today", analysis.Note)
		assert.Nil(t, analysis.SleepHours)
		assert.NotEmpty(t, reply)
	})

	t.Run("anxious wins over happy", func(t *testing.T) {
		_, analysis := engine.CheckIn("I'm anxious but also a bit happy")
		require.NotNil(t, analysis)
		assert.Equal(t, "Anxious", analysis.MoodLabel)
		assert.Equal(t, 7, analysis.AnxietyScore)
	})

	t.Run("sad wins over happy", func(t *testing.T) {
		_, analysis := engine.CheckIn("I was sad earlier but now I'm happy")
		require.NotNil(t, analysis)
		assert.Equal(t, "Sad", analysis.MoodLabel)
		assert.Equal(t, 5, analysis.AnxietyScore)
	})

	t.Run("short mood words match whole words only", func(t *testing.T) {
		for _, message := range []string{"goodbye for now", "good night", "Good morning!", "I lost my badge"} {
			reply, analysis := engine.CheckIn(message)
			assert.Nil(t, analysis, message)
			assert.Equal(t, listeningReply, reply, message)
		}

		_, analysis := engine.CheckIn("Today was good.")
		require.NotNil(t, analysis)
		assert.Equal(t, "Happy", analysis.MoodLabel)
	})

	t.Run("sad", func(t *testing.T) {
		_, analysis := engine.CheckIn("Feeling lonely tonight")
		require.NotNil(t, analysis)
		assert.Equal(t, "Sad", analysis.MoodLabel)
		assert.Equal(t, 5, analysis.AnxietyScore)
	})

	t.Run("sleep with mood", func(t *testing.T) {
		_, analysis := engine.CheckIn("I slept 7.5 hours and feel good")
		require.NotNil(t, analysis)
		assert.Equal(t, "Happy", analysis.MoodLabel)
		require.NotNil(t, analysis.SleepHours)
		assert.Equal(t, 7.5, *analysis.SleepHours)
	})

	t.Run("sleep only", func(t *testing.T) {
		reply, analysis := engine.CheckIn("I slept 6 hours")
		require.NotNil(t, analysis)
		assert.Equal(t, "Neutral", analysis.MoodLabel)
		assert.Equal(t, 3, analysis.AnxietyScore)
		require.NotNil(t, analysis.SleepHours)
		assert.Equal(t, 6.0, *analysis.SleepHours)
		assert.Equal(t, neutralSleepReply, reply)
	})

	t.Run("no signal", func(t *testing.T) {
		reply, analysis := engine.CheckIn("just a normal day")
		assert.Nil(t, analysis)
		assert.Equal(t, listeningReply, reply)
	})
}

func TestMockEngine_Hierarchy(t *testing.T) {
	engine := NewMockEngine(nil)
	steps := engine.Hierarchy("spiders")
	require.Len(t, steps, 5)

	var difficulties []int
	for _, step := range steps {
		difficulties = append(difficulties, step.Difficulty)
		assert.True(t, strings.Contains(step.Title, "spiders"), step.Title)
		assert.NotEmpty(t, step.Description)
	}
	if diff := cmp.Diff([]int{2, 3, 5, 7, 10}, difficulties); diff != "" {
		t.Errorf("difficulties mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, steps, engine.Hierarchy("spiders"))
}

func TestMockEngine_DeconstructionAndInsights(t *testing.T) {
	engine := NewMockEngine(nil)

	result := engine.Deconstruction()
	assert.Contains(t, result.Analysis, "Catastrophizing")
	assert.NotEmpty(t, result.Challenge)
	assert.NotEmpty(t, result.Reframe)

	themes, drift := engine.Insights()
	assert.Equal(t, 40, themes["Contamination"])
	assert.Len(t, drift, 3)
}
