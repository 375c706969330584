package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"MindEaseGo/models"
)

// RandSource picks template variants; *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

type replyCategory struct {
	name string
	// terms match anywhere in the lowercased message
	terms []string
	// words match whole words only, for short tokens such as "hi"
	words    []string
	variants []string
}

// 按优先级排列，命中第一个即返回
var replyCategories = []replyCategory{
	{
		name:  "anxiety",
		terms: []string{"anx", "panic", "fear", "afraid", "scared", "nervous"},
		variants: []string{
			"I hear that you're feeling anxious. Let's try a grounding exercise: Name 5 things you can see, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste. Take a deep breath.",
			"Anxiety can feel overwhelming, but it always passes. Try breathing in for 4 counts, holding for 4, and breathing out for 6. Notice your feet on the floor and the weight of your body in the chair.",
			"That sounds really uncomfortable. Let's ground ourselves together: look around and name five things you can see right now, then take three slow breaths. The feeling is intense, but it is not dangerous.",
		},
	},
	{
		name:  "compulsion",
		terms: []string{"compulsion", "urge", "check", "wash", "repeat", "ritual"},
		variants: []string{
			"It sounds like you're facing a compulsion. Remember the 15-minute rule: Can you wait just 15 minutes before acting on it? The urge often passes like a wave.",
			"Urges rise and fall like waves. Try the 15-minute delay: set a timer, and when it ends, see if you can delay another 15 minutes. Every minute you wait teaches your brain the urge can pass on its own.",
			"You don't have to act on this urge right away. Let's use the 15-minute rule: acknowledge the urge, name it, and wait 15 minutes before deciding anything. You might notice it has softened by then.",
		},
	},
	{
		name:  "thought",
		terms: []string{"thought", "obsess", "worry", "worried", "intrusive"},
		variants: []string{
			"Intrusive thoughts can be scary, but remember: thoughts are just thoughts, not facts. You don't have to engage with them. Visualize the thought floating away on a cloud.",
			"Try labelling it: \"I'm having the thought that...\" Putting that distance between you and the thought reminds you it's a mental event, not a message you must obey.",
			"Worries and obsessions get louder when we argue with them. See if you can let the thought sit in the background, like a radio playing in another room, while you turn back to what you were doing.",
		},
	},
	{
		name:  "greeting",
		terms: []string{"hello", "good morning", "good afternoon", "good evening"},
		words: []string{"hi", "hey", "hiya", "greetings"},
		variants: []string{
			"Hello, I'm glad you're here. How are you feeling today?",
			"Hi there! This is a safe space. What's on your mind right now?",
			"Hey, welcome back. Would you like to talk about how your day is going?",
		},
	},
	{
		name:  "closing",
		terms: []string{"thank", "bye", "good night", "appreciate", "see you"},
		variants: []string{
			"You're very welcome. Remember to be gentle with yourself today. I'm here whenever you need me.",
			"Thank you for sharing with me. Every small step counts, and you're taking them. Take care.",
			"I'm glad I could help. You did good work today, and I'll be here if you want to talk again.",
		},
	},
}

var genericReplies = []string{
	"I'm here for you. Tell me more about how you're feeling. We can work through this together.",
	"Thank you for sharing that. What feels most difficult for you right now?",
	"I'm listening. Can you tell me a little more about what's going on?",
}

// 签到情绪分类，按 焦虑 -> 低落 -> 开心 的顺序判断
type moodRule struct {
	label string
	score int
	terms []string
	// words match whole words only, so "goodbye" is not "good"
	words []string
	reply string
}

var moodRules = []moodRule{
	{
		label: "Anxious",
		score: 7,
		terms: []string{"anxious", "anxiety", "panic", "scared", "nervous", "afraid", "terrified"},
		reply: "Thank you for telling me. It sounds like anxiety is running high right now. I've noted this in your mood log. Would you like to try a short grounding exercise together?",
	},
	{
		label: "Sad",
		score: 5,
		terms: []string{"depressed", "lonely", "upset", "hopeless", "crying"},
		words: []string{"sad", "bad"},
		reply: "I'm sorry you're feeling low. I've logged how you're feeling so you can look back on it later. What's been weighing on you?",
	},
	{
		label: "Happy",
		score: 2,
		terms: []string{"happy", "great", "calm", "better", "relaxed"},
		words: []string{"good"},
		reply: "That's wonderful to hear! I've added this to your mood log. What do you think helped you feel this way today?",
	},
}

const (
	neutralMoodLabel    = "Neutral"
	neutralAnxietyScore = 3
	neutralSleepReply   = "Thanks for sharing how you slept. I've noted it. How is your mood right now?"
	listeningReply      = "I'm listening. Tell me more about what's on your mind."
)

// 问候语里的 good 不代表情绪
var salutations = []string{"good morning", "good afternoon", "good evening", "good night"}

var sleepPattern = regexp.MustCompile(`slept\s+(\d+(?:\.\d+)?)\s+hours?`)

// MockEngine answers every AI endpoint locally when no live model is usable.
type MockEngine struct {
	mu  sync.Mutex
	rnd RandSource
}

// NewMockEngine uses rnd for variant selection, or a time-seeded source when nil.
func NewMockEngine(rnd RandSource) *MockEngine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockEngine{rnd: rnd}
}

func (m *MockEngine) pick(variants []string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return variants[m.rnd.Intn(len(variants))]
}

// Reply returns a supportive reply for the first matching category.
func (m *MockEngine) Reply(message string) string {
	lower := strings.ToLower(message)
	words := wordSet(lower)
	for _, category := range replyCategories {
		if containsAny(lower, category.terms) || hasAnyWord(words, category.words) {
			return m.pick(category.variants)
		}
	}
	return m.pick(genericReplies)
}

// CheckIn classifies the message into a mood; analysis is nil when there is
// no mood or sleep signal.
func (m *MockEngine) CheckIn(message string) (string, *models.AnalysisResult) {
	lower := strings.ToLower(message)
	sleepHours := extractSleepHours(lower)

	moodText := lower
	for _, phrase := range salutations {
		moodText = strings.ReplaceAll(moodText, phrase, " ")
	}
	words := wordSet(moodText)

	for _, rule := range moodRules {
		if containsAny(moodText, rule.terms) || hasAnyWord(words, rule.words) {
			return rule.reply, &models.AnalysisResult{
				MoodLabel:    rule.label,
				AnxietyScore: rule.score,
				Note:         message,
				SleepHours:   sleepHours,
			}
		}
	}

	if sleepHours != nil {
		return neutralSleepReply, &models.AnalysisResult{
			MoodLabel:    neutralMoodLabel,
			AnxietyScore: neutralAnxietyScore,
			Note:         message,
			SleepHours:   sleepHours,
		}
	}
	return listeningReply, nil
}

// Hierarchy returns the fixed five-step ladder for fearTheme.
func (m *MockEngine) Hierarchy(fearTheme string) []models.ExposureStep {
	return []models.ExposureStep{
		{Title: fmt.Sprintf("Look at a picture of %s", fearTheme), Difficulty: 2, Description: "Start by just looking at an image related to your fear."},
		{Title: fmt.Sprintf("Write down the word '%s'", fearTheme), Difficulty: 3, Description: "Write the fear trigger on a piece of paper."},
		{Title: fmt.Sprintf("Imagine being near %s", fearTheme), Difficulty: 5, Description: "Close your eyes and visualize the scenario for 2 minutes."},
		{Title: fmt.Sprintf("Touch an object related to %s", fearTheme), Difficulty: 7, Description: "Briefly touch an item that triggers mild anxiety."},
		{Title: fmt.Sprintf("Full exposure to %s", fearTheme), Difficulty: 10, Description: "Face the fear directly without performing a compulsion."},
	}
}

func (m *MockEngine) Deconstruction() models.ThoughtDeconstruction {
	return models.ThoughtDeconstruction{
		Analysis:  "This sounds like 'Catastrophizing' - assuming the worst will happen.",
		Challenge: "What is the evidence that this thought is 100% true? Have you survived similar feelings before?",
		Reframe:   "Even if I feel anxious, it doesn't mean something bad will happen. I can handle this feeling.",
	}
}

// Insights returns estimated themes and drift notes.
func (m *MockEngine) Insights() (map[string]int, []string) {
	themes := map[string]int{
		"Contamination": 40,
		"Checking":      30,
		"Harm":          10,
	}
	drift := []string{
		"Your anxiety tends to spike on Monday mornings.",
		"You've been logging more entries about 'uncertainty' lately.",
		"Great job reducing reassurance seeking this week.",
	}
	return themes, drift
}

func extractSleepHours(lower string) *float64 {
	match := sleepPattern.FindStringSubmatch(lower)
	if match == nil {
		return nil
	}
	hours, err := strconv.ParseFloat(match[1], 64)
	if err != nil || hours <= 0 {
		return nil
	}
	return &hours
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]struct{} {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '\'')
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func hasAnyWord(words map[string]struct{}, candidates []string) bool {
	for _, c := range candidates {
		if _, ok := words[c]; ok {
			return true
		}
	}
	return false
}
