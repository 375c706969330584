package models

import "encoding/json"

// Chat roles accepted in check-in history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatTurn 客户端传来的对话历史，不做持久化
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UnmarshalJSON also accepts the {sender, text} shape sent by the web client,
// where any sender other than "user" is the assistant.
func (t *ChatTurn) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    string `json:"role"`
		Content string `json:"content"`
		Sender  string `json:"sender"`
		Text    string `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.Role, t.Content = raw.Role, raw.Content
	if t.Role == "" && raw.Sender != "" {
		t.Role = RoleAssistant
		if raw.Sender == RoleUser {
			t.Role = RoleUser
		}
	}
	if t.Content == "" {
		t.Content = raw.Text
	}
	return nil
}

// NormalizedRole maps anything unknown to RoleUser.
func (t ChatTurn) NormalizedRole() string {
	switch t.Role {
	case RoleAssistant, RoleSystem:
		return t.Role
	default:
		return RoleUser
	}
}

// AnalysisResult 签到对话中推断出的情绪状态
type AnalysisResult struct {
	MoodLabel    string   `json:"moodLabel"`
	AnxietyScore int      `json:"anxietyScore"`
	Note         string   `json:"note"`
	SleepHours   *float64 `json:"sleepHours,omitempty"`
}

type ExposureStep struct {
	Title       string `json:"title"`
	Difficulty  int    `json:"difficulty"`
	Description string `json:"description"`
}

type ThoughtDeconstruction struct {
	Analysis  string `json:"analysis"`
	Challenge string `json:"challenge"`
	Reframe   string `json:"reframe"`
}

// Insights 近30天的进展与AI总结
type Insights struct {
	TinyWins []string       `json:"tinyWins"`
	Themes   map[string]int `json:"themes"`
	Drift    []string       `json:"drift"`
}

// ClampScore keeps an anxiety score inside 1..10.
func ClampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
