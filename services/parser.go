package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"MindEaseGo/models"
)

// ParseError means the model answered but not in the expected shape.
type ParseError struct {
	Kind string
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s response: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StripCodeFence removes markdown fences and any chatter around the JSON value.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```JSON")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return text
	}
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	closing := "}"
	if text[start] == '[' {
		closing = "]"
	}
	end := strings.LastIndex(text, closing)
	if end > start {
		return text[start : end+1]
	}
	return text
}

func decodeJSON(kind, raw string, v interface{}) error {
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), v); err != nil {
		return &ParseError{Kind: kind, Raw: raw, Err: err}
	}
	return nil
}

type checkInPayload struct {
	Reply    string                 `json:"reply"`
	Analysis *models.AnalysisResult `json:"analysis"`
}

// ParseCheckIn decodes {reply, analysis?}. An analysis without a mood label
// is dropped; the score is clamped and an empty note falls back to message.
func ParseCheckIn(raw, message string) (string, *models.AnalysisResult, error) {
	var payload checkInPayload
	if err := decodeJSON("check-in", raw, &payload); err != nil {
		return "", nil, err
	}
	if strings.TrimSpace(payload.Reply) == "" {
		return "", nil, &ParseError{Kind: "check-in", Raw: raw, Err: errors.New("missing reply")}
	}

	analysis := payload.Analysis
	if analysis == nil || strings.TrimSpace(analysis.MoodLabel) == "" {
		return payload.Reply, nil, nil
	}
	analysis.MoodLabel = strings.TrimSpace(analysis.MoodLabel)
	analysis.AnxietyScore = models.ClampScore(analysis.AnxietyScore)
	if strings.TrimSpace(analysis.Note) == "" {
		analysis.Note = message
	}
	if analysis.SleepHours != nil && *analysis.SleepHours <= 0 {
		analysis.SleepHours = nil
	}
	return payload.Reply, analysis, nil
}

// hierarchySteps 暴露阶梯固定为5步
const hierarchySteps = 5

// ParseHierarchy accepts a bare array or an object carrying "hierarchy" or
// "steps". Fewer than five usable steps is an error; extra steps are cut.
func ParseHierarchy(raw string) ([]models.ExposureStep, error) {
	body := StripCodeFence(raw)

	var steps []models.ExposureStep
	if strings.HasPrefix(body, "[") {
		if err := decodeJSON("hierarchy", body, &steps); err != nil {
			return nil, err
		}
	} else {
		var wrapped struct {
			Hierarchy []models.ExposureStep `json:"hierarchy"`
			Steps     []models.ExposureStep `json:"steps"`
		}
		if err := decodeJSON("hierarchy", body, &wrapped); err != nil {
			return nil, err
		}
		steps = wrapped.Hierarchy
		if len(steps) == 0 {
			steps = wrapped.Steps
		}
	}

	normalized := make([]models.ExposureStep, 0, len(steps))
	for _, step := range steps {
		step.Title = strings.TrimSpace(step.Title)
		if step.Title == "" {
			continue
		}
		step.Difficulty = models.ClampScore(step.Difficulty)
		normalized = append(normalized, step)
	}
	if len(normalized) < hierarchySteps {
		return nil, &ParseError{Kind: "hierarchy", Raw: raw, Err: fmt.Errorf("got %d exposure steps, want %d", len(normalized), hierarchySteps)}
	}
	return normalized[:hierarchySteps], nil
}

func ParseDeconstruction(raw string) (models.ThoughtDeconstruction, error) {
	var result models.ThoughtDeconstruction
	if err := decodeJSON("deconstruction", raw, &result); err != nil {
		return models.ThoughtDeconstruction{}, err
	}
	if result.Analysis == "" || result.Challenge == "" || result.Reframe == "" {
		return models.ThoughtDeconstruction{}, &ParseError{Kind: "deconstruction", Raw: raw, Err: errors.New("missing analysis, challenge or reframe")}
	}
	return result, nil
}

func ParseInsights(raw string) (map[string]int, []string, error) {
	var payload struct {
		Themes map[string]int `json:"themes"`
		Drift  []string       `json:"drift"`
	}
	if err := decodeJSON("insights", raw, &payload); err != nil {
		return nil, nil, err
	}
	if len(payload.Themes) == 0 && len(payload.Drift) == 0 {
		return nil, nil, &ParseError{Kind: "insights", Raw: raw, Err: errors.New("empty insights")}
	}
	if payload.Themes == nil {
		payload.Themes = map[string]int{}
	}
	return payload.Themes, payload.Drift, nil
}
