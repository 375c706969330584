package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"MindEaseGo/models"

	"golang.org/x/sync/errgroup"
)

const insightsWindow = 30 * 24 * time.Hour

// InsightsService builds the 30-day progress summary.
type InsightsService struct {
	moods       MoodLogStore
	tasks       ERPTaskStore
	compulsions CompulsionStore
	companion   *CompanionService
	now         func() time.Time
}

func NewInsightsService(moods MoodLogStore, tasks ERPTaskStore, compulsions CompulsionStore, companion *CompanionService) *InsightsService {
	return &InsightsService{
		moods:       moods,
		tasks:       tasks,
		compulsions: compulsions,
		companion:   companion,
		now:         time.Now,
	}
}

type insightsData struct {
	moods       []models.MoodLog
	tasks       []models.ERPTask
	compulsions []models.CompulsionEpisode
}

func (s *InsightsService) Insights(ctx context.Context, userID string) (*models.Insights, error) {
	now := s.now()
	since := now.Add(-insightsWindow)

	data, err := s.load(ctx, userID, since, now)
	if err != nil {
		return nil, err
	}

	themes, drift := s.companion.Themes(ctx, userID, summarize(data))
	return &models.Insights{
		TinyWins: tinyWins(data, since),
		Themes:   themes,
		Drift:    drift,
	}, nil
}

func (s *InsightsService) load(ctx context.Context, userID string, since, now time.Time) (*insightsData, error) {
	var data insightsData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		moods, err := s.moods.FindMoodLogs(gctx, userID, since, now)
		if err != nil {
			return fmt.Errorf("load mood logs: %w", err)
		}
		data.moods = moods
		return nil
	})
	g.Go(func() error {
		tasks, err := s.tasks.FindERPTasks(gctx, userID)
		if err != nil {
			return fmt.Errorf("load erp tasks: %w", err)
		}
		data.tasks = tasks
		return nil
	})
	g.Go(func() error {
		episodes, err := s.compulsions.FindCompulsionEpisodes(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("load compulsion episodes: %w", err)
		}
		data.compulsions = episodes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func tinyWins(data *insightsData, since time.Time) []string {
	wins := []string{}

	completed := 0
	for _, task := range data.tasks {
		if task.IsCompleted && task.CompletedAt != nil && !task.CompletedAt.Before(since) {
			completed++
		}
	}
	if completed > 0 {
		wins = append(wins, fmt.Sprintf("You completed %d exposures this month!", completed))
	}

	if len(data.moods) >= 3 {
		wins = append(wins, "Consistent check-in streak!")
	}

	resisted, delayed := 0, 0
	for _, episode := range data.compulsions {
		if episode.DidResist {
			resisted++
		}
		if episode.ResistanceDuration > 0 {
			delayed++
		}
	}
	if resisted > 0 {
		wins = append(wins, fmt.Sprintf("You fully resisted %d compulsions! Amazing!", resisted))
	}
	if delayed > 0 {
		wins = append(wins, fmt.Sprintf("You delayed %d compulsions before acting. That's progress!", delayed))
	}
	return wins
}

// summarize renders the data the insights prompt is run on.
func summarize(data *insightsData) string {
	type mood struct {
		Date  time.Time `json:"date"`
		Score int       `json:"score"`
		Label string    `json:"label"`
		Sleep *float64  `json:"sleep,omitempty"`
	}
	type compulsion struct {
		Date    time.Time `json:"date"`
		Name    string    `json:"name"`
		Resist  bool      `json:"resisted"`
		Trigger string    `json:"trigger,omitempty"`
	}

	moods := make([]mood, 0, len(data.moods))
	for _, m := range data.moods {
		moods = append(moods, mood{Date: m.CreatedAt, Score: m.AnxietyScore, Label: m.MoodLabel, Sleep: m.SleepHours})
	}
	compulsions := make([]compulsion, 0, len(data.compulsions))
	for _, c := range data.compulsions {
		compulsions = append(compulsions, compulsion{Date: c.CreatedAt, Name: c.CompulsionName, Resist: c.DidResist, Trigger: c.Trigger})
	}

	moodJSON, _ := json.Marshal(moods)
	compulsionJSON, _ := json.Marshal(compulsions)
	return fmt.Sprintf("Moods: %s\nCompulsions: %s\nExposure tasks: %d", moodJSON, compulsionJSON, len(data.tasks))
}
