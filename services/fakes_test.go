package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"MindEaseGo/models"
)

type fixedRand struct{ n int }

func (f fixedRand) Intn(n int) int { return f.n % n }

type fakeProvider struct {
	mu      sync.Mutex
	reply   string
	err     error
	block   bool
	prompts []Prompt
}

func (f *fakeProvider) Generate(ctx context.Context, prompt Prompt) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func (f *fakeProvider) Name() string { return "fake" }

var errStoreDown = errors.New("store down")

// memStore 内存版存储，实现全部存储接口
type memStore struct {
	mu          sync.Mutex
	fail        bool
	moods       []models.MoodLog
	tasks       []models.ERPTask
	compulsions []models.CompulsionEpisode
	requests    []models.AIRequestLog
}

func (s *memStore) CreateMoodLog(_ context.Context, log *models.MoodLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errStoreDown
	}
	s.moods = append(s.moods, *log)
	return nil
}

func (s *memStore) FindMoodLogs(_ context.Context, userID string, from, to time.Time) ([]models.MoodLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	var out []models.MoodLog
	for _, m := range s.moods {
		if m.UserID == userID && !m.CreatedAt.Before(from) && !m.CreatedAt.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) CreateERPTask(_ context.Context, task *models.ERPTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, *task)
	return nil
}

func (s *memStore) FindERPTasks(_ context.Context, userID string) ([]models.ERPTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	var out []models.ERPTask
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memStore) FindERPTask(_ context.Context, id string) (*models.ERPTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			task := t
			return &task, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) SaveERPTask(_ context.Context, task *models.ERPTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = *task
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) DeleteERPTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) CreateCompulsionEpisode(_ context.Context, episode *models.CompulsionEpisode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compulsions = append(s.compulsions, *episode)
	return nil
}

func (s *memStore) FindCompulsionEpisodes(_ context.Context, userID string, since time.Time) ([]models.CompulsionEpisode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	var out []models.CompulsionEpisode
	for _, c := range s.compulsions {
		if c.UserID == userID && !c.CreatedAt.Before(since) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memStore) CreateAIRequestLog(_ context.Context, log *models.AIRequestLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errStoreDown
	}
	s.requests = append(s.requests, *log)
	return nil
}
