package services

import (
	"context"
	"errors"
	"time"

	"MindEaseGo/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned by stores when a record does not exist.
var ErrNotFound = errors.New("record not found")

type MoodLogStore interface {
	CreateMoodLog(ctx context.Context, log *models.MoodLog) error
	FindMoodLogs(ctx context.Context, userID string, from, to time.Time) ([]models.MoodLog, error)
}

type ERPTaskStore interface {
	CreateERPTask(ctx context.Context, task *models.ERPTask) error
	FindERPTasks(ctx context.Context, userID string) ([]models.ERPTask, error)
	FindERPTask(ctx context.Context, id string) (*models.ERPTask, error)
	SaveERPTask(ctx context.Context, task *models.ERPTask) error
	DeleteERPTask(ctx context.Context, id string) error
}

type CompulsionStore interface {
	CreateCompulsionEpisode(ctx context.Context, episode *models.CompulsionEpisode) error
	FindCompulsionEpisodes(ctx context.Context, userID string, since time.Time) ([]models.CompulsionEpisode, error)
}

type AIRequestLogStore interface {
	CreateAIRequestLog(ctx context.Context, log *models.AIRequestLog) error
}

// GormStore 基于gorm的持久化实现
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateMoodLog(ctx context.Context, log *models.MoodLog) error {
	return s.db.WithContext(ctx).Create(log).Error
}

func (s *GormStore) FindMoodLogs(ctx context.Context, userID string, from, to time.Time) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, from, to).
		Order("created_at desc").
		Find(&logs).Error
	return logs, err
}

func (s *GormStore) CreateERPTask(ctx context.Context, task *models.ERPTask) error {
	return s.db.WithContext(ctx).Create(task).Error
}

func (s *GormStore) FindERPTasks(ctx context.Context, userID string) ([]models.ERPTask, error) {
	var tasks []models.ERPTask
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (s *GormStore) FindERPTask(ctx context.Context, id string) (*models.ERPTask, error) {
	var task models.ERPTask
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (s *GormStore) SaveERPTask(ctx context.Context, task *models.ERPTask) error {
	return s.db.WithContext(ctx).Save(task).Error
}

func (s *GormStore) DeleteERPTask(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ERPTask{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CreateCompulsionEpisode(ctx context.Context, episode *models.CompulsionEpisode) error {
	return s.db.WithContext(ctx).Create(episode).Error
}

func (s *GormStore) FindCompulsionEpisodes(ctx context.Context, userID string, since time.Time) ([]models.CompulsionEpisode, error) {
	var episodes []models.CompulsionEpisode
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at desc").
		Find(&episodes).Error
	return episodes, err
}

func (s *GormStore) CreateAIRequestLog(ctx context.Context, log *models.AIRequestLog) error {
	return s.db.WithContext(ctx).Create(log).Error
}
