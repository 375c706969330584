package services

import (
	"context"
	"time"

	"MindEaseGo/config"
	"MindEaseGo/models"
	"MindEaseGo/utils"
)

// MoodRecorder turns an inferred analysis into a stored mood log.
type MoodRecorder struct {
	store MoodLogStore
	now   func() time.Time
}

func NewMoodRecorder(store MoodLogStore) *MoodRecorder {
	return &MoodRecorder{store: store, now: time.Now}
}

// RecordIfPresent saves analysis for userID. It returns nil when there is
// nothing to save or the save failed; failures are only logged.
func (r *MoodRecorder) RecordIfPresent(ctx context.Context, userID string, analysis *models.AnalysisResult) *models.MoodLog {
	if analysis == nil || r.store == nil {
		return nil
	}

	moodLog := &models.MoodLog{
		ID:           utils.GenerateID(),
		UserID:       userID,
		MoodLabel:    analysis.MoodLabel,
		AnxietyScore: models.ClampScore(analysis.AnxietyScore),
		SleepHours:   analysis.SleepHours,
		Note:         analysis.Note,
		CreatedAt:    r.now(),
	}

	if err := r.store.CreateMoodLog(ctx, moodLog); err != nil {
		config.Logger.Errorw("自动保存情绪记录失败",
			"error", err,
			"uid", userID,
			"moodLabel", analysis.MoodLabel,
		)
		return nil
	}

	config.Logger.Debugw("情绪记录已保存", "uid", userID, "moodLogID", moodLog.ID)
	return moodLog
}
