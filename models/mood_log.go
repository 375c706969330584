package models

import "time"

// MoodLog 情绪记录模型
type MoodLog struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index:idx_mood_logs_user_created" json:"userId"`
	MoodLabel    string    `gorm:"type:varchar(50)" json:"moodLabel"`
	AnxietyScore int       `json:"anxietyScore"` // 1 平静 ~ 10 惊恐
	SleepHours   *float64  `json:"sleepHours,omitempty"`
	Note         string    `gorm:"type:text" json:"note"`
	CreatedAt    time.Time `gorm:"index:idx_mood_logs_user_created" json:"createdAt"`
}

func (MoodLog) TableName() string {
	return "mood_logs"
}
