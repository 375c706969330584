package models

import "time"

// AIRequestLog 记录每次AI调用
type AIRequestLog struct {
	ID         string    `gorm:"type:varchar(50);primaryKey"`
	UserID     string    `gorm:"type:varchar(50);index"`
	PromptType string    `gorm:"type:varchar(30)"`
	Mode       string    `gorm:"type:varchar(10)"` // live, mock
	Timestamp  time.Time `gorm:"index"`
}

func (AIRequestLog) TableName() string {
	return "ai_requests_logs"
}
