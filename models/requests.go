package models

import (
	"fmt"
	"time"
)

// ChatRequest 自由对话请求
type ChatRequest struct {
	Message string `json:"message" binding:"required,notblank"`
}

// CheckInRequest 情绪签到请求
type CheckInRequest struct {
	Message string     `json:"message" binding:"required,notblank"`
	History []ChatTurn `json:"history"`
}

// GenerateERPRequest 暴露阶梯生成请求
type GenerateERPRequest struct {
	FearTheme string `json:"fearTheme" binding:"required,notblank"`
}

// DeconstructThoughtRequest CBT想法拆解请求
type DeconstructThoughtRequest struct {
	Thought    string `json:"thought" binding:"required,notblank"`
	Distortion string `json:"distortion"`
}

// CreateMoodLogRequest 手动记录情绪
type CreateMoodLogRequest struct {
	MoodLabel    string   `json:"moodLabel"`
	AnxietyScore int      `json:"anxietyScore" binding:"required,min=1,max=10"`
	SleepHours   *float64 `json:"sleepHours" binding:"omitempty,gt=0"`
	Note         string   `json:"note"`
}

// CreateERPTaskRequest 保存暴露练习任务
type CreateERPTaskRequest struct {
	Title           string `json:"title" binding:"required,notblank"`
	Description     string `json:"description"`
	DifficultyLevel int    `json:"difficultyLevel" binding:"omitempty,min=1,max=10"`
}

// LogCompulsionRequest 强迫行为记录请求
type LogCompulsionRequest struct {
	CompulsionName     string `json:"compulsionName" binding:"required,notblank"`
	DurationMinutes    int    `json:"durationMinutes" binding:"min=0"`
	ResistanceDuration int    `json:"resistanceDuration" binding:"min=0"`
	DidResist          bool   `json:"didResist"`
	AnxietyLevelBefore int    `json:"anxietyLevelBefore" binding:"omitempty,min=1,max=10"`
	AnxietyLevelAfter  int    `json:"anxietyLevelAfter" binding:"omitempty,min=1,max=10"`
	Trigger            string `json:"trigger"`
	Notes              string `json:"notes"`
}

// MoodLogQuery 情绪记录查询区间
type MoodLogQuery struct {
	From time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// Validate fills a missing range with the last 30 days ending at now and
// converts both ends to UTC.
func (q *MoodLogQuery) Validate(now time.Time) error {
	if q.To.IsZero() {
		q.To = now
	}
	if q.From.IsZero() {
		q.From = q.To.AddDate(0, 0, -30)
	}

	// 将时间转换为 UTC
	q.From = q.From.UTC()
	q.To = q.To.UTC()

	if q.From.After(q.To) {
		return fmt.Errorf("from must be before to")
	}
	return nil
}
