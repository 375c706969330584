package models

import "time"

// ERPTask 暴露练习任务
type ERPTask struct {
	ID              string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID          string     `gorm:"type:varchar(50);index" json:"userId"`
	Title           string     `gorm:"type:varchar(255)" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	DifficultyLevel int        `json:"difficultyLevel"`
	IsCompleted     bool       `gorm:"default:false" json:"isCompleted"`
	CompletedAt     *time.Time `json:"completedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func (ERPTask) TableName() string {
	return "erp_tasks"
}

// ToggleCompletion flips the completion flag and stamps or clears CompletedAt.
func (t *ERPTask) ToggleCompletion(now time.Time) {
	t.IsCompleted = !t.IsCompleted
	if t.IsCompleted {
		t.CompletedAt = &now
		return
	}
	t.CompletedAt = nil
}
