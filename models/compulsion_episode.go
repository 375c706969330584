package models

import "time"

// CompulsionEpisode 强迫行为记录
type CompulsionEpisode struct {
	ID                 string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID             string    `gorm:"type:varchar(50);index" json:"userId"`
	CompulsionName     string    `gorm:"type:varchar(100)" json:"compulsionName"`
	DurationMinutes    int       `gorm:"default:0" json:"durationMinutes"`
	ResistanceDuration int       `gorm:"default:0" json:"resistanceDuration"` // 忍住了多少分钟
	DidResist          bool      `gorm:"default:false" json:"didResist"`
	AnxietyLevelBefore int       `json:"anxietyLevelBefore,omitempty"`
	AnxietyLevelAfter  int       `json:"anxietyLevelAfter,omitempty"`
	Trigger            string    `gorm:"type:text" json:"trigger"`
	Notes              string    `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (CompulsionEpisode) TableName() string {
	return "compulsion_episodes"
}
