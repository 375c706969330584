package controllers

import (
	"net/http"
	"time"

	"MindEaseGo/config"
	"MindEaseGo/models"
	"MindEaseGo/services"
	"MindEaseGo/utils"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	store services.MoodLogStore
}

func NewMoodController(store services.MoodLogStore) *MoodController {
	return &MoodController{store: store}
}

// CreateMoodLog 手动记录情绪
func (mc *MoodController) CreateMoodLog(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var request models.CreateMoodLogRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Anxiety score between 1 and 10 is required"})
		return
	}

	moodLog := models.MoodLog{
		ID:           utils.GenerateID(),
		UserID:       uid,
		MoodLabel:    request.MoodLabel,
		AnxietyScore: request.AnxietyScore,
		SleepHours:   request.SleepHours,
		Note:         request.Note,
		CreatedAt:    time.Now(),
	}
	if err := mc.store.CreateMoodLog(c.Request.Context(), &moodLog); err != nil {
		config.Logger.Errorw("保存情绪记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save mood log"})
		return
	}

	c.JSON(http.StatusCreated, moodLog)
}

// GetMoodLogs 按时间区间查询情绪记录，默认最近30天
func (mc *MoodController) GetMoodLogs(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var query models.MoodLogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid time range, expected RFC3339"})
		return
	}
	if err := query.Validate(time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid time range: " + err.Error()})
		return
	}

	logs, err := mc.store.FindMoodLogs(c.Request.Context(), uid, query.From, query.To)
	if err != nil {
		config.Logger.Errorw("获取情绪记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load mood logs"})
		return
	}
	if logs == nil {
		logs = []models.MoodLog{}
	}

	c.JSON(http.StatusOK, logs)
}
