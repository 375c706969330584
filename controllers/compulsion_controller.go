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

type CompulsionController struct {
	store services.CompulsionStore
}

func NewCompulsionController(store services.CompulsionStore) *CompulsionController {
	return &CompulsionController{store: store}
}

// LogEpisode 记录一次强迫行为（包括成功抵抗的）
func (cc *CompulsionController) LogEpisode(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var request models.LogCompulsionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Compulsion name is required"})
		return
	}

	episode := models.CompulsionEpisode{
		ID:                 utils.GenerateID(),
		UserID:             uid,
		CompulsionName:     request.CompulsionName,
		DurationMinutes:    request.DurationMinutes,
		ResistanceDuration: request.ResistanceDuration,
		DidResist:          request.DidResist,
		AnxietyLevelBefore: request.AnxietyLevelBefore,
		AnxietyLevelAfter:  request.AnxietyLevelAfter,
		Trigger:            request.Trigger,
		Notes:              request.Notes,
		CreatedAt:          time.Now(),
	}
	if err := cc.store.CreateCompulsionEpisode(c.Request.Context(), &episode); err != nil {
		config.Logger.Errorw("记录强迫行为失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, episode)
}

func (cc *CompulsionController) GetEpisodes(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	episodes, err := cc.store.FindCompulsionEpisodes(c.Request.Context(), uid, time.Time{})
	if err != nil {
		config.Logger.Errorw("获取强迫行为记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if episodes == nil {
		episodes = []models.CompulsionEpisode{}
	}
	c.JSON(http.StatusOK, episodes)
}
