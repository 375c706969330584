package controllers

import (
	"net/http"

	"MindEaseGo/config"
	"MindEaseGo/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	insights *services.InsightsService
}

func NewAnalyticsController(insights *services.InsightsService) *AnalyticsController {
	return &AnalyticsController{insights: insights}
}

// GetInsights 最近30天的小进步与AI总结
func (ac *AnalyticsController) GetInsights(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	insights, err := ac.insights.Insights(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("生成洞察失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, insights)
}
