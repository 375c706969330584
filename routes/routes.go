package routes

import (
	"MindEaseGo/controllers"
	"MindEaseGo/middleware"
	"MindEaseGo/utils"

	"github.com/gin-gonic/gin"
)

// Handlers 路由依赖的控制器集合
type Handlers struct {
	AI          *controllers.AIController
	Moods       *controllers.MoodController
	ERP         *controllers.ERPController
	Compulsions *controllers.CompulsionController
	Analytics   *controllers.AnalyticsController
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	utils.RegisterValidators()

	// 需要认证的路由
	private := r.Group("/api")
	private.Use(middleware.AuthMiddleware())
	{
		// AI 陪伴相关接口
		ai := private.Group("/ai")
		ai.POST("/chat", h.AI.Chat)
		ai.POST("/check-in", h.AI.CheckIn)
		ai.POST("/generate-erp", h.AI.GenerateERP)
		ai.POST("/deconstruct-thought", h.AI.DeconstructThought)
		ai.GET("/usage", h.AI.Usage)

		private.POST("/moods", h.Moods.CreateMoodLog)
		private.GET("/moods", h.Moods.GetMoodLogs)

		private.GET("/erp", h.ERP.GetTasks)
		private.POST("/erp", h.ERP.CreateTask)
		private.PUT("/erp/:id", h.ERP.ToggleTaskCompletion)
		private.DELETE("/erp/:id", h.ERP.DeleteTask)

		private.POST("/compulsions", h.Compulsions.LogEpisode)
		private.GET("/compulsions", h.Compulsions.GetEpisodes)

		private.GET("/analytics/insights", h.Analytics.GetInsights)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
