package controllers

import (
	"net/http"
	"time"

	"MindEaseGo/config"
	"MindEaseGo/models"
	"MindEaseGo/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	companion *services.CompanionService
	usage     *services.UsageTracker
}

func NewAIController(companion *services.CompanionService, usage *services.UsageTracker) *AIController {
	return &AIController{
		companion: companion,
		usage:     usage,
	}
}

// Chat handles free-form companion messages.
func (c *AIController) Chat(ctx *gin.Context) {
	uid, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var request models.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
		return
	}

	reply := c.companion.Chat(ctx.Request.Context(), uid, request.Message)
	ctx.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}

// CheckIn handles the guided mood check-in; an inferred mood is saved to
// the user's mood log.
func (c *AIController) CheckIn(ctx *gin.Context) {
	uid, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var request models.CheckInRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
		return
	}

	response := c.companion.CheckIn(ctx.Request.Context(), uid, request.Message, request.History)
	ctx.JSON(http.StatusOK, response)
}

// GenerateERP builds an exposure hierarchy for a fear theme.
func (c *AIController) GenerateERP(ctx *gin.Context) {
	uid, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var request models.GenerateERPRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Fear theme is required"})
		return
	}

	hierarchy := c.companion.GenerateHierarchy(ctx.Request.Context(), uid, request.FearTheme)
	ctx.JSON(http.StatusOK, models.HierarchyResponse{Hierarchy: hierarchy})
}

func (c *AIController) DeconstructThought(ctx *gin.Context) {
	uid, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var request models.DeconstructThoughtRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Thought is required"})
		return
	}

	result := c.companion.DeconstructThought(ctx.Request.Context(), uid, request.Thought, request.Distortion)
	ctx.JSON(http.StatusOK, result)
}

// Usage returns the caller's AI request counters for ?date=YYYY-MM-DD (UTC, default today).
func (c *AIController) Usage(ctx *gin.Context) {
	uid, ok := currentUserID(ctx)
	if !ok {
		return
	}

	day := time.Now().UTC()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	usage, err := c.usage.Usage(ctx.Request.Context(), uid, day)
	if err != nil {
		config.Logger.Errorw("获取AI调用次数失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load usage"})
		return
	}

	ctx.JSON(http.StatusOK, models.UsageResponse{
		Date:  day.Format("2006-01-02"),
		Usage: usage,
	})
}
