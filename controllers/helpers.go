package controllers

import (
	"net/http"

	"MindEaseGo/config"
	"MindEaseGo/middleware"

	"github.com/gin-gonic/gin"
)

// currentUserID 获取认证中间件写入的用户ID，缺失时直接返回401
func currentUserID(ctx *gin.Context) (string, bool) {
	uid := ctx.GetString(middleware.ContextUserID)
	if uid == "" {
		config.Logger.Errorw("未获取到用户ID", "path", ctx.Request.URL.Path)
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return "", false
	}
	return uid, true
}
