package middleware

import (
	"net/http"

	"MindEaseGo/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID 认证后存入 gin.Context 的用户ID键
const ContextUserID = "uid"

// AuthMiddleware 认证中间件
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
