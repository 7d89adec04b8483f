package middleware

import (
	"net/http"
	"strings"

	"github.com/RigelNana/arkvideo/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JWTAuth 中间件：提取 Bearer token -> 本地校验 -> 注入 user_id
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "missing Authorization header")
			return
		}
		token := header
		if after, ok := strings.CutPrefix(header, "Bearer "); ok {
			token = after
		}
		if token == "" {
			unauthorized(c, "empty bearer token")
			return
		}
		claims, err := utils.ParseToken(token)
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}
		if _, err := uuid.Parse(claims.UserID); err != nil {
			unauthorized(c, "invalid token")
			return
		}
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
	c.Abort()
}
