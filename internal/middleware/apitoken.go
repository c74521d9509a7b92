package middleware

import (
	"net/http"

	"shortlink-core/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenHeader carries the shared secret on internal sync requests.
const TokenHeader = "x-api-token"

// APITokenAuth guards the internal sync endpoints. The token is an opaque
// string issued via POST /admin/tokens and compared verbatim against the
// api_keys table: missing header -> 401, unknown token -> 403.
func APITokenAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing API token"})
			c.Abort()
			return
		}

		var count int64
		if err := db.Model(&model.ApiKey{}).Where("token = ?", token).Count(&count).Error; err != nil {
			zap.S().Errorf("api key lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}
		if count == 0 {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid API token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
