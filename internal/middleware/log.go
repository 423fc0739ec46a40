package middleware

import (
	"todolist/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditLog records API requests of logged-in users after the handler
// has run. A failed audit write never fails the request itself.
func AuditLog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		sess, ok := CurrentSession(c)
		if !ok {
			return
		}

		userID := sess.UserID
		entry := models.RequestLog{
			UserID:    &userID,
			RequestID: GetRequestID(c),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
