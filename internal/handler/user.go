package handler

import (
	"net/http"

	"todolist/internal/middleware"
	"todolist/internal/util"

	"github.com/gin-gonic/gin"
)

// UserInfo returns the profile of the logged-in user (behind SessionAuth).
func UserInfo(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": sess.Username,
		"email":    sess.Email,
	})
}
