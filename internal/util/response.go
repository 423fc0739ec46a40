package util

import (
	"github.com/gin-gonic/gin"
)

// Message writes a JSON body of the form {"message": ...} with the given
// HTTP status. All non-payload responses in the API use this shape.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Redirect writes a JSON body telling the client where to navigate next.
// The pages are static, so redirects after POSTs are client-driven.
func Redirect(c *gin.Context, status int, location string) {
	c.JSON(status, gin.H{"redirect": location})
}
