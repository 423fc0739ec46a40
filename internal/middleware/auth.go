package middleware

import (
	"errors"
	"log"
	"net/http"

	"todolist/internal/models"
	"todolist/internal/session"
	"todolist/internal/util"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// SessionAuth resolves the session cookie and puts the authenticated
// identity into the context. Requests without a live session are
// rejected with 401; there is no guest fallback.
func SessionAuth(sessions *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			util.Message(c, http.StatusUnauthorized, "Not logged in")
			c.Abort()
			return
		}

		sess, err := sessions.Resolve(id)
		if err != nil {
			if errors.Is(err, session.ErrAbsent) {
				util.Message(c, http.StatusUnauthorized, "Not logged in")
			} else {
				log.Printf("resolve session: %v", err)
				util.Message(c, http.StatusInternalServerError, "An error occurred")
			}
			c.Abort()
			return
		}

		c.Set(currentUserKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session placed into the context by
// SessionAuth. The second return is false on routes outside the gate.
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	if !ok || sess == nil {
		return nil, false
	}
	return sess, true
}
