package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"todolist/internal/config"
	"todolist/internal/session"
	"todolist/internal/store"
	"todolist/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	Users    *store.UserStore
	Sessions *session.Manager
	Cookie   config.SessionConfig
}

func NewAuthHandler(users *store.UserStore, sessions *session.Manager, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		Users:    users,
		Sessions: sessions,
		Cookie:   cookie,
	}
}

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account. The durable write is confirmed
// before the client hears success; registration never logs the user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := util.ValidateUsername(req.Username); err != nil {
		util.Message(c, http.StatusBadRequest, "Username must be 3-20 letters, digits or underscores")
		return
	}
	if err := util.ValidateEmail(req.Email); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid email address")
		return
	}
	if err := util.ValidatePassword(req.Password); err != nil {
		util.Message(c, http.StatusBadRequest, "Password must be 8-64 characters")
		return
	}

	if _, err := h.Users.Register(req.Username, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			util.Message(c, http.StatusBadRequest, "Email already exists.")
		case errors.Is(err, store.ErrDuplicateUsername):
			util.Message(c, http.StatusBadRequest, "Username already exists.")
		default:
			log.Printf("register: %v", err)
			util.Message(c, http.StatusInternalServerError, "An error occurred during registration.")
		}
		return
	}

	util.Redirect(c, http.StatusOK, "/login")
}

// Login verifies the credentials and issues a session cookie. Unknown
// email and wrong password produce the same message so the endpoint
// cannot be used to probe which emails are registered.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			util.Message(c, http.StatusBadRequest, "Invalid email or password.")
		} else {
			log.Printf("login: %v", err)
			util.Message(c, http.StatusInternalServerError, "An error occurred during login.")
		}
		return
	}

	if !h.Users.VerifyPassword(user, req.Password) {
		util.Message(c, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	id, err := h.Sessions.Create(user.ID, user.Username, user.Email)
	if err != nil {
		log.Printf("create session: %v", err)
		util.Message(c, http.StatusInternalServerError, "An error occurred during login.")
		return
	}

	h.setCookie(c, id, h.Cookie.TTLHours*3600)
	util.Redirect(c, http.StatusOK, "/todos")
}

// Logout destroys the session (if any) and sends the browser back to
// the login page. It succeeds even without a live session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(h.Cookie.CookieName); err == nil && id != "" {
		if err := h.Sessions.Destroy(id); err != nil {
			log.Printf("destroy session: %v", err)
		}
	}
	h.setCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cookie.CookieName, value, maxAge, "/", "", h.Cookie.Secure, true)
}
