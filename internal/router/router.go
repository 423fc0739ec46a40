package router

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"todolist/internal/config"
	"todolist/internal/handler"
	"todolist/internal/middleware"
	"todolist/internal/session"
	"todolist/internal/store"
	"todolist/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, static pages and API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, sessions *session.Manager) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	hasher := util.NewPasswordHasher(cfg.Security.BcryptCost)
	users := store.NewUserStore(db, hasher)
	todos := store.NewTodoStore(db)

	authHandler := handler.NewAuthHandler(users, sessions, cfg.Session)
	todoHandler := handler.NewTodoHandler(todos)
	exportHandler := handler.NewExportHandler(todos)

	// static pages (thin collaborators around the JSON API)
	webDir := cfg.Web.Dir
	r.Static("/static", filepath.Join(webDir, "static"))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	r.GET("/login", func(c *gin.Context) {
		c.File(filepath.Join(webDir, "html", "login.html"))
	})
	r.GET("/register", func(c *gin.Context) {
		c.File(filepath.Join(webDir, "html", "register.html"))
	})

	// todos page is only for logged-in users; anonymous browsers go back
	// to the login page instead of getting a JSON 401
	r.GET("/todos", func(c *gin.Context) {
		id, err := c.Cookie(cfg.Session.CookieName)
		if err == nil && id != "" {
			if _, rerr := sessions.Resolve(id); rerr == nil {
				c.File(filepath.Join(webDir, "html", "todos.html"))
				return
			} else if !errors.Is(rerr, session.ErrAbsent) {
				util.Message(c, http.StatusInternalServerError, "An error occurred")
				return
			}
		}
		c.Redirect(http.StatusFound, "/login")
	})

	// auth endpoints (no session required)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// session-gated endpoints
	protected := r.Group("")
	protected.Use(
		middleware.SessionAuth(sessions, cfg.Session.CookieName),
		middleware.AuditLog(db),
	)

	protected.GET("/user-info", handler.UserInfo)
	protected.GET("/api/todos", todoHandler.List)
	protected.POST("/todos", todoHandler.Create)
	protected.PUT("/todos/:id", todoHandler.Update)
	protected.DELETE("/todos/:id", todoHandler.Delete)

	protected.GET("/api/todos/export/csv", exportHandler.ExportCSV)
	protected.GET("/api/todos/export/xlsx", exportHandler.ExportXLSX)

	return r
}

// SessionTTL derives the session lifetime from configuration.
func SessionTTL(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Session.TTLHours) * time.Hour
}
