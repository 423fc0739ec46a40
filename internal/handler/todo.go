package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"todolist/internal/middleware"
	"todolist/internal/store"
	"todolist/internal/util"

	"github.com/gin-gonic/gin"
)

// TodoHandler serves the todo CRUD endpoints. Every operation is scoped
// to the session's user; ownership violations surface as 403.
type TodoHandler struct {
	Todos *store.TodoStore
}

func NewTodoHandler(todos *store.TodoStore) *TodoHandler {
	return &TodoHandler{Todos: todos}
}

type createTodoReq struct {
	Content string `json:"content" binding:"required"`
}

type updateTodoReq struct {
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}

// Create adds a new todo for the logged-in user.
func (h *TodoHandler) Create(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req createTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.Todos.Create(sess.UserID, req.Content)
	if err != nil {
		if errors.Is(err, store.ErrInvalidContent) {
			util.Message(c, http.StatusBadRequest, "Todo content must not be empty")
		} else {
			log.Printf("create todo: %v", err)
			util.Message(c, http.StatusInternalServerError, "Error adding todo")
		}
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// List returns the logged-in user's todos, newest first.
func (h *TodoHandler) List(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	todos, err := h.Todos.ListByOwner(sess.UserID)
	if err != nil {
		log.Printf("list todos: %v", err)
		util.Message(c, http.StatusInternalServerError, "Error getting todos")
		return
	}

	c.JSON(http.StatusOK, todos)
}

// Update edits content and/or completion state of one of the user's todos.
func (h *TodoHandler) Update(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.Todos.Update(id, sess.UserID, store.TodoUpdate{
		Content:   req.Content,
		Completed: req.Completed,
	})
	if err != nil {
		h.writeTodoError(c, err, "Error updating todo")
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Delete removes one of the user's todos.
func (h *TodoHandler) Delete(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Todos.Delete(id, sess.UserID); err != nil {
		h.writeTodoError(c, err, "Error deleting todo")
		return
	}

	util.Message(c, http.StatusOK, "Todo deleted")
}

func (h *TodoHandler) writeTodoError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrTodoNotFound):
		util.Message(c, http.StatusNotFound, "Todo not found")
	case errors.Is(err, store.ErrForbidden):
		util.Message(c, http.StatusForbidden, "Todo belongs to another user")
	case errors.Is(err, store.ErrInvalidContent):
		util.Message(c, http.StatusBadRequest, "Todo content must not be empty")
	default:
		log.Printf("todo store: %v", err)
		util.Message(c, http.StatusInternalServerError, fallback)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Message(c, http.StatusBadRequest, "Invalid todo id")
		return 0, false
	}
	return uint(id), true
}
