package store

import (
	"errors"
	"fmt"
	"strings"

	"todolist/internal/models"

	"gorm.io/gorm"
)

// TodoStore persists todo records. Every operation is scoped by owner:
// the ownership check runs before any mutation, so a caller can never
// modify or delete another user's todo.
type TodoStore struct {
	DB *gorm.DB
}

func NewTodoStore(db *gorm.DB) *TodoStore {
	return &TodoStore{DB: db}
}

// TodoUpdate carries the mutable fields of a todo. Nil means "leave as is".
type TodoUpdate struct {
	Content   *string
	Completed *bool
}

// Create persists a new todo for the given owner. Content must be
// non-empty after trimming; completed starts false.
func (s *TodoStore) Create(ownerID uint, content string) (*models.Todo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidContent
	}

	todo := models.Todo{
		UserID:    ownerID,
		Content:   content,
		Completed: false,
	}
	if err := s.DB.Create(&todo).Error; err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return &todo, nil
}

// ListByOwner returns the owner's todos, newest first. The slice is
// empty (never nil) when the owner has none.
func (s *TodoStore) ListByOwner(ownerID uint) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	err := s.DB.Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// get loads a todo and enforces ownership: ErrTodoNotFound when absent,
// ErrForbidden when it belongs to someone else.
func (s *TodoStore) get(id, ownerID uint) (*models.Todo, error) {
	var todo models.Todo
	if err := s.DB.First(&todo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	if todo.UserID != ownerID {
		return nil, ErrForbidden
	}
	return &todo, nil
}

// Update applies the given changes to the owner's todo and returns the
// updated record. Content, when present, must still be non-empty.
func (s *TodoStore) Update(id, ownerID uint, upd TodoUpdate) (*models.Todo, error) {
	todo, err := s.get(id, ownerID)
	if err != nil {
		return nil, err
	}

	if upd.Content != nil {
		content := strings.TrimSpace(*upd.Content)
		if content == "" {
			return nil, ErrInvalidContent
		}
		todo.Content = content
	}
	if upd.Completed != nil {
		todo.Completed = *upd.Completed
	}

	if err := s.DB.Save(todo).Error; err != nil {
		return nil, fmt.Errorf("save todo: %w", err)
	}
	return todo, nil
}

// Delete removes the owner's todo.
func (s *TodoStore) Delete(id, ownerID uint) error {
	todo, err := s.get(id, ownerID)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(todo).Error; err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
