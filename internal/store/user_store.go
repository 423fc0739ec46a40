package store

import (
	"errors"
	"fmt"
	"strings"

	"todolist/internal/models"
	"todolist/internal/util"

	"gorm.io/gorm"
)

// UserStore persists user identity records. Usernames and emails are
// globally unique; password hashes never leave this store in plaintext form.
type UserStore struct {
	DB     *gorm.DB
	Hasher *util.PasswordHasher
}

func NewUserStore(db *gorm.DB, hasher *util.PasswordHasher) *UserStore {
	return &UserStore{DB: db, Hasher: hasher}
}

// Register hashes the password and persists a new user, returning its id.
// The write is confirmed before returning, so callers may safely report
// success to the client. Duplicate username/email fail with the matching
// sentinel error.
func (s *UserStore) Register(username, email, password string) (uint, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return 0, ErrDuplicateEmail
	}

	if err := s.DB.Model(&models.User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return 0, ErrDuplicateUsername
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

// FindByEmail returns the user with the given email, or ErrUserNotFound.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// VerifyPassword reports whether the plaintext attempt matches the
// stored hash for this user.
func (s *UserStore) VerifyPassword(user *models.User, password string) bool {
	return s.Hasher.Verify(password, user.PasswordHash)
}
