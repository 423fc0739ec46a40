package util

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateUsername checks username rules: 3-20 letters, digits or underscores.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is empty")
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username must be 3-20 letters, digits or underscores")
	}
	return nil
}

// ValidateEmail checks basic email shape and length.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if len(email) > 255 {
		return fmt.Errorf("email too long, max 255 characters")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword checks password length (8-64).
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password too short, min 8 characters")
	}
	if len(password) > 64 {
		return fmt.Errorf("password too long, max 64 characters")
	}
	return nil
}

// ValidateContent checks todo content: non-empty after trimming, bounded length.
func ValidateContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("content is empty")
	}
	if len(trimmed) > 1000 {
		return fmt.Errorf("content too long, max 1000 characters")
	}
	return nil
}
