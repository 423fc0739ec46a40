package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"todolist/internal/models"

	"gorm.io/gorm"
)

const (
	sessionIDBytes       = 32
	defaultSweepInterval = 5 * time.Minute
)

// ErrAbsent is returned by Resolve when no live session matches the id.
var ErrAbsent = errors.New("session absent")

// Manager owns all server-side session state. It is created once at
// process start and closed at shutdown; sessions live in the database so
// concurrent requests share nothing beyond single-row reads and writes.
type Manager struct {
	db    *gorm.DB
	ttl   time.Duration
	sweep *time.Ticker
	done  chan struct{}
}

// NewManager starts the background sweep that removes expired sessions.
func NewManager(db *gorm.DB, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	m := &Manager{
		db:    db,
		ttl:   ttl,
		sweep: time.NewTicker(defaultSweepInterval),
		done:  make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

// Create issues a new session for the given user and returns its opaque
// identifier. The id is 32 bytes from crypto/rand, so it carries no
// information about the user and cannot be guessed.
func (m *Manager) Create(userID uint, username, email string) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	sess := models.Session{
		ID:        id,
		UserID:    userID,
		Username:  username,
		Email:     email,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.db.Create(&sess).Error; err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Resolve looks up a session by id. Expired sessions are treated as
// absent and removed on the way out. Resolve has no other side effects.
func (m *Manager) Resolve(id string) (*models.Session, error) {
	if id == "" {
		return nil, ErrAbsent
	}

	var sess models.Session
	err := m.db.Where("id = ?", id).First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAbsent
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = m.Destroy(id)
		return nil, ErrAbsent
	}
	return &sess, nil
}

// Destroy removes the session. Destroying an absent session is not an
// error, so logout is always safe to call.
func (m *Manager) Destroy(id string) error {
	if id == "" {
		return nil
	}
	if err := m.db.Where("id = ?", id).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Close stops the background sweep. Call once at shutdown.
func (m *Manager) Close() {
	m.sweep.Stop()
	close(m.done)
}

func (m *Manager) sweepLoop() {
	for {
		select {
		case <-m.done:
			return
		case <-m.sweep.C:
			res := m.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
			if res.Error != nil {
				log.Printf("session sweep: %v", res.Error)
			}
		}
	}
}

func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
