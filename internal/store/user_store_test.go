package store

import (
	"errors"
	"testing"
)

func TestUserStore_RegisterAndFind(t *testing.T) {
	s := newTestUserStore(t)

	id := mustRegister(t, s, "alice", "a@x.com")
	if id == 0 {
		t.Fatal("Register() returned id 0")
	}

	user, err := s.FindByEmail("a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if user.ID != id || user.Username != "alice" || user.Email != "a@x.com" {
		t.Errorf("FindByEmail() = %+v, want id=%d username=alice email=a@x.com", user, id)
	}
	if user.PasswordHash == "" || user.PasswordHash == "password1" {
		t.Errorf("stored password hash %q is not opaque", user.PasswordHash)
	}

	if !s.VerifyPassword(user, "password1") {
		t.Error("VerifyPassword() with correct password = false")
	}
	if s.VerifyPassword(user, "wrongpass1") {
		t.Error("VerifyPassword() with wrong password = true")
	}
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	s := newTestUserStore(t)
	mustRegister(t, s, "alice", "a@x.com")

	// a different username does not rescue a duplicate email
	_, err := s.Register("bob", "a@x.com", "password1")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Register() with duplicate email error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	s := newTestUserStore(t)
	mustRegister(t, s, "alice", "a@x.com")

	_, err := s.Register("alice", "b@x.com", "password1")
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Register() with duplicate username error = %v, want ErrDuplicateUsername", err)
	}

	// uniqueness is case-insensitive
	_, err = s.Register("ALICE", "c@x.com", "password1")
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Register() with duplicate username (different case) error = %v, want ErrDuplicateUsername", err)
	}
}

func TestUserStore_FindByEmail_NotFound(t *testing.T) {
	s := newTestUserStore(t)

	_, err := s.FindByEmail("nobody@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("FindByEmail() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserStore_FailedLoginLeavesUserUnchanged(t *testing.T) {
	s := newTestUserStore(t)
	mustRegister(t, s, "alice", "a@x.com")

	before, err := s.FindByEmail("a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}

	s.VerifyPassword(before, "wrongpass1")

	after, err := s.FindByEmail("a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if after.PasswordHash != before.PasswordHash || !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Error("user record changed after a failed password check")
	}
}
