package util

import (
	"strings"
	"testing"
)

func TestValidateUsername_Valid(t *testing.T) {
	testCases := []string{"bob", "alice_99", "User_Name_20", "abc"}

	for _, name := range testCases {
		if err := ValidateUsername(name); err != nil {
			t.Errorf("ValidateUsername(%q) error = %v, want nil", name, err)
		}
	}
}

func TestValidateUsername_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"ab",                              // too short
		strings.Repeat("a", 21),           // too long
		"has space",
		"naïve",
		"semi;colon",
	}

	for _, name := range testCases {
		if err := ValidateUsername(name); err == nil {
			t.Errorf("ValidateUsername(%q) error = nil, want error", name)
		}
	}
}

func TestValidateEmail_Valid(t *testing.T) {
	testCases := []string{
		"a@x.com",
		"alice.smith@example.co.uk",
		"user+tag@mail.org",
	}

	for _, email := range testCases {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"plain",
		"@x.com",
		"a@",
		"a@x",
		"a b@x.com",
		strings.Repeat("a", 250) + "@x.com",
	}

	for _, email := range testCases {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("password1"); err != nil {
		t.Errorf("ValidatePassword(\"password1\") error = %v, want nil", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Error("ValidatePassword(\"short\") error = nil, want error")
	}
	if err := ValidatePassword(strings.Repeat("x", 65)); err == nil {
		t.Error("ValidatePassword() with 65 chars error = nil, want error")
	}
}

func TestValidateContent(t *testing.T) {
	valid := []string{"buy milk", "  trimmed  ", "x"}
	for _, content := range valid {
		if err := ValidateContent(content); err != nil {
			t.Errorf("ValidateContent(%q) error = %v, want nil", content, err)
		}
	}

	invalid := []string{"", "   ", "\t\n", strings.Repeat("y", 1001)}
	for _, content := range invalid {
		if err := ValidateContent(content); err == nil {
			t.Errorf("ValidateContent(%q) error = nil, want error", content)
		}
	}
}
