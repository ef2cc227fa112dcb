package utils

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantOK   bool
	}{
		{name: "too_short", username: "ab", wantOK: false},
		{name: "too_long", username: strings.Repeat("a", 65), wantOK: false},
		{name: "invalid_charset", username: "ab-cd", wantOK: false},
		{name: "pure_number", username: "123456", wantOK: false},
		{name: "valid", username: "user_123", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidateUsername(tt.username)
			if ok != tt.wantOK {
				t.Fatalf("ValidateUsername(%q) ok=%v want=%v", tt.username, ok, tt.wantOK)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{name: "too_short", password: "a1b2c3", wantOK: false},
		{name: "no_number", password: "abcdefgh", wantOK: false},
		{name: "no_letter", password: "12345678", wantOK: false},
		{name: "non_ascii", password: "abc12345你好", wantOK: false},
		{name: "valid_simple", password: "abc12345", wantOK: true},
		{name: "valid_with_punct", password: "Abc12345!@", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidatePassword(tt.password)
			if ok != tt.wantOK {
				t.Fatalf("ValidatePassword(%q) ok=%v want=%v", tt.password, ok, tt.wantOK)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		wantOK bool
	}{
		{name: "empty", email: "", wantOK: false},
		{name: "missing_at", email: "a.example.com", wantOK: false},
		{name: "missing_tld", email: "a@b", wantOK: false},
		{name: "too_long", email: strings.Repeat("a", 250) + "@example.com", wantOK: false},
		{name: "valid", email: "a.b+tag@example.com", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidateEmail(tt.email)
			if ok != tt.wantOK {
				t.Fatalf("ValidateEmail(%q) ok=%v want=%v", tt.email, ok, tt.wantOK)
			}
		})
	}
}
