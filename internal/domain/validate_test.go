package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "plain", username: "alice"},
		{name: "minimum length", username: "abc"},
		{name: "maximum length", username: strings.Repeat("a", 64)},
		{name: "symbols allowed", username: "alice_b-99!"},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 65), wantErr: true},
		{name: "leading space", username: " alice", wantErr: true},
		{name: "trailing space", username: "alice ", wantErr: true},
		{name: "interior space", username: "al ice", wantErr: true},
		{name: "control char", username: "al\tice", wantErr: true},
		{name: "non ascii", username: "ålice", wantErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateUsername(tc.username)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("want ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "plain", password: "correct horse battery"},
		{name: "minimum length", password: "12345678"},
		{name: "maximum length", password: strings.Repeat("p", 72)},
		{name: "empty", password: "", wantErr: true},
		{name: "too short", password: "1234567", wantErr: true},
		{name: "beyond hash input limit", password: strings.Repeat("p", 73), wantErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(tc.password)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("want ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
