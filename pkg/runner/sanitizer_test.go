package runner

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"Clean", "select 2", "select 2", nil},
		{"Strips ANSI Escape", "\x1b[31mconfirm", "[31mconfirm", nil},
		{"Keeps Tab", "s\t1", "s\t1", nil},
		{"Strips Bell", "c\a", "c", nil},
		{"Invalid UTF8", "\xff", "", ErrInvalidUTF8},
		{"Too Large", strings.Repeat("a", DefaultMaxInputSize+1), "", ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSanitizeInput_EnvLimit(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "4")

	if _, err := SanitizeInput("12345"); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("expected ErrInputTooLarge, got %v", err)
	}
	if _, err := SanitizeInput("1234"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
