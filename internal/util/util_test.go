package util

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	t.Run("length and alphabet", func(t *testing.T) {
		t.Parallel()

		code, err := GenerateCode(8)
		if err != nil {
			t.Fatalf("GenerateCode(8) returned error: %v", err)
		}
		if len(code) != 8 {
			t.Fatalf("GenerateCode(8) length = %d, want 8", len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("GenerateCode produced %q outside alphabet", r)
			}
		}
	})

	t.Run("rejects non-positive length", func(t *testing.T) {
		t.Parallel()

		if _, err := GenerateCode(0); err == nil {
			t.Fatal("GenerateCode(0) expected error, got nil")
		}
	})

	t.Run("no collisions across many draws", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]struct{}, 10000)
		for range 10000 {
			code, err := GenerateCode(8)
			if err != nil {
				t.Fatalf("GenerateCode(8) returned error: %v", err)
			}
			if _, ok := seen[code]; ok {
				t.Fatalf("GenerateCode produced duplicate %s", code)
			}
			seen[code] = struct{}{}
		}
	})
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
