package store

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "rfc3339",
			input: "2025-03-15T10:30:00Z",
			want:  "2025-03-15T10:30:00Z",
		},
		{
			name:  "rfc3339 with offset normalized to utc",
			input: "2025-03-15T12:30:00+02:00",
			want:  "2025-03-15T10:30:00Z",
		},
		{
			name:  "naive datetime treated as utc",
			input: "2025-03-01T00:00:00",
			want:  "2025-03-01T00:00:00Z",
		},
		{
			name:  "bare date",
			input: "2025-03-15",
			want:  "2025-03-15T00:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error: %v", tt.input, err)
			}
			if got == nil {
				t.Fatalf("ParseTimestamp(%q) returned nil", tt.input)
			}
			if formatted := got.UTC().Format(time.RFC3339); formatted != tt.want {
				t.Fatalf("ParseTimestamp(%q) = %s, want %s", tt.input, formatted, tt.want)
			}
		})
	}

	t.Run("empty means no timestamp", func(t *testing.T) {
		got, err := ParseTimestamp("")
		if err != nil || got != nil {
			t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
		}
	})

	t.Run("whitespace means no timestamp", func(t *testing.T) {
		got, err := ParseTimestamp("   ")
		if err != nil || got != nil {
			t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
		}
	})

	t.Run("garbage is invalid input", func(t *testing.T) {
		_, err := ParseTimestamp("next tuesday")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})
}
