package store

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// The three caller-correctable failure modes of the store layer. Anything
// else (connectivity, SQL errors) is surfaced unchanged and treated as
// fatal to the in-flight operation.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// InvalidInputf, NotFoundf and Conflictf build taxonomy errors for store
// implementations living outside this package.
func InvalidInputf(format string, args ...any) error { return invalidInputf(format, args...) }
func NotFoundf(format string, args ...any) error     { return notFoundf(format, args...) }
func Conflictf(format string, args ...any) error     { return conflictf(format, args...) }

// ParseTimestamp parses an optional ISO-8601 timestamp. Timezone-naive
// values are treated as UTC. An empty string is no timestamp; anything
// unparseable is an ErrInvalidInput.
func ParseTimestamp(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			ts = ts.UTC()
			return &ts, nil
		}
	}
	return nil, invalidInputf("unparseable timestamp %q", value)
}
