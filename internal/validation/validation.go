// Package validation holds the pure field checks that run before any store access.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Error variables
var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidDate   = errors.New("invalid date")
)

// DateLayout is the only accepted layout for inbound date fields.
const DateLayout = "2006-01-02"

// RequireField checks that a required field is non-empty.
func RequireField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return nil
}

// ParseDuration converts a raw duration field into a positive integer.
func ParseDuration(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: duration", ErrMissingField)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: duration", ErrInvalidNumber)
	}
	return n, nil
}

// ParseDate converts a raw date field into a calendar date.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, raw)
	}
	return d, nil
}

// ParseLimit converts a raw limit parameter into a non-negative result cap.
// An empty value means unbounded and normalizes to zero.
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: limit", ErrInvalidNumber)
	}
	return n, nil
}
