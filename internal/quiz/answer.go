package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/verte-zerg/timequiz/internal/clocktime"
)

// ErrMalformedNumber is returned when an answer field is not an integer.
var ErrMalformedNumber = errors.New("malformed number")

// ParseNumber parses a single integer answer field.
func ParseNumber(field, token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, token, ErrMalformedNumber)
	}
	return n, nil
}

// ParseAnswer parses "H:M" or "H M" and normalizes it onto the clock.
func ParseAnswer(text string) (clocktime.TimeOfDay, error) {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
	if len(parts) != 2 {
		return clocktime.TimeOfDay{}, fmt.Errorf("expected hour and minute, got %q: %w", text, ErrMalformedNumber)
	}
	hour, err := ParseNumber("hour", parts[0])
	if err != nil {
		return clocktime.TimeOfDay{}, err
	}
	minute, err := ParseNumber("minute", parts[1])
	if err != nil {
		return clocktime.TimeOfDay{}, err
	}
	return clocktime.Normalize(hour, minute), nil
}
