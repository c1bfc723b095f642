package usecase

import (
	"time"

	"sistema-provale/internal/delivery/dto"
)

// parseDate parses a YYYY-MM-DD value; an empty string yields nil
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return nil, ErrFechaInvalida
	}
	return &t, nil
}

// parseDateOr parses value or falls back to def when it is empty
func parseDateOr(value string, def time.Time) (time.Time, error) {
	t, err := parseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return def, nil
	}
	return *t, nil
}
