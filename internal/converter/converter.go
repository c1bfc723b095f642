package converter

import (
	"time"

	"sistema-provale/internal/delivery/dto"
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.DateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.DateLayout)
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
