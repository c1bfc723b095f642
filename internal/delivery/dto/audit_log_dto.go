package dto

import (
	"time"

	"sistema-provale/internal/domain/entity"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Usuario   string      `json:"usuario,omitempty"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}
