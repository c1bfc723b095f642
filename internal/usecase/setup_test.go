package usecase

import (
	"context"
	"errors"
	"testing"

	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/repository"
	"sistema-provale/internal/service"
	"sistema-provale/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuditService() service.AuditService {
	return service.NewAuditService(testutil.NewLogger(), repository.NewAuditLogRepository())
}

// failingAuditService rejects every write, as a broken audit table would
type failingAuditService struct{}

var errAuditUnavailable = errors.New("audit table unavailable")

func (failingAuditService) LogCreate(context.Context, *gorm.DB, *int, string, string, int, interface{}) error {
	return errAuditUnavailable
}

func (failingAuditService) LogUpdate(context.Context, *gorm.DB, *int, string, string, int, interface{}, interface{}) error {
	return errAuditUnavailable
}

func (failingAuditService) LogDelete(context.Context, *gorm.DB, *int, string, string, int, interface{}) error {
	return errAuditUnavailable
}

func (failingAuditService) LogEvent(context.Context, *gorm.DB, *int, string, entity.JSON) error {
	return errAuditUnavailable
}

func auditCount(t *testing.T, db *gorm.DB, action string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&entity.AuditLog{}).Where("action = ?", action).Count(&n).Error)
	return n
}
