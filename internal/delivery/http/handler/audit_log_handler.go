package handler

import (
	"errors"
	"net/http"

	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetAuditLog handles getting one audit entry
// @Summary Get audit log by ID
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param id path int true "Audit log ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /audit-logs/{id} [get]
func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, ok := pathID(w, r, "id", "audit log")
	if !ok {
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), int64(auditLogID))
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

// GetAllAuditLogs handles listing audit entries, newest first
// @Summary List audit logs
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := listQuery(r)

	auditLogs, total, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs, meta(query, total))
}
