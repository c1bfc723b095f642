package converter

import (
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
)

// UsuarioToResponse converts a Usuario entity, resolving the role name with defaultRole
func UsuarioToResponse(u *entity.Usuario, defaultRole string) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}

	response := &dto.UsuarioResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Nombres:         u.Nombres,
		ApellidoPaterno: u.ApellidoPaterno,
		ApellidoMaterno: u.ApellidoMaterno,
		NombreCompleto:  u.NombreCompleto(),
		NombreCorto:     u.NombreCorto(),
		Rol:             u.NombreRol(defaultRole),
		IsSuperuser:     u.IsSuperuser,
		IsStaff:         u.IsStaff,
		LastLogin:       u.LastLogin,
		DateJoined:      u.DateJoined,
	}
	if u.Estado != nil {
		response.Estado = u.Estado.Abreviatura
	}

	return response
}

// AuditLogToResponse converts a AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
	if log.Usuario != nil {
		response.Usuario = log.Usuario.Username
	}

	return response
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
