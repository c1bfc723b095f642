package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog is an append-only trail of writes made through the API
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CodUsuario *int      `gorm:"column:codUsuario;index" json:"cod_usuario,omitempty"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata   JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Usuario *Usuario `gorm:"foreignKey:CodUsuario;references:ID;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"usuario,omitempty"`
}

func (AuditLog) TableName() string {
	return "AuditLogs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionUsuarioLogin     = "usuario.login"
	AuditActionUsuarioLogout    = "usuario.logout"
	AuditActionUsuarioCreate    = "usuario.create"
	AuditActionEstadoDelete     = "estado.delete"
	AuditActionCatalogoDelete   = "catalogo.delete"
	AuditActionAsociacionDelete = "asociacion.delete"
	AuditActionMovimientoCreate = "movimiento.create"
	AuditActionPecosaCreate     = "pecosa.create"
	AuditActionPecosaDelete     = "pecosa.delete"
	AuditActionHistoricoClose   = "historico.close"
	AuditActionHistoricoDelete  = "historico.delete"
	AuditActionObstetricoUpsert = "obstetrico.upsert"
)
