package repository

import (
	"sistema-provale/internal/domain/entity"

	"gorm.io/gorm"
)

type BeneficiarioRepository interface {
	Create(db *gorm.DB, beneficiario *entity.Beneficiario) error
	FindAll(db *gorm.DB, socioID *int) ([]entity.Beneficiario, error)
	FindByID(db *gorm.DB, id int) (*entity.Beneficiario, error)
	Delete(db *gorm.DB, id int) (int64, error)
	Count(db *gorm.DB) (int64, error)
}

type HistoricoBeneficiarioRepository interface {
	Create(db *gorm.DB, historico *entity.HistoricoBeneficiario) error
	FindByBeneficiarioID(db *gorm.DB, beneficiarioID int) ([]entity.HistoricoBeneficiario, error)
	FindByID(db *gorm.DB, id int) (*entity.HistoricoBeneficiario, error)
	Update(db *gorm.DB, historico *entity.HistoricoBeneficiario) error
	Delete(db *gorm.DB, id int) (int64, error)
}

type DatosObstetricosRepository interface {
	FindByHistoricoID(db *gorm.DB, historicoID int) (*entity.DatosObstetricos, error)
	Save(db *gorm.DB, datos *entity.DatosObstetricos) error
}
