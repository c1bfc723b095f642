package repository

import (
	"errors"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type beneficiarioRepository struct{}

func NewBeneficiarioRepository() domainRepo.BeneficiarioRepository {
	return &beneficiarioRepository{}
}

func (r *beneficiarioRepository) Create(db *gorm.DB, beneficiario *entity.Beneficiario) error {
	return db.Omit(clause.Associations).Create(beneficiario).Error
}

func (r *beneficiarioRepository) FindAll(db *gorm.DB, socioID *int) ([]entity.Beneficiario, error) {
	var beneficiarios []entity.Beneficiario
	query := db.Preload("Persona").Preload("Parentesco").Preload("Socio.Persona")
	if socioID != nil {
		query = query.Where(`"codSocio" = ?`, *socioID)
	}
	if err := query.Order(`"fechaRegistro" DESC`).Find(&beneficiarios).Error; err != nil {
		return nil, err
	}
	return beneficiarios, nil
}

func (r *beneficiarioRepository) FindByID(db *gorm.DB, id int) (*entity.Beneficiario, error) {
	var beneficiario entity.Beneficiario
	err := db.Preload("Persona").Preload("Parentesco").Preload("Socio.Persona").
		Where(`"codBeneficiario" = ?`, id).
		First(&beneficiario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &beneficiario, nil
}

func (r *beneficiarioRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codBeneficiario" = ?`, id).Delete(&entity.Beneficiario{})
	return result.RowsAffected, result.Error
}

func (r *beneficiarioRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Beneficiario{}).Count(&total).Error
	return total, err
}

type historicoBeneficiarioRepository struct{}

func NewHistoricoBeneficiarioRepository() domainRepo.HistoricoBeneficiarioRepository {
	return &historicoBeneficiarioRepository{}
}

func (r *historicoBeneficiarioRepository) Create(db *gorm.DB, historico *entity.HistoricoBeneficiario) error {
	return db.Omit(clause.Associations).Create(historico).Error
}

func (r *historicoBeneficiarioRepository) FindByBeneficiarioID(db *gorm.DB, beneficiarioID int) ([]entity.HistoricoBeneficiario, error) {
	var historicos []entity.HistoricoBeneficiario
	err := db.Preload("TipoBeneficio").Preload("Estado").Preload("MotivoInhabilitacion").
		Where(`"codBeneficiario" = ?`, beneficiarioID).
		Order(`"fechaInicio" DESC`).
		Find(&historicos).Error
	if err != nil {
		return nil, err
	}
	return historicos, nil
}

func (r *historicoBeneficiarioRepository) FindByID(db *gorm.DB, id int) (*entity.HistoricoBeneficiario, error) {
	var historico entity.HistoricoBeneficiario
	err := db.Preload("TipoBeneficio").Preload("Estado").Preload("MotivoInhabilitacion").
		Where(`"codHistoricoBeneficiario" = ?`, id).
		First(&historico).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &historico, nil
}

func (r *historicoBeneficiarioRepository) Update(db *gorm.DB, historico *entity.HistoricoBeneficiario) error {
	return db.Omit(clause.Associations).Save(historico).Error
}

func (r *historicoBeneficiarioRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codHistoricoBeneficiario" = ?`, id).Delete(&entity.HistoricoBeneficiario{})
	return result.RowsAffected, result.Error
}

type datosObstetricosRepository struct{}

func NewDatosObstetricosRepository() domainRepo.DatosObstetricosRepository {
	return &datosObstetricosRepository{}
}

func (r *datosObstetricosRepository) FindByHistoricoID(db *gorm.DB, historicoID int) (*entity.DatosObstetricos, error) {
	var datos entity.DatosObstetricos
	err := db.Where(`"codHistoricoBeneficiario" = ?`, historicoID).First(&datos).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &datos, nil
}

// Save inserts when the row has no key yet and updates every column otherwise
func (r *datosObstetricosRepository) Save(db *gorm.DB, datos *entity.DatosObstetricos) error {
	return db.Omit(clause.Associations).Save(datos).Error
}
