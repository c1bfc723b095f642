package repository

import (
	"errors"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sectorZonaRepository struct{}

func NewSectorZonaRepository() domainRepo.SectorZonaRepository {
	return &sectorZonaRepository{}
}

func (r *sectorZonaRepository) Create(db *gorm.DB, sz *entity.SectorZona) error {
	return db.Omit(clause.Associations).Create(sz).Error
}

func (r *sectorZonaRepository) FindAll(db *gorm.DB) ([]entity.SectorZona, error) {
	var items []entity.SectorZona
	err := db.Preload("Zona").Preload("Sector").
		Order(`"codZona" ASC, "fkCodSector" ASC`).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *sectorZonaRepository) FindByID(db *gorm.DB, id int) (*entity.SectorZona, error) {
	var sz entity.SectorZona
	err := db.Preload("Zona").Preload("Sector").Where(`"codSectorZona" = ?`, id).First(&sz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sz, nil
}

func (r *sectorZonaRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codSectorZona" = ?`, id).Delete(&entity.SectorZona{})
	return result.RowsAffected, result.Error
}
