package repository

import (
	"errors"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type totalRow struct {
	CodPecosa int
	Total     decimal.Decimal
}

type pecosaRepository struct{}

func NewPecosaRepository() domainRepo.PecosaRepository {
	return &pecosaRepository{}
}

func (r *pecosaRepository) Create(db *gorm.DB, pecosa *entity.Pecosa) error {
	return db.Omit(clause.Associations).Create(pecosa).Error
}

func pecosaScope(filter *entity.PecosaFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if filter.CodAsociacion != nil {
			db = db.Where(`"codAsociacion" = ?`, *filter.CodAsociacion)
		}
		if filter.CodEstado != nil {
			db = db.Where(`"codEstado" = ?`, *filter.CodEstado)
		}
		if filter.Numero != "" {
			db = db.Where(`"numeroPecosa" LIKE ?`, filter.Numero+"%")
		}
		return db
	}
}

func (r *pecosaRepository) FindAll(db *gorm.DB, filter *entity.PecosaFilter) ([]entity.Pecosa, int64, error) {
	var pecosas []entity.Pecosa
	var total int64

	if err := db.Model(&entity.Pecosa{}).Scopes(pecosaScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Scopes(pecosaScope(filter)).
		Preload("Asociacion").Preload("Estado").
		Order(`"fechaRegistro" DESC, "codPecosa" DESC`)
	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&pecosas).Error; err != nil {
		return nil, 0, err
	}

	return pecosas, total, nil
}

func (r *pecosaRepository) FindByID(db *gorm.DB, id int) (*entity.Pecosa, error) {
	var pecosa entity.Pecosa
	err := db.Preload("Asociacion").Preload("SocioPresidenta.Persona").Preload("Estado").
		Where(`"codPecosa" = ?`, id).
		First(&pecosa).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pecosa, nil
}

// Delete removes the voucher; its lines go with it through the cascading foreign key
func (r *pecosaRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codPecosa" = ?`, id).Delete(&entity.Pecosa{})
	return result.RowsAffected, result.Error
}

func (r *pecosaRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Pecosa{}).Count(&total).Error
	return total, err
}

func (r *pecosaRepository) Totales(db *gorm.DB, pecosaIDs []int) (map[int]decimal.Decimal, error) {
	totales := make(map[int]decimal.Decimal, len(pecosaIDs))
	if len(pecosaIDs) == 0 {
		return totales, nil
	}

	var rows []totalRow
	err := db.Raw(
		`SELECT d."codPecosa" AS cod_pecosa, SUM(d.cantidad * d."precioUnitario") AS total
		FROM "DetallePecosa" d
		WHERE d."codPecosa" IN ?
		GROUP BY d."codPecosa"`,
		pecosaIDs,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Line prices carry two decimals; SQLite returns the sum as a float
	for _, row := range rows {
		totales[row.CodPecosa] = row.Total.Round(2)
	}
	return totales, nil
}

type detallePecosaRepository struct{}

func NewDetallePecosaRepository() domainRepo.DetallePecosaRepository {
	return &detallePecosaRepository{}
}

func (r *detallePecosaRepository) Create(db *gorm.DB, detalle *entity.DetallePecosa) error {
	return db.Omit(clause.Associations).Create(detalle).Error
}

func (r *detallePecosaRepository) FindByPecosaID(db *gorm.DB, pecosaID int) ([]entity.DetallePecosa, error) {
	var detalles []entity.DetallePecosa
	err := db.Preload("Producto").
		Where(`"codPecosa" = ?`, pecosaID).
		Order(`prioridad ASC, "codDetallePecosa" ASC`).
		Find(&detalles).Error
	if err != nil {
		return nil, err
	}
	return detalles, nil
}
