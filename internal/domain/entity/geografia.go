package entity

import "time"

type Zona struct {
	CodZona       int       `gorm:"column:codZona;primaryKey;autoIncrement" json:"cod_zona"`
	Descripcion   *string   `gorm:"column:descripcion;type:varchar(100);uniqueIndex" json:"descripcion,omitempty"`
	FechaRegistro time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
}

func (Zona) TableName() string {
	return "Zonas"
}

type Sector struct {
	CodSector     int       `gorm:"column:codSector;primaryKey;autoIncrement" json:"cod_sector"`
	Descripcion   *string   `gorm:"column:descripcion;type:varchar(100);uniqueIndex" json:"descripcion,omitempty"`
	FechaRegistro time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
}

func (Sector) TableName() string {
	return "Sectores"
}

// SectorZona is an addressable sub-region: one row per (zona, sector) pair.
// The sector FK column is fkCodSector so it does not collide with Sectores.codSector.
type SectorZona struct {
	CodSectorZona int       `gorm:"column:codSectorZona;primaryKey;autoIncrement" json:"cod_sector_zona"`
	CodZona       int       `gorm:"column:codZona;not null;uniqueIndex:idx_sectores_zona_par" json:"cod_zona"`
	CodSector     int       `gorm:"column:fkCodSector;not null;uniqueIndex:idx_sectores_zona_par" json:"cod_sector"`
	FechaRegistro time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`

	// Relationships
	Zona   *Zona   `gorm:"foreignKey:CodZona;references:CodZona;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"zona,omitempty"`
	Sector *Sector `gorm:"foreignKey:CodSector;references:CodSector;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"sector,omitempty"`
}

func (SectorZona) TableName() string {
	return "SectoresZona"
}

// Etiqueta renders "zona / sector" when both sides are loaded
func (sz *SectorZona) Etiqueta() string {
	zona, sector := "", ""
	if sz.Zona != nil && sz.Zona.Descripcion != nil {
		zona = *sz.Zona.Descripcion
	}
	if sz.Sector != nil && sz.Sector.Descripcion != nil {
		sector = *sz.Sector.Descripcion
	}
	return zona + " / " + sector
}
