package repository

import (
	"testing"
	"time"

	"sistema-provale/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoricoBeneficiarioRepository_DeleteCascadesToDatosObstetricos(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	parentesco := entity.Parentesco{Descripcion: "Titular"}
	require.NoError(t, db.Create(&parentesco).Error)
	tipo := entity.TipoBeneficio{Descripcion: "MADRE GESTANTE", Prioridad: 1}
	require.NoError(t, db.Create(&tipo).Error)

	beneficiarioRepo := NewBeneficiarioRepository()
	historicoRepo := NewHistoricoBeneficiarioRepository()
	datosRepo := NewDatosObstetricosRepository()

	beneficiario := &entity.Beneficiario{
		CodPersona:    f.Persona.CodPersona,
		CodSocio:      f.Socio.CodSocio,
		CodParentesco: parentesco.CodParentesco,
	}
	require.NoError(t, beneficiarioRepo.Create(db, beneficiario))

	historico := &entity.HistoricoBeneficiario{
		CodTipoBeneficio: tipo.CodTipoBeneficio,
		CodBeneficiario:  beneficiario.CodBeneficiario,
		CodEstado:        f.Estado.CodEstado,
	}
	require.NoError(t, historicoRepo.Create(db, historico))

	fum := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	datos := &entity.DatosObstetricos{
		CodHistoricoBeneficiario: historico.CodHistoricoBeneficiario,
		FechaUltimaMenstruacion:  &fum,
	}
	require.NoError(t, datosRepo.Save(db, datos))

	found, err := datosRepo.FindByHistoricoID(db, historico.CodHistoricoBeneficiario)
	require.NoError(t, err)
	require.NotNil(t, found)

	affected, err := historicoRepo.Delete(db, historico.CodHistoricoBeneficiario)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	gone, err := datosRepo.FindByHistoricoID(db, historico.CodHistoricoBeneficiario)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// the beneficiary itself is untouched
	still, err := beneficiarioRepo.FindByID(db, beneficiario.CodBeneficiario)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestDatosObstetricosRepository_SaveUpdatesInPlace(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	parentesco := entity.Parentesco{Descripcion: "Titular"}
	require.NoError(t, db.Create(&parentesco).Error)
	tipo := entity.TipoBeneficio{Descripcion: "MADRE LACTANTE", Prioridad: 2}
	require.NoError(t, db.Create(&tipo).Error)
	beneficiario := entity.Beneficiario{CodPersona: f.Persona.CodPersona, CodSocio: f.Socio.CodSocio, CodParentesco: parentesco.CodParentesco}
	require.NoError(t, db.Create(&beneficiario).Error)
	historico := entity.HistoricoBeneficiario{CodTipoBeneficio: tipo.CodTipoBeneficio, CodBeneficiario: beneficiario.CodBeneficiario, CodEstado: f.Estado.CodEstado}
	require.NoError(t, db.Create(&historico).Error)

	repo := NewDatosObstetricosRepository()
	datos := &entity.DatosObstetricos{CodHistoricoBeneficiario: historico.CodHistoricoBeneficiario}
	require.NoError(t, repo.Save(db, datos))

	parto := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)
	datos.FechaDeParto = &parto
	require.NoError(t, repo.Save(db, datos))

	var count int64
	require.NoError(t, db.Model(&entity.DatosObstetricos{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByHistoricoID(db, historico.CodHistoricoBeneficiario)
	require.NoError(t, err)
	require.NotNil(t, found.FechaDeParto)
	assert.True(t, parto.Equal(*found.FechaDeParto))
}

func TestPersonaRepository_FindAllSearch(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	repo := NewPersonaRepository()

	otra := &entity.Persona{
		Nombres:         "Juana",
		ApellidoPaterno: "Apaza",
		ApellidoMaterno: "Condori",
		DNI:             "41999888",
		Sexo:            entity.SexoFemenino,
		FechaNacimiento: time.Date(1990, time.July, 9, 0, 0, 0, 0, time.UTC),
		CodSectorZona:   f.SectorZona.CodSectorZona,
		Direccion:       "Av. Grau 45",
	}
	require.NoError(t, repo.Create(db, otra))

	all, total, err := repo.FindAll(db, &entity.PersonaFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, all, 2)
	assert.Equal(t, "Apaza", all[0].ApellidoPaterno)

	byName, total, err := repo.FindAll(db, &entity.PersonaFilter{Search: "QUISPE", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byName, 1)
	assert.Equal(t, f.Persona.CodPersona, byName[0].CodPersona)

	byDNI, _, err := repo.FindAll(db, &entity.PersonaFilter{Search: "4199", Limit: 10})
	require.NoError(t, err)
	require.Len(t, byDNI, 1)
	assert.Equal(t, otra.CodPersona, byDNI[0].CodPersona)
}
