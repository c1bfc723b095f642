package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestTipoBeneficio_AdmiteEdad(t *testing.T) {
	infante := &TipoBeneficio{Descripcion: "NIÑO 0-3", EdadMinima: intPtr(0), EdadMaxima: intPtr(3)}
	assert.True(t, infante.AdmiteEdad(0))
	assert.True(t, infante.AdmiteEdad(3))
	assert.False(t, infante.AdmiteEdad(4))

	abierto := &TipoBeneficio{Descripcion: "ADULTO MAYOR", EdadMinima: intPtr(65)}
	assert.False(t, abierto.AdmiteEdad(64))
	assert.True(t, abierto.AdmiteEdad(90))
}

func TestTipoBeneficio_EsObstetrico(t *testing.T) {
	assert.True(t, (&TipoBeneficio{Descripcion: "Madre gestante"}).EsObstetrico())
	assert.True(t, (&TipoBeneficio{Descripcion: "MADRE LACTANTE"}).EsObstetrico())
	assert.True(t, (&TipoBeneficio{Descripcion: "Gestación"}).EsObstetrico())
	assert.True(t, (&TipoBeneficio{Descripcion: "Periodo de lactancia"}).EsObstetrico())
	assert.False(t, (&TipoBeneficio{Descripcion: "Adulto mayor"}).EsObstetrico())
	assert.False(t, (&TipoBeneficio{Descripcion: "NIÑO 0-6 AÑOS"}).EsObstetrico())
}

func TestHistoricoBeneficiario_Cerrar(t *testing.T) {
	inicio := fecha(2025, time.January, 10)

	t.Run("closes an open period", func(t *testing.T) {
		h := &HistoricoBeneficiario{FechaInicio: inicio}
		fin := fecha(2025, time.June, 30)

		require.NoError(t, h.Cerrar(fin, intPtr(2)))
		assert.False(t, h.Abierto())
		assert.Equal(t, fin, *h.FechaTermino)
		assert.Equal(t, 2, *h.CodMotivoInhabilitacion)
	})

	t.Run("rejects closing twice", func(t *testing.T) {
		fin := fecha(2025, time.June, 30)
		h := &HistoricoBeneficiario{FechaInicio: inicio, FechaTermino: &fin}

		assert.ErrorIs(t, h.Cerrar(fin, nil), ErrPeriodoCerrado)
	})

	t.Run("closes on the start day regardless of time", func(t *testing.T) {
		h := &HistoricoBeneficiario{FechaInicio: time.Date(2025, time.January, 10, 15, 30, 0, 0, time.UTC)}

		assert.NoError(t, h.Cerrar(inicio, nil))
	})

	t.Run("rejects end before start", func(t *testing.T) {
		h := &HistoricoBeneficiario{FechaInicio: inicio}

		assert.ErrorIs(t, h.Cerrar(fecha(2024, time.December, 31), nil), ErrRangoFechasInvalido)
		assert.True(t, h.Abierto())
	})
}

func TestReconocimiento_Vigencia(t *testing.T) {
	r := &Reconocimiento{FechaInicio: fecha(2024, time.January, 1), FechaFin: fecha(2025, time.December, 31)}

	require.NoError(t, r.ValidarVigencia())
	assert.True(t, r.VigenteEn(time.Date(2025, time.December, 31, 18, 0, 0, 0, time.UTC)))
	assert.False(t, r.VigenteEn(fecha(2026, time.January, 1)))

	r.FechaFin = fecha(2023, time.December, 31)
	assert.ErrorIs(t, r.ValidarVigencia(), ErrRangoFechasInvalido)
}

func TestSectorZona_Etiqueta(t *testing.T) {
	zona, sector := "Cercado", "Sector 3"
	sz := &SectorZona{Zona: &Zona{Descripcion: &zona}, Sector: &Sector{Descripcion: &sector}}

	assert.Equal(t, "Cercado / Sector 3", sz.Etiqueta())
}
