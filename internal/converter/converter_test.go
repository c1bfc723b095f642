package converter

import (
	"testing"
	"time"

	"sistema-provale/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", formatDate(time.Time{}))
	assert.Equal(t, "2024-02-29", formatDate(date(2024, time.February, 29)))
	assert.Nil(t, formatDatePtr(nil))

	d := date(2023, time.December, 1)
	require.NotNil(t, formatDatePtr(&d))
	assert.Equal(t, "2023-12-01", *formatDatePtr(&d))
}

func TestPersonaToResponse(t *testing.T) {
	persona := &entity.Persona{
		CodPersona:      7,
		Nombres:         "Rosa",
		ApellidoPaterno: "Quispe",
		ApellidoMaterno: "Mamani",
		DNI:             "40123456",
		FechaNacimiento: date(2000, time.March, 15),
	}

	t.Run("detail carries the age", func(t *testing.T) {
		response, err := PersonaToResponse(persona, date(2024, time.May, 20), true)
		require.NoError(t, err)
		assert.Equal(t, "Rosa Quispe Mamani", response.NombreCompleto)
		assert.Equal(t, "2000-03-15", response.FechaNacimiento)
		require.NotNil(t, response.Edad)
		assert.Equal(t, 24, response.Edad.Anios)
		assert.Equal(t, 2, response.Edad.Meses)
		assert.Equal(t, 5, response.Edad.Dias)
	})

	t.Run("list rows skip the age", func(t *testing.T) {
		responses := PersonasToResponses([]entity.Persona{*persona})
		require.Len(t, responses, 1)
		assert.Nil(t, responses[0].Edad)
	})

	t.Run("missing birth date fails", func(t *testing.T) {
		_, err := PersonaToResponse(&entity.Persona{}, date(2024, time.May, 20), true)
		assert.ErrorIs(t, err, entity.ErrFechaNacimientoRequerida)
	})
}

func TestPecosaToResponse(t *testing.T) {
	nombre := "Vaso de Leche Las Flores"
	numero := "P-0003"
	pecosa := &entity.Pecosa{
		CodPecosa:    3,
		NumeroPecosa: &numero,
		Asociacion:   &entity.Asociacion{NombreAsociacion: &nombre},
	}
	detalles := []entity.DetallePecosa{
		{CodProducto: 1, Cantidad: 10, PrecioUnitario: decimal.RequireFromString("3.20"), Producto: &entity.Producto{Descripcion: "Leche"}},
		{CodProducto: 2, Cantidad: 3, PrecioUnitario: decimal.RequireFromString("1.50")},
	}

	response := PecosaToResponse(pecosa, detalles)
	assert.Equal(t, nombre, response.Asociacion)
	assert.True(t, decimal.RequireFromString("36.50").Equal(response.Total))
	require.Len(t, response.Detalles, 2)
	assert.Equal(t, "Leche", response.Detalles[0].Producto)
	assert.True(t, decimal.RequireFromString("32").Equal(response.Detalles[0].Subtotal))

	empty := PecosaToResponse(pecosa, nil)
	assert.True(t, empty.Total.IsZero())
	assert.Nil(t, PecosaToResponse(nil, detalles))

	t.Run("page totals come from the map", func(t *testing.T) {
		pecosas := []entity.Pecosa{{CodPecosa: 3}, {CodPecosa: 4}}
		responses := PecosasToResponses(pecosas, map[int]decimal.Decimal{3: decimal.NewFromInt(12)})
		require.Len(t, responses, 2)
		assert.True(t, decimal.NewFromInt(12).Equal(responses[0].Total))
		assert.True(t, responses[1].Total.IsZero())
	})
}

func TestProductosToResponses(t *testing.T) {
	stock := 50
	productos := []entity.Producto{
		{CodProducto: 1, Descripcion: "Leche", Stock: &stock, UnidadMedida: &entity.UnidadMedida{Descripcion: "Lata"}},
		{CodProducto: 2, Descripcion: "Avena"},
	}

	responses := ProductosToResponses(productos, map[int]int{1: 70})
	require.Len(t, responses, 2)
	assert.Equal(t, 70, responses[0].StockReal)
	require.NotNil(t, responses[0].Stock)
	assert.Equal(t, 50, *responses[0].Stock)
	assert.Equal(t, "Lata", responses[0].UnidadMedida)
	assert.Equal(t, 0, responses[1].StockReal)
}

func TestUsuarioToResponse(t *testing.T) {
	usuario := &entity.Usuario{ID: 1, Username: "ana", Estado: &entity.Estado{Abreviatura: "ACT"}}

	response := UsuarioToResponse(usuario, "Usuario")
	assert.Equal(t, "Usuario", response.Rol)
	assert.Equal(t, "ACT", response.Estado)

	usuario.Rol = &entity.Rol{Descripcion: "Administrador"}
	assert.Equal(t, "Administrador", UsuarioToResponse(usuario, "Usuario").Rol)
	assert.Nil(t, UsuarioToResponse(nil, "Usuario"))
}
