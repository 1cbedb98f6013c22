package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/ledger"
)

// Delta cero: el estado no cambia.
func TestApply_DeltaCeroNoModifica(t *testing.T) {
	cases := []struct {
		box, unit, perBox int
	}{
		{0, 0, 1},
		{2, 5, 12},
		{10, 0, 6},
		{0, 11, 12},
	}
	for _, c := range cases {
		box, unit, err := ledger.Apply(c.box, c.unit, c.perBox, 0)
		require.NoError(t, err)
		assert.Equal(t, c.box, box)
		assert.Equal(t, c.unit, unit)
	}
}

// Entrada con acarreo: 12 por caja, stock (2,5)=29; entran 8 unidades sueltas.
// 5+8=13 acarrea una caja y deja 1 suelta: (3,1)=37.
func TestApply_EntradaConAcarreo(t *testing.T) {
	box, unit, err := ledger.Apply(2, 5, 12, 8)
	require.NoError(t, err)
	assert.Equal(t, 3, box)
	assert.Equal(t, 1, unit)
}

// Las entradas preservan el total y la invariante 0 <= unit < perBox.
func TestApply_EntradaPreservaTotal(t *testing.T) {
	cases := []struct {
		box, unit, perBox, delta int
	}{
		{0, 0, 12, 1},
		{2, 5, 12, 8},
		{2, 5, 12, 1000},
		{7, 3, 4, 9},
		{0, 0, 1, 5},
	}
	for _, c := range cases {
		box, unit, err := ledger.Apply(c.box, c.unit, c.perBox, c.delta)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, unit, 0)
		assert.Less(t, unit, c.perBox)
		assert.Equal(t, c.box*c.perBox+c.unit+c.delta, box*c.perBox+unit,
			"el total de unidades debe ser el anterior más el delta")
	}
}

// Salida que excede el total disponible: falla y no hay estado nuevo.
func TestApply_SalidaInsuficiente(t *testing.T) {
	// (2,5) con 12 por caja = 29 unidades; se piden 3 cajas = 36.
	_, _, err := ledger.Apply(2, 5, 12, -36)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Salida exacta: deja el stock en cero.
func TestApply_SalidaExacta(t *testing.T) {
	box, unit, err := ledger.Apply(2, 5, 12, -29)
	require.NoError(t, err)
	assert.Equal(t, 0, box)
	assert.Equal(t, 0, unit)
}

// Salida con préstamo de caja: (3,1) menos 2 unidades = (2,11).
func TestApply_SalidaConPrestamo(t *testing.T) {
	box, unit, err := ledger.Apply(3, 1, 12, -2)
	require.NoError(t, err)
	assert.Equal(t, 2, box)
	assert.Equal(t, 11, unit)
}

// Ida y vuelta: entrar N y salir N devuelve el estado original.
func TestApply_IdaYVuelta(t *testing.T) {
	for _, n := range []int{1, 7, 12, 13, 144} {
		box, unit, err := ledger.Apply(2, 5, 12, n)
		require.NoError(t, err)
		box, unit, err = ledger.Apply(box, unit, 12, -n)
		require.NoError(t, err)
		assert.Equal(t, 2, box)
		assert.Equal(t, 5, unit)
	}
}

// unitsPerBox degenerado: rechazado explícitamente, nunca bucle ni división por cero.
func TestApply_UnitsPerBoxInvalido(t *testing.T) {
	_, _, err := ledger.Apply(2, 5, 0, 8)
	assert.ErrorIs(t, err, domain.ErrInvalidUnitsPerBox)

	_, _, err = ledger.Apply(2, 5, -3, 8)
	assert.ErrorIs(t, err, domain.ErrInvalidUnitsPerBox)
}

func TestLineDelta(t *testing.T) {
	assert.Equal(t, 32, ledger.LineDelta(true, 2, 8, 12))
	assert.Equal(t, -32, ledger.LineDelta(false, 2, 8, 12))
	assert.Equal(t, 0, ledger.LineDelta(false, 0, 0, 12))
}
