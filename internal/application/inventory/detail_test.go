package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

func TestTransactionDetail_PrefijoDesconocido(t *testing.T) {
	f := newFixture()
	for _, id := range []string{"XYZ-123", "PROD-123", ""} {
		_, err := f.uc.TransactionDetail(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrTransactionNotFound, "id %q", id)
	}
}

func TestTransactionDetail_TransaccionInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.TransactionDetail(context.Background(), "MOV-999")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestTransactionDetail_ReuneLineasYEnriquece(t *testing.T) {
	f := newFixture()
	f.addProduct("PROD-1", "Aceite 1L", 12, 3, 0)
	f.addProduct("PROD-2", "Harina 500g", 24, 1, 0)
	f.addRegistration("CAD-1", "Tienda Sur (actualizada)", "800555111")

	f.movements.lines = append(f.movements.lines,
		&entity.MovementLine{
			TransactionID:    "MOV-100",
			Date:             "01/06/2024, 10:00:00",
			Kind:             entity.KindVenta,
			ProductID:        "PROD-1",
			ProductName:      "Aceite 1L",
			RegistrationID:   "CAD-1",
			RegistrationName: "Tienda Sur", // copia al momento de la transacción
			BoxQuantity:      1,
			Operator:         "Laura",
		},
		&entity.MovementLine{
			TransactionID:  "MOV-100",
			Date:           "01/06/2024, 10:00:00",
			Kind:           entity.KindVenta,
			ProductID:      "PROD-2",
			ProductName:    "Harina 500g",
			RegistrationID: "CAD-1",
			UnitQuantity:   6,
			Operator:       "Laura",
		},
		&entity.MovementLine{TransactionID: "MOV-999", Kind: entity.KindVenta, ProductID: "PROD-1"},
	)

	detail, err := f.uc.TransactionDetail(context.Background(), "MOV-100")
	require.NoError(t, err)

	assert.Equal(t, "MOV-100", detail.ID)
	assert.Equal(t, "VENTA", detail.Type)
	// La contraparte sigue existiendo: se refresca con la tabla vigente.
	assert.Equal(t, "Tienda Sur (actualizada)", detail.RegistrationName)

	require.Len(t, detail.Lines, 2, "solo las líneas del TransactionID pedido")
	assert.Equal(t, 12, detail.Lines[0].UnitsPerBox)
	assert.Equal(t, 24, detail.Lines[1].UnitsPerBox)
}

func TestTransactionDetail_ContraparteBorradaConservaCopia(t *testing.T) {
	f := newFixture()
	f.addProduct("PROD-1", "Aceite 1L", 12, 3, 0)
	f.movements.lines = append(f.movements.lines, &entity.MovementLine{
		TransactionID:        "MOV-100",
		Kind:                 entity.KindVenta,
		ProductID:            "PROD-1",
		RegistrationID:       "CAD-BORRADA",
		RegistrationName:     "Tienda que ya no existe",
		RegistrationDocument: "123",
		BoxQuantity:          1,
	})

	detail, err := f.uc.TransactionDetail(context.Background(), "MOV-100")
	require.NoError(t, err)
	assert.Equal(t, "Tienda que ya no existe", detail.RegistrationName)
	assert.Equal(t, "123", detail.RegistrationDocument)
}

func TestTransactionDetail_DevolucionUsaSuPropioLog(t *testing.T) {
	f := newFixture()
	f.addProduct("PROD-1", "Aceite 1L", 12, 3, 0)
	f.returns.lines = append(f.returns.lines, &entity.MovementLine{
		TransactionID: "DEV-200",
		Kind:          entity.KindDevolucion,
		ProductID:     "PROD-1",
		EventName:     "Feria Ganadera",
		UnitQuantity:  4,
	})

	detail, err := f.uc.TransactionDetail(context.Background(), "DEV-200")
	require.NoError(t, err)
	assert.Equal(t, "DEVOLUCION", detail.Type)
	assert.Equal(t, "Feria Ganadera", detail.EventName)
}
