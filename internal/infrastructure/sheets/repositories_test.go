package sheets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/sheets"
)

var testTabs = sheets.Tabs{
	Inventory:     "Inventario",
	Registrations: "Registros",
	Movements:     "Movimientos",
	Returns:       "Devoluciones",
	Corrections:   "Ajustes",
}

// newStore devuelve un cliente en memoria con las cabeceras ya escritas, como
// lo deja el arranque de la aplicación.
func newStore(t *testing.T) *sheets.MemoryClient {
	t.Helper()
	client := sheets.NewMemoryClient()
	require.NoError(t, sheets.EnsureHeaders(context.Background(), client, testTabs))
	return client
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_CreateListGet(t *testing.T) {
	repo := sheets.NewProductRepository(newStore(t), testTabs.Inventory)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{
		ID: "PROD-1", Name: "Aceite 1L", UnitsPerBox: 12, BoxStock: 2, UnitStock: 5,
		DateAdded: "01/06/2024, 10:00:00", LastVerified: "01/06/2024, 10:00:00",
	}))
	require.NoError(t, repo.Create(ctx, &entity.Product{
		ID: "PROD-2", Name: "Harina 500g", UnitsPerBox: 24,
	}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	p, err := repo.GetByID(ctx, "PROD-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Aceite 1L", p.Name)
	assert.Equal(t, 12, p.UnitsPerBox)
	assert.Equal(t, 2, p.BoxStock)
	assert.Equal(t, 5, p.UnitStock)

	missing, err := repo.GetByID(ctx, "PROD-999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_UpdateStockEscribeFilaCorrecta(t *testing.T) {
	repo := sheets.NewProductRepository(newStore(t), testTabs.Inventory)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "PROD-1", Name: "Aceite 1L", UnitsPerBox: 12, BoxStock: 2, UnitStock: 5}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "PROD-2", Name: "Harina 500g", UnitsPerBox: 24, BoxStock: 1, UnitStock: 0}))

	err := repo.UpdateStock(ctx, []repository.StockUpdate{
		{ProductID: "PROD-2", BoxStock: 4, UnitStock: 7, LastVerified: "02/06/2024, 09:00:00"},
	})
	require.NoError(t, err)

	p2, err := repo.GetByID(ctx, "PROD-2")
	require.NoError(t, err)
	assert.Equal(t, 4, p2.BoxStock)
	assert.Equal(t, 7, p2.UnitStock)
	assert.Equal(t, "02/06/2024, 09:00:00", p2.LastVerified)

	// El vecino no se toca.
	p1, err := repo.GetByID(ctx, "PROD-1")
	require.NoError(t, err)
	assert.Equal(t, 2, p1.BoxStock)
	assert.Equal(t, 5, p1.UnitStock)
}

func TestProductRepo_UpdateStockProductoInexistente(t *testing.T) {
	repo := sheets.NewProductRepository(newStore(t), testTabs.Inventory)
	err := repo.UpdateStock(context.Background(), []repository.StockUpdate{
		{ProductID: "PROD-999", BoxStock: 1},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registros
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrationRepo_CicloCompleto(t *testing.T) {
	repo := sheets.NewRegistrationRepository(newStore(t), testTabs.Registrations)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Registration{
		ID: "CAD-1", Type: entity.RegistrationTypeCliente, Name: "Tienda Sur", Document: "800555111",
	}))
	require.NoError(t, repo.Create(ctx, &entity.Registration{
		ID: "CAD-2", Type: entity.RegistrationTypeProveedor, Name: "Distribuidora Norte",
	}))

	reg, err := repo.GetByID(ctx, "CAD-1")
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Equal(t, "Tienda Sur", reg.Name)

	reg.City = "Montería"
	require.NoError(t, repo.Update(ctx, reg))
	reg, err = repo.GetByID(ctx, "CAD-1")
	require.NoError(t, err)
	assert.Equal(t, "Montería", reg.City)

	// Delete vacía la fila: desaparece de los listados sin desplazar al resto.
	require.NoError(t, repo.Delete(ctx, "CAD-1"))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "CAD-2", all[0].ID)

	gone, err := repo.GetByID(ctx, "CAD-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRegistrationRepo_UpdateInexistente(t *testing.T) {
	repo := sheets.NewRegistrationRepository(newStore(t), testTabs.Registrations)
	err := repo.Update(context.Background(), &entity.Registration{ID: "CAD-999"})
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Log de movimientos / devoluciones
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementLogRepo_AppendYFiltroPorTransaccion(t *testing.T) {
	repo := sheets.NewMovementLogRepository(newStore(t), testTabs.Movements)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, []*entity.MovementLine{
		{
			TransactionID: "MOV-100", Date: "01/06/2024, 10:00:00", Kind: entity.KindVenta,
			ProductID: "PROD-1", ProductName: "Aceite 1L",
			RegistrationID: "CAD-1", RegistrationName: "Tienda Sur", RegistrationDocument: "800555111",
			BoxQuantity: 1, UnitQuantity: 2, Notes: "pedido semanal", Operator: "Laura",
		},
		{
			TransactionID: "MOV-100", Date: "01/06/2024, 10:00:00", Kind: entity.KindVenta,
			ProductID: "PROD-2", ProductName: "Harina 500g", UnitQuantity: 6, Operator: "Laura",
		},
	}))
	require.NoError(t, repo.Append(ctx, []*entity.MovementLine{
		{TransactionID: "MOV-200", Kind: entity.KindCompra, ProductID: "PROD-1", BoxQuantity: 3},
	}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tx, err := repo.ListByTransaction(ctx, "MOV-100")
	require.NoError(t, err)
	require.Len(t, tx, 2)
	assert.Equal(t, entity.KindVenta, tx[0].Kind)
	assert.Equal(t, "Tienda Sur", tx[0].RegistrationName)
	assert.Equal(t, 1, tx[0].BoxQuantity)
	assert.Equal(t, 2, tx[0].UnitQuantity)
	assert.Equal(t, "pedido semanal", tx[0].Notes)

	none, err := repo.ListByTransaction(ctx, "MOV-999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// ──────────────────────────────────────────────────────────────────────────────
// Log de ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestCorrectionLogRepo_AppendYList(t *testing.T) {
	repo := sheets.NewCorrectionLogRepository(newStore(t), testTabs.Corrections)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &entity.CorrectionEntry{
		Date: "15/05/2024 08:00", ProductID: "PROD-1", ProductName: "Aceite 1L",
		OldBox: 2, OldUnit: 5, NewBox: 3, NewUnit: 0, Operator: "Laura",
	}))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "15/05/2024 08:00", e.Date)
	assert.Equal(t, 2, e.OldBox)
	assert.Equal(t, 5, e.OldUnit)
	assert.Equal(t, 3, e.NewBox)
	assert.Equal(t, 0, e.NewUnit)
	assert.Equal(t, "Laura", e.Operator)
}
