package sheets

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la pestaña de
// inventario. Columnas A:G = ID, Nombre, UnidadesPorCaja, StockCajas,
// StockUnidades, FechaAlta, UltimaVerificacion; la fila 1 es cabecera.
type ProductRepo struct {
	client TabularClient
	tab    string
}

// NewProductRepository construye el adaptador de persistencia de productos.
func NewProductRepository(client TabularClient, tab string) *ProductRepo {
	return &ProductRepo{client: client, tab: tab}
}

// Create anexa el producto al final de la pestaña.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	row := []string{
		p.ID, p.Name, itoa(p.UnitsPerBox), itoa(p.BoxStock), itoa(p.UnitStock),
		p.DateAdded, p.LastVerified,
	}
	return r.client.AppendRows(ctx, r.tab+"!A:G", [][]string{row})
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	products, _, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	products, _, err := r.readAll(ctx)
	return products, err
}

// UpdateStock escribe el stock final y la marca de verificación de cada
// producto en una sola llamada batch al almacenamiento.
func (r *ProductRepo) UpdateStock(ctx context.Context, updates []repository.StockUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	products, rowNums, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	rowByID := make(map[string]int, len(products))
	for i, p := range products {
		rowByID[p.ID] = rowNums[i]
	}

	batch := make([]RangeUpdate, 0, len(updates)*2)
	for _, u := range updates {
		row, ok := rowByID[u.ProductID]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrProductNotFound, u.ProductID)
		}
		batch = append(batch,
			RangeUpdate{
				Range: fmt.Sprintf("%s!D%d:E%d", r.tab, row, row),
				Rows:  [][]string{{itoa(u.BoxStock), itoa(u.UnitStock)}},
			},
			RangeUpdate{
				Range: fmt.Sprintf("%s!G%d", r.tab, row),
				Rows:  [][]string{{u.LastVerified}},
			},
		)
	}
	return r.client.BatchUpdate(ctx, batch)
}

// readAll lee la pestaña completa y devuelve los productos junto con el número
// de fila de cada uno (para las escrituras puntuales).
func (r *ProductRepo) readAll(ctx context.Context) ([]*entity.Product, []int, error) {
	rows, err := r.client.ReadRange(ctx, r.tab+"!A2:G")
	if err != nil {
		return nil, nil, err
	}
	var products []*entity.Product
	var rowNums []int
	for i, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		products = append(products, &entity.Product{
			ID:           cell(row, 0),
			Name:         cell(row, 1),
			UnitsPerBox:  intCell(row, 2),
			BoxStock:     intCell(row, 3),
			UnitStock:    intCell(row, 4),
			DateAdded:    cell(row, 5),
			LastVerified: cell(row, 6),
		})
		rowNums = append(rowNums, i+2)
	}
	return products, rowNums, nil
}
