package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// StockUpdate es la escritura final del stock de un producto tras validar una
// transacción completa. LastVerified lleva el sello de la transacción.
type StockUpdate struct {
	ProductID    string
	BoxStock     int
	UnitStock    int
	LastVerified string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// No hay Delete: los productos nunca se eliminan.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// UpdateStock aplica todas las escrituras de stock en una sola llamada
	// al almacenamiento (batch), nunca producto por producto.
	UpdateStock(ctx context.Context, updates []StockUpdate) error
}
