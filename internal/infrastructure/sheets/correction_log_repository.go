package sheets

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.CorrectionLogRepository = (*CorrectionLogRepo)(nil)

// CorrectionLogRepo implementación del puerto CorrectionLogRepository sobre la
// pestaña de ajustes manuales. Columnas A:H = Fecha, ProductoID, Producto,
// CajasAnterior, UnidadesAnterior, CajasNueva, UnidadesNueva, Operador.
type CorrectionLogRepo struct {
	client TabularClient
	tab    string
}

// NewCorrectionLogRepository construye el adaptador sobre la pestaña de ajustes.
func NewCorrectionLogRepository(client TabularClient, tab string) *CorrectionLogRepo {
	return &CorrectionLogRepo{client: client, tab: tab}
}

// Append anexa un ajuste manual.
func (r *CorrectionLogRepo) Append(ctx context.Context, e *entity.CorrectionEntry) error {
	row := []string{
		e.Date, e.ProductID, e.ProductName,
		itoa(e.OldBox), itoa(e.OldUnit), itoa(e.NewBox), itoa(e.NewUnit),
		e.Operator,
	}
	return r.client.AppendRows(ctx, r.tab+"!A:H", [][]string{row})
}

// List devuelve todos los ajustes en orden de anexado.
func (r *CorrectionLogRepo) List(ctx context.Context) ([]*entity.CorrectionEntry, error) {
	rows, err := r.client.ReadRange(ctx, r.tab+"!A2:H")
	if err != nil {
		return nil, err
	}
	var entries []*entity.CorrectionEntry
	for _, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		entries = append(entries, &entity.CorrectionEntry{
			Date:        cell(row, 0),
			ProductID:   cell(row, 1),
			ProductName: cell(row, 2),
			OldBox:      intCell(row, 3),
			OldUnit:     intCell(row, 4),
			NewBox:      intCell(row, 5),
			NewUnit:     intCell(row, 6),
			Operator:    cell(row, 7),
		})
	}
	return entries, nil
}
