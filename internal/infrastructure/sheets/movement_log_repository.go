package sheets

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.MovementLogRepository = (*MovementLogRepo)(nil)

// MovementLogRepo implementación del puerto MovementLogRepository sobre una
// pestaña solo-anexado. La misma estructura sirve para el log de movimientos y
// el de devoluciones; cambia solo la pestaña. Columnas A:N = TxID, Fecha,
// Tipo, ProductoID, Producto, RegistroID, Registro, Documento, Cajas,
// Unidades, Notas, Operador, FechaDevolucion, Evento.
type MovementLogRepo struct {
	client TabularClient
	tab    string
}

// NewMovementLogRepository construye el adaptador sobre la pestaña indicada.
func NewMovementLogRepository(client TabularClient, tab string) *MovementLogRepo {
	return &MovementLogRepo{client: client, tab: tab}
}

// Append anexa las líneas de una transacción. Nunca modifica filas existentes.
func (r *MovementLogRepo) Append(ctx context.Context, lines []*entity.MovementLine) error {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.TransactionID, l.Date, string(l.Kind),
			l.ProductID, l.ProductName,
			l.RegistrationID, l.RegistrationName, l.RegistrationDocument,
			itoa(l.BoxQuantity), itoa(l.UnitQuantity),
			l.Notes, l.Operator, l.ReturnDue, l.EventName,
		})
	}
	return r.client.AppendRows(ctx, r.tab+"!A:N", rows)
}

// List devuelve todas las líneas en orden de anexado.
func (r *MovementLogRepo) List(ctx context.Context) ([]*entity.MovementLine, error) {
	rows, err := r.client.ReadRange(ctx, r.tab+"!A2:N")
	if err != nil {
		return nil, err
	}
	var lines []*entity.MovementLine
	for _, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		lines = append(lines, &entity.MovementLine{
			TransactionID:        cell(row, 0),
			Date:                 cell(row, 1),
			Kind:                 entity.MovementKind(cell(row, 2)),
			ProductID:            cell(row, 3),
			ProductName:          cell(row, 4),
			RegistrationID:       cell(row, 5),
			RegistrationName:     cell(row, 6),
			RegistrationDocument: cell(row, 7),
			BoxQuantity:          intCell(row, 8),
			UnitQuantity:         intCell(row, 9),
			Notes:                cell(row, 10),
			Operator:             cell(row, 11),
			ReturnDue:            cell(row, 12),
			EventName:            cell(row, 13),
		})
	}
	return lines, nil
}

// ListByTransaction devuelve las líneas que comparten el ID de transacción.
func (r *MovementLogRepo) ListByTransaction(ctx context.Context, transactionID string) ([]*entity.MovementLine, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var lines []*entity.MovementLine
	for _, l := range all {
		if l.TransactionID == transactionID {
			lines = append(lines, l)
		}
	}
	return lines, nil
}
