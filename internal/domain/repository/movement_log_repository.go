package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// MovementLogRepository define el puerto sobre un log solo-anexado de líneas
// de transacción. Hay dos instancias: el log de movimientos y el de
// devoluciones, con la misma estructura.
type MovementLogRepository interface {
	Append(ctx context.Context, lines []*entity.MovementLine) error
	List(ctx context.Context) ([]*entity.MovementLine, error)
	ListByTransaction(ctx context.Context, transactionID string) ([]*entity.MovementLine, error)
}

// CorrectionLogRepository define el puerto sobre el log de ajustes manuales.
type CorrectionLogRepository interface {
	Append(ctx context.Context, entry *entity.CorrectionEntry) error
	List(ctx context.Context) ([]*entity.CorrectionEntry, error)
}
