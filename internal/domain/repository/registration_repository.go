package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// RegistrationRepository define el puerto de persistencia para contrapartes.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *entity.Registration) error
	GetByID(ctx context.Context, id string) (*entity.Registration, error)
	List(ctx context.Context) ([]*entity.Registration, error)
	Update(ctx context.Context, reg *entity.Registration) error
	Delete(ctx context.Context, id string) error
}
