package registration

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// UseCase casos de uso CRUD para contrapartes (clientes, proveedores, eventos).
// Independiente del ledger: los movimientos guardan copia de nombre/documento,
// por lo que editar o borrar aquí no toca el historial.
type UseCase struct {
	repo repository.RegistrationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.RegistrationRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create da de alta una contraparte.
func (uc *UseCase) Create(ctx context.Context, in dto.RegistrationRequest) (*dto.RegistrationResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Type) == "" {
		return nil, fmt.Errorf("%w: name y type requeridos", domain.ErrInvalidInput)
	}
	reg := &entity.Registration{
		ID:          entity.NewID(entity.PrefixRegistration),
		Type:        strings.ToUpper(strings.TrimSpace(in.Type)),
		Name:        strings.TrimSpace(in.Name),
		Document:    in.Document,
		Contact:     in.Contact,
		Responsible: in.Responsible,
		Plate:       in.Plate,
		City:        in.City,
		Notes:       in.Notes,
	}
	if err := uc.repo.Create(ctx, reg); err != nil {
		return nil, err
	}
	return toResponse(reg), nil
}

// GetByID obtiene una contraparte por ID.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.RegistrationResponse, error) {
	reg, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRegistrationNotFound, id)
	}
	return toResponse(reg), nil
}

// List lista las contrapartes ordenadas por nombre.
func (uc *UseCase) List(ctx context.Context) ([]*dto.RegistrationResponse, error) {
	regs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(regs, func(i, j int) bool {
		return strings.ToLower(regs[i].Name) < strings.ToLower(regs[j].Name)
	})
	out := make([]*dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, toResponse(r))
	}
	return out, nil
}

// Update reemplaza los datos de una contraparte existente.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.RegistrationRequest) (*dto.RegistrationResponse, error) {
	reg, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRegistrationNotFound, id)
	}
	if strings.TrimSpace(in.Name) != "" {
		reg.Name = strings.TrimSpace(in.Name)
	}
	if strings.TrimSpace(in.Type) != "" {
		reg.Type = strings.ToUpper(strings.TrimSpace(in.Type))
	}
	reg.Document = in.Document
	reg.Contact = in.Contact
	reg.Responsible = in.Responsible
	reg.Plate = in.Plate
	reg.City = in.City
	reg.Notes = in.Notes
	if err := uc.repo.Update(ctx, reg); err != nil {
		return nil, err
	}
	return toResponse(reg), nil
}

// Delete elimina una contraparte. El historial conserva su copia de datos.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	reg, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reg == nil {
		return fmt.Errorf("%w: %s", domain.ErrRegistrationNotFound, id)
	}
	return uc.repo.Delete(ctx, id)
}

func toResponse(r *entity.Registration) *dto.RegistrationResponse {
	return &dto.RegistrationResponse{
		ID:          r.ID,
		Type:        r.Type,
		Name:        r.Name,
		Document:    r.Document,
		Contact:     r.Contact,
		Responsible: r.Responsible,
		Plate:       r.Plate,
		City:        r.City,
		Notes:       r.Notes,
	}
}
