package sheets

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

// RegistrationRepo implementación del puerto RegistrationRepository sobre la
// pestaña de registros. Columnas A:I = ID, Tipo, Nombre, Documento, Contacto,
// Responsable, Placa, Ciudad, Notas; la fila 1 es cabecera.
type RegistrationRepo struct {
	client TabularClient
	tab    string
}

// NewRegistrationRepository construye el adaptador de persistencia de registros.
func NewRegistrationRepository(client TabularClient, tab string) *RegistrationRepo {
	return &RegistrationRepo{client: client, tab: tab}
}

// Create anexa el registro al final de la pestaña.
func (r *RegistrationRepo) Create(ctx context.Context, reg *entity.Registration) error {
	return r.client.AppendRows(ctx, r.tab+"!A:I", [][]string{encodeRegistration(reg)})
}

// GetByID devuelve el registro o nil si no existe.
func (r *RegistrationRepo) GetByID(ctx context.Context, id string) (*entity.Registration, error) {
	regs, _, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, reg := range regs {
		if reg.ID == id {
			return reg, nil
		}
	}
	return nil, nil
}

// List devuelve todos los registros vigentes.
func (r *RegistrationRepo) List(ctx context.Context) ([]*entity.Registration, error) {
	regs, _, err := r.readAll(ctx)
	return regs, err
}

// Update sobreescribe la fila del registro.
func (r *RegistrationRepo) Update(ctx context.Context, reg *entity.Registration) error {
	row, err := r.findRow(ctx, reg.ID)
	if err != nil {
		return err
	}
	rng := fmt.Sprintf("%s!A%d:I%d", r.tab, row, row)
	return r.client.UpdateRange(ctx, rng, [][]string{encodeRegistration(reg)})
}

// Delete vacía la fila del registro. La API de valores no elimina filas, así
// que una fila en blanco equivale a borrado y los listados la ignoran.
func (r *RegistrationRepo) Delete(ctx context.Context, id string) error {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return err
	}
	rng := fmt.Sprintf("%s!A%d:I%d", r.tab, row, row)
	return r.client.UpdateRange(ctx, rng, [][]string{make([]string, 9)})
}

func (r *RegistrationRepo) findRow(ctx context.Context, id string) (int, error) {
	regs, rowNums, err := r.readAll(ctx)
	if err != nil {
		return 0, err
	}
	for i, reg := range regs {
		if reg.ID == id {
			return rowNums[i], nil
		}
	}
	return 0, fmt.Errorf("%w: %s", domain.ErrRegistrationNotFound, id)
}

func (r *RegistrationRepo) readAll(ctx context.Context) ([]*entity.Registration, []int, error) {
	rows, err := r.client.ReadRange(ctx, r.tab+"!A2:I")
	if err != nil {
		return nil, nil, err
	}
	var regs []*entity.Registration
	var rowNums []int
	for i, row := range rows {
		if cell(row, 0) == "" {
			continue // fila vaciada por Delete
		}
		regs = append(regs, &entity.Registration{
			ID:          cell(row, 0),
			Type:        cell(row, 1),
			Name:        cell(row, 2),
			Document:    cell(row, 3),
			Contact:     cell(row, 4),
			Responsible: cell(row, 5),
			Plate:       cell(row, 6),
			City:        cell(row, 7),
			Notes:       cell(row, 8),
		})
		rowNums = append(rowNums, i+2)
	}
	return regs, rowNums, nil
}

func encodeRegistration(reg *entity.Registration) []string {
	return []string{
		reg.ID, reg.Type, reg.Name, reg.Document, reg.Contact,
		reg.Responsible, reg.Plate, reg.City, reg.Notes,
	}
}
