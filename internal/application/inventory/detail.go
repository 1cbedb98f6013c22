package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TransactionDetail reconstruye una transacción a partir de su ID: el prefijo
// decide el log (MOV- movimientos, DEV- devoluciones), se reúnen todas las
// líneas que comparten el ID y se enriquecen con el UnitsPerBox vigente de
// cada producto. La cabecera sale de la primera línea.
func (uc *UseCase) TransactionDetail(ctx context.Context, id string) (*dto.TransactionDetail, error) {
	var logRepo repository.MovementLogRepository
	switch {
	case strings.HasPrefix(id, entity.PrefixMovement+"-"):
		logRepo = uc.movements
	case strings.HasPrefix(id, entity.PrefixReturn+"-"):
		logRepo = uc.returns
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, id)
	}

	lines, err := logRepo.ListByTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, id)
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	perBox := make(map[string]int, len(products))
	for _, p := range products {
		perBox[p.ID] = p.UnitsPerBox
	}

	head := lines[0]
	detail := &dto.TransactionDetail{
		ID:                   head.TransactionID,
		Date:                 head.Date,
		Type:                 string(head.Kind),
		RegistrationID:       head.RegistrationID,
		RegistrationName:     head.RegistrationName,
		RegistrationDocument: head.RegistrationDocument,
		Notes:                head.Notes,
		Operator:             head.Operator,
		ReturnDate:           head.ReturnDue,
		EventName:            head.EventName,
	}

	// Enriquecimiento con la tabla vigente de registros, a mejor esfuerzo:
	// el log ya lleva la copia de nombre/documento; si la contraparte sigue
	// existiendo se refrescan sus datos, si no se conserva la copia.
	if head.RegistrationID != "" {
		if reg, err := uc.registrations.GetByID(ctx, head.RegistrationID); err == nil && reg != nil {
			detail.RegistrationName = reg.Name
			detail.RegistrationDocument = reg.Document
		}
	}

	detail.Lines = make([]dto.TransactionLine, 0, len(lines))
	for _, l := range lines {
		detail.Lines = append(detail.Lines, dto.TransactionLine{
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			BoxQuantity:  l.BoxQuantity,
			UnitQuantity: l.UnitQuantity,
			UnitsPerBox:  perBox[l.ProductID],
		})
	}
	return detail, nil
}
