package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// Tipo mostrado para ajustes manuales en la auditoría.
const auditKindCorrection = "AJUSTE"

type auditRow struct {
	dto.AuditRow
	at time.Time
}

// AuditTrail fusiona los tres log (movimientos, devoluciones y ajustes) en una
// sola vista cronológica inversa. Cada log escribe su propio formato de fecha;
// aquí se parsean a un instante comparable. El orden es estable: a igual
// instante se conserva el orden original dentro de cada fuente.
func (uc *UseCase) AuditTrail(ctx context.Context) ([]dto.AuditRow, error) {
	movements, err := uc.movements.List(ctx)
	if err != nil {
		return nil, err
	}
	returns, err := uc.returns.List(ctx)
	if err != nil {
		return nil, err
	}
	corrections, err := uc.corrections.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]auditRow, 0, len(movements)+len(returns)+len(corrections))
	for _, m := range movements {
		rows = append(rows, lineToAuditRow(m))
	}
	for _, r := range returns {
		rows = append(rows, lineToAuditRow(r))
	}
	for _, c := range corrections {
		rows = append(rows, auditRow{
			AuditRow: dto.AuditRow{
				ID:          c.Date,
				Date:        c.Date,
				Type:        auditKindCorrection,
				ProductName: c.ProductName,
				Description: fmt.Sprintf("de %d cajas/%d unidades a %d cajas/%d unidades",
					c.OldBox, c.OldUnit, c.NewBox, c.NewUnit),
				BoxQuantity:  c.NewBox,
				UnitQuantity: c.NewUnit,
				Operator:     c.Operator,
			},
			at: parseAuditTime(c.Date),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].at.After(rows[j].at)
	})

	out := make([]dto.AuditRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.AuditRow)
	}
	return out, nil
}

func lineToAuditRow(l *entity.MovementLine) auditRow {
	desc := l.RegistrationName
	if desc == "" {
		desc = l.EventName
	}
	return auditRow{
		AuditRow: dto.AuditRow{
			ID:           l.TransactionID,
			Date:         l.Date,
			Type:         string(l.Kind),
			ProductName:  l.ProductName,
			Description:  desc,
			BoxQuantity:  l.BoxQuantity,
			UnitQuantity: l.UnitQuantity,
			Operator:     l.Operator,
		},
		at: parseAuditTime(l.Date),
	}
}

// Formatos aceptados, del más al menos frecuente.
var auditTimeLayouts = []string{
	entity.MovementTimeLayout,
	entity.CorrectionTimeLayout,
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// parseAuditTime convierte la fecha almacenada a un instante. Una cadena sin
// separador de fecha reconocible se trata como inicio de época (queda al final
// del orden descendente) en vez de fallar.
func parseAuditTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		return time.Time{}
	}
	for _, layout := range auditTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
