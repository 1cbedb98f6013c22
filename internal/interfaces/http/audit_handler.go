package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
)

// AuditHandler expone la auditoría unificada y el detalle de transacciones.
type AuditHandler struct {
	uc *inventory.UseCase
}

// NewAuditHandler construye el handler de auditoría.
func NewAuditHandler(uc *inventory.UseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Audit responde el historial combinado de movimientos, devoluciones y
// ajustes, más reciente primero.
func (h *AuditHandler) Audit(c *fiber.Ctx) error {
	rows, err := h.uc.AuditTrail(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// Transaction responde el detalle de una transacción por su ID (MOV- o DEV-).
func (h *AuditHandler) Transaction(c *fiber.Ctx) error {
	detail, err := h.uc.TransactionDetail(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(detail)
}
