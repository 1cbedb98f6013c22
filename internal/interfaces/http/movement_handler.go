package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// MovementHandler expone el registro de transacciones multilínea: movimientos
// (entradas/salidas) y devoluciones.
type MovementHandler struct {
	uc *inventory.UseCase
}

// NewMovementHandler construye el handler de movimientos.
func NewMovementHandler(uc *inventory.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

type transactionResponse struct {
	Message string                 `json:"message"`
	Details *dto.TransactionDetail `json:"details"`
}

// RegisterMovement registra una transacción de entrada o salida. Todas las
// líneas se validan antes de escribir nada.
func (h *MovementHandler) RegisterMovement(c *fiber.Ctx) error {
	var req dto.MovementRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	detail, err := h.uc.RegisterMovement(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transactionResponse{
		Message: "movimiento registrado correctamente",
		Details: detail,
	})
}

// RegisterReturn registra una devolución asociada a un evento.
func (h *MovementHandler) RegisterReturn(c *fiber.Ctx) error {
	var req dto.ReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	detail, err := h.uc.RegisterReturn(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transactionResponse{
		Message: "devolución registrada correctamente",
		Details: detail,
	})
}
