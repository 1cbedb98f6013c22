package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/registration"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// RegistrationHandler expone el CRUD de contrapartes (clientes, proveedores y
// eventos).
type RegistrationHandler struct {
	uc *registration.UseCase
}

// NewRegistrationHandler construye el handler de contrapartes.
func NewRegistrationHandler(uc *registration.UseCase) *RegistrationHandler {
	return &RegistrationHandler{uc: uc}
}

// List lista las contrapartes ordenadas por nombre.
func (h *RegistrationHandler) List(c *fiber.Ctx) error {
	regs, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(regs)
}

// Get obtiene una contraparte por ID.
func (h *RegistrationHandler) Get(c *fiber.Ctx) error {
	reg, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(reg)
}

// Create da de alta una contraparte.
func (h *RegistrationHandler) Create(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	reg, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reg)
}

// Update actualiza los datos de una contraparte existente.
func (h *RegistrationHandler) Update(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	reg, err := h.uc.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(reg)
}

// Delete elimina una contraparte. El historial de movimientos conserva su
// copia de nombre y documento.
func (h *RegistrationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro eliminado correctamente"})
}
