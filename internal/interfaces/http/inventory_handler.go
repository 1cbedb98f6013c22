package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// InventoryHandler expone el inventario: listado, alta de productos y ajustes
// manuales de stock.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List responde el stock actual ordenado por nombre de producto.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListInventory(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

type createProductResponse struct {
	Message     string `json:"message"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
}

// Create da de alta un producto con su stock inicial normalizado.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	product, err := h.uc.RegisterProduct(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(createProductResponse{
		Message:     "producto registrado correctamente",
		ProductID:   product.ID,
		ProductName: product.Name,
	})
}

// Correct sobreescribe el stock de un producto y deja rastro en el log de
// ajustes.
func (h *InventoryHandler) Correct(c *fiber.Ctx) error {
	var req dto.CorrectStockRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := h.uc.CorrectStock(c.Context(), req); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stock actualizado correctamente"})
}
