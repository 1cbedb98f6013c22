package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// AuthHandler expone el endpoint de login.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de autenticación.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica con email/password y responde el token con claims {id, role}.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	resp, err := h.uc.Login(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
