package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/registration"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// RouterDeps dependencias para montar las rutas.
type RouterDeps struct {
	InventoryUC    *inventory.UseCase
	RegistrationUC *registration.UseCase
	AuthUC         *auth.UseCase
	JWTSecret      string
}

// Router monta la API: /api/auth público y /api/stock protegido con token
// x-auth-token. Las escrituras exigen rol admin u operador; el borrado de
// contrapartes queda solo para admin.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	movementHandler := NewMovementHandler(deps.InventoryUC)
	registrationHandler := NewRegistrationHandler(deps.RegistrationUC)
	auditHandler := NewAuditHandler(deps.InventoryUC)

	api := app.Group("/api")

	api.Post("/auth/login", authHandler.Login)

	stock := api.Group("/stock", AuthMiddleware(deps.JWTSecret))
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleOperador)

	stock.Get("/inventory", inventoryHandler.List)
	stock.Post("/inventory", canWrite, inventoryHandler.Create)
	stock.Post("/inventory/update", canWrite, inventoryHandler.Correct)

	stock.Post("/movements", canWrite, movementHandler.RegisterMovement)
	stock.Post("/returns", canWrite, movementHandler.RegisterReturn)

	stock.Get("/audit", auditHandler.Audit)
	stock.Get("/transaction/:id", auditHandler.Transaction)

	stock.Get("/registrations", registrationHandler.List)
	stock.Get("/registrations/:id", registrationHandler.Get)
	stock.Post("/registrations", canWrite, registrationHandler.Create)
	stock.Put("/registrations/:id", canWrite, registrationHandler.Update)
	stock.Delete("/registrations/:id", RequireRole(entity.RoleAdmin), registrationHandler.Delete)
}
