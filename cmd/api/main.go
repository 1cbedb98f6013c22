package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/registration"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/stock-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/stock-ledger-api/pkg/config"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacenamiento tabular del ledger. Sin SHEETS_SPREADSHEET_ID se arranca
	// con el cliente en memoria: útil en desarrollo, no persiste nada.
	var client sheets.TabularClient
	if cfg.Sheets.SpreadsheetID != "" {
		gc, err := sheets.NewGoogleClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Google Sheets")
		}
		client = gc
	} else {
		log.Warn().Msg("SHEETS_SPREADSHEET_ID vacío: usando almacenamiento en memoria")
		client = sheets.NewMemoryClient()
	}

	tabs := sheets.Tabs{
		Inventory:     cfg.Sheets.InventoryTab,
		Registrations: cfg.Sheets.RegistrationsTab,
		Movements:     cfg.Sheets.MovementsTab,
		Returns:       cfg.Sheets.ReturnsTab,
		Corrections:   cfg.Sheets.CorrectionsTab,
	}
	if err := sheets.EnsureHeaders(ctx, client, tabs); err != nil {
		log.Fatal().Err(err).Msg("inicializar cabeceras de las hojas")
	}

	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	productRepo := sheets.NewProductRepository(client, tabs.Inventory)
	registrationRepo := sheets.NewRegistrationRepository(client, tabs.Registrations)
	movementRepo := sheets.NewMovementLogRepository(client, tabs.Movements)
	returnRepo := sheets.NewMovementLogRepository(client, tabs.Returns)
	correctionRepo := sheets.NewCorrectionLogRepository(client, tabs.Corrections)
	userRepo := mongodb.NewUserRepository(db)

	inventoryUC := inventory.NewUseCase(productRepo, registrationRepo, movementRepo, returnRepo, correctionRepo)
	registrationUC := registration.NewUseCase(registrationRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	httpRouter.InitMetrics()
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:    inventoryUC,
		RegistrationUC: registrationUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
