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
	"github.com/joho/godotenv"

	appauth "github.com/tu-usuario/inventario-movil/internal/application/auth"
	"github.com/tu-usuario/inventario-movil/internal/application/inventory"
	"github.com/tu-usuario/inventario-movil/internal/application/usecase"
	"github.com/tu-usuario/inventario-movil/internal/infrastructure/authsvc"
	"github.com/tu-usuario/inventario-movil/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventario-movil/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-movil/internal/interfaces/http"
	"github.com/tu-usuario/inventario-movil/pkg/config"
	"github.com/tu-usuario/inventario-movil/pkg/logger"
)

func main() {
	// .env local si existe; las env vars reales tienen prioridad vía Viper
	_ = godotenv.Load()

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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)

	authClient := authsvc.NewClient(cfg.Auth.ServiceURL, cfg.Auth.APIKey)
	authUC := appauth.NewUseCase(authClient, time.Duration(cfg.Auth.TimeoutSec)*time.Second)

	reconcileUC := inventory.NewReconcileUseCase(inventoryRepo)
	queryUC := inventory.NewInventoryQueryUseCase(inventoryRepo, productRepo)
	reportUC := inventory.NewReportUseCase(queryUC, pdf.NewMarotoReportGenerator())
	productUC := usecase.NewProductUseCase(productRepo)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Móvil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		ScheduleUC:     scheduleUC,
		Reconcile:      reconcileUC,
		InventoryQuery: queryUC,
		Report:         reportUC,
		JWTSecret:      cfg.Auth.JWTSecret,
		DefaultStoreID: cfg.Inventory.DefaultStoreID,
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
