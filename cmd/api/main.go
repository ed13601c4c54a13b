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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/bennys-motorworks/verkstad-api/internal/application/auth"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
	infrapdf "github.com/bennys-motorworks/verkstad-api/internal/infrastructure/pdf"
	"github.com/bennys-motorworks/verkstad-api/internal/infrastructure/postgres"
	httpRouter "github.com/bennys-motorworks/verkstad-api/internal/interfaces/http"
	"github.com/bennys-motorworks/verkstad-api/pkg/config"
	"github.com/bennys-motorworks/verkstad-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Esquema: crea/ajusta tablas y siembra datos iniciales en cada arranque.
	// Idempotente; sin nada que hacer no emite DDL.
	schema := postgres.NewSchemaManager(pool, log)
	if err := schema.Ensure(ctx); err != nil {
		log.Fatal().Err(err).Msg("preparación del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	rankRepo := postgres.NewRankRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	workTypeRepo := postgres.NewWorkTypeRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()

	authUC := auth.NewAuthUseCase(userRepo, rankRepo)
	receiptUC := usecase.NewReceiptUseCase(receiptRepo, workTypeRepo, pdfGenerator)
	workTypeUC := usecase.NewWorkTypeUseCase(workTypeRepo)
	userUC := usecase.NewUserUseCase(userRepo, rankRepo)
	rankUC := usecase.NewRankUseCase(rankRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Verkstad API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	store := httpRouter.NewSessionStore(cfg.Session)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ReceiptUC:  receiptUC,
		WorkTypeUC: workTypeUC,
		UserUC:     userUC,
		RankUC:     rankUC,
		VehicleUC:  vehicleUC,
		CustomerUC: customerUC,
		StatsUC:    statsUC,
		Store:      store,
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
