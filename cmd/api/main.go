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
	"github.com/seedhouse/farmops-api/internal/application/auth"
	"github.com/seedhouse/farmops-api/internal/application/draft"
	appjob "github.com/seedhouse/farmops-api/internal/application/job"
	"github.com/seedhouse/farmops-api/internal/application/report"
	"github.com/seedhouse/farmops-api/internal/application/usecase"
	infraexcel "github.com/seedhouse/farmops-api/internal/infrastructure/excel"
	infrapdf "github.com/seedhouse/farmops-api/internal/infrastructure/pdf"
	"github.com/seedhouse/farmops-api/internal/infrastructure/postgres"
	httpRouter "github.com/seedhouse/farmops-api/internal/interfaces/http"
	"github.com/seedhouse/farmops-api/pkg/config"
	"github.com/seedhouse/farmops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	locationRepo := postgres.NewStorageLocationRepository(pool)
	boxRepo := postgres.NewBoxRepository(pool)
	physicalBoxRepo := postgres.NewPhysicalBoxRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	draftRepo := postgres.NewDraftRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	boxUC := usecase.NewBoxUseCase(boxRepo)
	physicalBoxUC := usecase.NewPhysicalBoxUseCase(physicalBoxRepo)

	completeJobUC := appjob.NewCompleteJobUseCase(txRunner, draftRepo, physicalBoxRepo)
	draftUC := draft.NewUseCase(draftRepo, physicalBoxRepo)
	autosaver := draft.NewAutosaver(cfg.Autosave, draftUC.Save)
	go autosaver.Run(ctx)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	excelExporter := infraexcel.NewReportExporter()
	reportUC := report.NewUseCase(reportRepo, pdfGenerator, excelExporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FarmOps API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		EmployeeUC:    employeeUC,
		LocationUC:    locationUC,
		BoxUC:         boxUC,
		PhysicalBoxUC: physicalBoxUC,
		CompleteJob:   completeJobUC,
		DraftUC:       draftUC,
		Autosaver:     autosaver,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
