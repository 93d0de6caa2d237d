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

	"github.com/gstbillpro/gstbill-api/internal/application/auth"
	"github.com/gstbillpro/gstbill-api/internal/application/billing"
	"github.com/gstbillpro/gstbill-api/internal/application/reports"
	"github.com/gstbillpro/gstbill-api/internal/application/usecase"
	"github.com/gstbillpro/gstbill-api/internal/infrastructure/excel"
	infrapdf "github.com/gstbillpro/gstbill-api/internal/infrastructure/pdf"
	"github.com/gstbillpro/gstbill-api/internal/infrastructure/postgres"
	httpRouter "github.com/gstbillpro/gstbill-api/internal/interfaces/http"
	"github.com/gstbillpro/gstbill-api/pkg/config"
	"github.com/gstbillpro/gstbill-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	partyUC := billing.NewPartyUseCase(partyRepo)
	productUC := billing.NewProductUseCase(productRepo)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(
		txRunner, partyRepo, companyRepo, productRepo, invoiceRepo,
	)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	documentUC := billing.NewDocumentUseCase(invoiceRepo, companyRepo, partyRepo, pdfGenerator)

	gstReportUC := reports.NewGSTReportUseCase(invoiceRepo, excel.NewGSTReportExporter())

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
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

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GSTBill API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		PartyUC:       partyUC,
		ProductUC:     productUC,
		CreateInvoice: createInvoiceUC,
		DocumentUC:    documentUC,
		GSTReportUC:   gstReportUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
