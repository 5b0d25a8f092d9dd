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

	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/billing"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/cache"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/events"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/payments"
	infrapdf "github.com/jhoicas/Empleos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Empleos-api/internal/interfaces/http"
	"github.com/jhoicas/Empleos-api/pkg/config"
	"github.com/jhoicas/Empleos-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	seekerRepo := postgres.NewJobSeekerRepository(pool)
	jobRepo := postgres.NewJobPostRepository(pool)
	appRepo := postgres.NewApplicationRepository(pool)
	savedRepo := postgres.NewSavedJobPostRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache del listado público. Si Redis no está, degrada a bypass.
	listCache := cache.NewRedis(cfg.Redis, log)
	defer listCache.Close()
	invalidator := usecase.NewListInvalidator(listCache)

	paymentGateway := payments.NewRESTClient(cfg.Payments)
	eventDispatcher := events.NewHTTPDispatcher(cfg.Events)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	onboardingUC := usecase.NewOnboardingUseCase(userRepo, companyRepo, seekerRepo)
	jobUC := usecase.NewJobPostUseCase(
		jobRepo, companyRepo, userRepo,
		paymentGateway, eventDispatcher, invalidator,
		cfg.App.PublicURL, cfg.Payments.Currency,
	)
	jobListUC := usecase.NewJobListUseCase(jobRepo, listCache, log)
	applicationUC := applications.NewUseCase(txRunner, appRepo, jobRepo, seekerRepo, companyRepo)
	savedJobUC := usecase.NewSavedJobUseCase(savedRepo, jobRepo)
	webhookUC := billing.NewPaymentWebhookUseCase(userRepo, companyRepo, jobRepo, invalidator)
	receiptUC := billing.NewReceiptUseCase(jobRepo, companyRepo, receiptGenerator, cfg.Payments.Currency)

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
		Title:    "Empleos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		OnboardingUC:  onboardingUC,
		JobUC:         jobUC,
		JobListUC:     jobListUC,
		ApplicationUC: applicationUC,
		SavedJobUC:    savedJobUC,
		WebhookUC:     webhookUC,
		ReceiptUC:     receiptUC,
		JWTSecret:     cfg.JWT.Secret,
		WebhookSecret: cfg.Payments.WebhookSecret,
		Logger:        log,
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
