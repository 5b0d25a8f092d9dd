package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/billing"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	OnboardingUC  *usecase.OnboardingUseCase
	JobUC         *usecase.JobPostUseCase
	JobListUC     *usecase.JobListUseCase
	ApplicationUC *applications.UseCase
	SavedJobUC    *usecase.SavedJobUseCase
	WebhookUC     *billing.PaymentWebhookUseCase
	ReceiptUC     *billing.ReceiptUseCase
	JWTSecret     string
	WebhookSecret string
	Logger        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Webhook del proveedor de pagos (público; autenticado por firma HMAC)
	webhookHandler := NewWebhookHandler(deps.WebhookUC, deps.WebhookSecret, deps.Logger)
	api.Post("/webhook/payment", webhookHandler.HandleEvent)

	// Listado público de avisos activos
	jobHandler := NewJobHandler(deps.JobUC, deps.JobListUC, deps.ReceiptUC)
	api.Get("/jobs", jobHandler.List)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Onboarding (protegido, previo a tener rol)
	onboarding := protected.Group("/onboarding")
	onboardingHandler := NewOnboardingHandler(deps.OnboardingUC)
	onboarding.Post("/company", onboardingHandler.CreateCompany)
	onboarding.Post("/job-seeker", onboardingHandler.CreateJobSeeker)

	// Avisos (protegido, solo empresas)
	companyOnly := RequireRole(entity.UserTypeCompany)
	protected.Post("/jobs", companyOnly, jobHandler.Create)
	protected.Get("/jobs/mine", companyOnly, jobHandler.ListMine)
	protected.Put("/jobs/:id", companyOnly, jobHandler.Update)
	protected.Delete("/jobs/:id", companyOnly, jobHandler.Delete)
	protected.Get("/jobs/:id/receipt", companyOnly, jobHandler.Receipt)

	// Revisión de postulantes (protegido, solo empresas)
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	protected.Get("/jobs/:id/applicants", companyOnly, applicationHandler.ListApplicants)
	protected.Patch("/jobs/:id/applications/:applicationId", companyOnly, applicationHandler.UpdateStatus)

	// Postulaciones y guardados (protegido, solo candidatos)
	seekerOnly := RequireRole(entity.UserTypeJobSeeker)
	savedJobHandler := NewSavedJobHandler(deps.SavedJobUC)
	protected.Post("/jobs/:id/apply", seekerOnly, applicationHandler.Apply)
	protected.Get("/applications", seekerOnly, applicationHandler.ListAppliedJobs)
	protected.Post("/jobs/:id/save", seekerOnly, savedJobHandler.Save)
	protected.Get("/saved-jobs", seekerOnly, savedJobHandler.List)
	protected.Delete("/saved-jobs/:id", seekerOnly, savedJobHandler.Unsave)

	// Detalle de un aviso: público para activos; los borradores solo los ve la
	// empresa dueña, por eso el token es opcional. Va al final para no pisar
	// /jobs/mine ni las subrutas de /jobs/:id.
	api.Get("/jobs/:id", OptionalAuthMiddleware(deps.JWTSecret), jobHandler.GetByID)
}
