package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
)

// OnboardingHandler maneja la elección de rol tras el registro.
type OnboardingHandler struct {
	uc *usecase.OnboardingUseCase
}

// NewOnboardingHandler construye el handler de onboarding.
func NewOnboardingHandler(uc *usecase.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

// CreateCompany godoc
// @Summary      Completar onboarding como empresa
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCompanyRequest  true  "perfil de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/onboarding/company [post]
func (h *OnboardingHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Location == "" || in.About == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, location y about son requeridos"})
	}
	out, err := h.uc.CreateCompany(GetUserID(c), in)
	if err != nil {
		return onboardingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateJobSeeker godoc
// @Summary      Completar onboarding como candidato
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateJobSeekerRequest  true  "perfil del candidato"
// @Success      201   {object}  dto.JobSeekerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/onboarding/job-seeker [post]
func (h *OnboardingHandler) CreateJobSeeker(c *fiber.Ctx) error {
	var in dto.CreateJobSeekerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.About == "" || in.Resume == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, about y resume son requeridos"})
	}
	out, err := h.uc.CreateJobSeeker(GetUserID(c), in)
	if err != nil {
		return onboardingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func onboardingError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrUserNotFound:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	case domain.ErrAlreadyOnboarded, domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ONBOARDED", Message: "el onboarding ya fue completado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
