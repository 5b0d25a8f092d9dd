package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
)

// ApplicationHandler maneja postulaciones y su revisión.
type ApplicationHandler struct {
	uc *applications.UseCase
}

// NewApplicationHandler construye el handler de postulaciones.
func NewApplicationHandler(uc *applications.UseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Apply godoc
// @Summary      Postularse a un aviso
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del aviso"
// @Param        body  body  dto.ApplyRequest  true  "datos de la postulación"
// @Success      201   {object}  dto.ApplicationResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Apply(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return applicationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListApplicants godoc
// @Summary      Listar postulantes de un aviso propio
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del aviso"
// @Success      200  {array}  dto.ApplicantResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/applicants [get]
func (h *ApplicationHandler) ListApplicants(c *fiber.Ctx) error {
	out, err := h.uc.ListApplicants(GetUserID(c), c.Params("id"))
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una postulación de un aviso propio
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id             path  string  true  "ID del aviso"
// @Param        applicationId  path  string  true  "ID de la postulación"
// @Param        body           body  dto.UpdateApplicationStatusRequest  true  "nuevo estado"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/applications/{applicationId} [patch]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.UpdateStatus(GetUserID(c), c.Params("id"), c.Params("applicationId"), in.Status)
	if err != nil {
		return applicationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListAppliedJobs godoc
// @Summary      Historial de postulaciones del candidato autenticado
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.AppliedJobResponse
// @Router       /api/applications [get]
func (h *ApplicationHandler) ListAppliedJobs(c *fiber.Ctx) error {
	out, err := h.uc.ListAppliedJobs(GetUserID(c))
	if err != nil {
		return applicationError(c, err)
	}
	return c.JSON(out)
}

func applicationError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la postulación inválidos"})
	case domain.ErrNotJobSeeker:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_JOB_SEEKER", Message: "la operación requiere un perfil de candidato"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el aviso no pertenece a su empresa"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrAlreadyApplied:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_APPLIED", Message: "ya existe una postulación a este aviso"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
