package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/billing"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
)

// JobHandler maneja el ciclo de vida de los avisos y su listado público.
type JobHandler struct {
	jobUC     *usecase.JobPostUseCase
	listUC    *usecase.JobListUseCase
	receiptUC *billing.ReceiptUseCase
}

// NewJobHandler construye el handler de avisos.
func NewJobHandler(jobUC *usecase.JobPostUseCase, listUC *usecase.JobListUseCase, receiptUC *billing.ReceiptUseCase) *JobHandler {
	return &JobHandler{jobUC: jobUC, listUC: listUC, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Crear aviso (nace en draft, devuelve URL de pago)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateJobRequest  true  "datos del aviso"
// @Success      201   {object}  dto.CreateJobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.jobUC.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return jobError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar aviso propio
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del aviso"
// @Param        body  body  dto.UpdateJobRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.JobResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.jobUC.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar aviso propio
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del aviso"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.jobUC.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return jobError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMine godoc
// @Summary      Listar los avisos de mi empresa (todos los estados)
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.JobResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/jobs/mine [get]
func (h *JobHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.jobUC.ListMine(GetUserID(c))
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un aviso
// @Description  Un aviso no activo solo es visible para la empresa dueña.
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "ID del aviso"
// @Success      200  {object}  dto.JobResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.jobUC.GetByID(c.Params("id"), GetUserID(c))
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listado público de avisos activos
// @Tags         jobs
// @Produce      json
// @Param        page       query  int     false  "página (desde 1)"
// @Param        page_size  query  int     false  "tamaño de página (máx 50)"
// @Param        job_types  query  []string false  "filtro por tipo de empleo"
// @Param        location   query  string  false  "filtro por ubicación"
// @Success      200  {object}  dto.JobListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	var q dto.JobListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de listado inválidos"})
	}
	out, err := h.listUC.List(c.Context(), q)
	if err != nil {
		return jobError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Recibo de pago del aviso en PDF
// @Tags         jobs
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del aviso"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/receipt [get]
func (h *JobHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receiptUC.GetReceipt(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_PAID", Message: "el aviso aún no tiene un pago confirmado"})
		}
		return jobError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

func jobError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del aviso inválidos"})
	case domain.ErrUserNotFound:
		// Token válido de un usuario que ya no existe en la base.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la operación requiere un perfil de empresa"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "aviso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
