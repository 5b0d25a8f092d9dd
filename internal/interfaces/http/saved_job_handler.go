package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
)

// SavedJobHandler maneja los avisos guardados del candidato.
type SavedJobHandler struct {
	uc *usecase.SavedJobUseCase
}

// NewSavedJobHandler construye el handler de guardados.
func NewSavedJobHandler(uc *usecase.SavedJobUseCase) *SavedJobHandler {
	return &SavedJobHandler{uc: uc}
}

// Save godoc
// @Summary      Guardar un aviso
// @Tags         saved-jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del aviso"
// @Success      201  {object}  dto.SavedJobResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/save [post]
func (h *SavedJobHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save(GetUserID(c), c.Params("id"))
	if err != nil {
		return savedJobError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Unsave godoc
// @Summary      Quitar un aviso guardado
// @Tags         saved-jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del guardado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/saved-jobs/{id} [delete]
func (h *SavedJobHandler) Unsave(c *fiber.Ctx) error {
	if err := h.uc.Unsave(GetUserID(c), c.Params("id")); err != nil {
		return savedJobError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar mis avisos guardados
// @Tags         saved-jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.SavedJobResponse
// @Router       /api/saved-jobs [get]
func (h *SavedJobHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return savedJobError(c, err)
	}
	return c.JSON(out)
}

func savedJobError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el aviso ya está guardado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
