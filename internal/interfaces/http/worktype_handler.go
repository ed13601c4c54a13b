package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
)

// WorkTypeHandler maneja el catálogo de tipos de trabajo. El listado de
// activos es para el formulario de recibos; el resto es panel admin.
type WorkTypeHandler struct {
	uc *usecase.WorkTypeUseCase
}

// NewWorkTypeHandler construye el handler.
func NewWorkTypeHandler(uc *usecase.WorkTypeUseCase) *WorkTypeHandler {
	return &WorkTypeHandler{uc: uc}
}

// ListActive godoc
// @Summary      Tipos de trabajo activos
// @Tags         work-types
// @Produce      json
// @Success      200  {object}  dto.WorkTypeListResponse
// @Router       /api/work-types [get]
func (h *WorkTypeHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.WorkTypeListResponse{OK: true, WorkTypes: out})
}

// List godoc
// @Summary      Todos los tipos de trabajo (incl. inactivos)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.WorkTypeListResponse
// @Router       /api/admin/work-types [get]
func (h *WorkTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.WorkTypeListResponse{OK: true, WorkTypes: out})
}

// Save godoc
// @Summary      Crear o actualizar tipo de trabajo por nombre
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveWorkTypeRequest  true  "Tipo de trabajo"
// @Success      200   {object}  dto.WorkTypeSavedResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/admin/work-types [post]
func (h *WorkTypeHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveWorkTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.WorkTypeSavedResponse{OK: true, WorkType: out})
}

// Update godoc
// @Summary      Actualizar tipo de trabajo por id
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del tipo"
// @Param        body  body  dto.SaveWorkTypeRequest  true  "Tipo de trabajo"
// @Success      200   {object}  dto.WorkTypeSavedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/work-types/{id} [put]
func (h *WorkTypeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("MISSING_ID", "Ogiltigt id."))
	}
	var in dto.SaveWorkTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		return fail(c, err, "Det finns redan en arbetstyp med det namnet.")
	}
	return c.JSON(dto.WorkTypeSavedResponse{OK: true, WorkType: out})
}
