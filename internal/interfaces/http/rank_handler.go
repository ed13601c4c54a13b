package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
)

// RankHandler maneja los rangos y sus capacidades (panel admin).
type RankHandler struct {
	uc *usecase.RankUseCase
}

// NewRankHandler construye el handler.
func NewRankHandler(uc *usecase.RankUseCase) *RankHandler {
	return &RankHandler{uc: uc}
}

// List godoc
// @Summary      Listar rangos
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.RankListResponse
// @Router       /api/admin/ranks [get]
func (h *RankHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.RankListResponse{OK: true, Ranks: out})
}

// Save godoc
// @Summary      Crear o actualizar rango por nombre
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveRankRequest  true  "Rango"
// @Success      200   {object}  dto.RankSavedResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/admin/ranks [post]
func (h *RankHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveRankRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.RankSavedResponse{OK: true, Rank: out})
}
