package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
)

// StatsHandler maneja las estadísticas del panel admin.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas de recibos
// @Tags         admin
// @Produce      json
// @Param        from       query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to         query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Param        work_type  query  string  false  "Tipo de trabajo"
// @Param        mechanic   query  string  false  "Mecánico"
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/admin/stats [get]
func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	var in dto.StatsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_QUERY", "Ogiltiga filter."))
	}
	out, err := h.uc.Stats(c.Context(), in)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(out)
}
