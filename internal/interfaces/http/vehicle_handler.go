package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
)

// VehicleHandler maneja el registro de vehículos del panel admin.
type VehicleHandler struct {
	uc *usecase.VehicleUseCase
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// List godoc
// @Summary      Listar vehículos
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.VehicleListResponse
// @Router       /api/admin/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.VehicleListResponse{OK: true, Vehicles: out})
}

// Save godoc
// @Summary      Crear o actualizar vehículo por matrícula
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveVehicleRequest  true  "Vehículo"
// @Success      200   {object}  dto.VehicleSavedResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/admin/vehicles [post]
func (h *VehicleHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.VehicleSavedResponse{OK: true, Vehicle: out})
}

// Update godoc
// @Summary      Actualizar descripción de un vehículo
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vehículo"
// @Param        body  body  dto.UpdateVehicleRequest  true  "Descripción"
// @Success      200   {object}  dto.OKResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("MISSING_ID", "Ogiltigt id."))
	}
	var in dto.UpdateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateType(int64(id), in); err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.OKResponse{OK: true})
}
