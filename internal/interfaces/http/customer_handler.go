package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
)

// CustomerHandler maneja el registro de clientes del panel admin.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.CustomerListResponse
// @Router       /api/admin/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.CustomerListResponse{OK: true, Customers: out})
}

// Save godoc
// @Summary      Crear o actualizar cliente por nombre
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCustomerRequest  true  "Cliente"
// @Success      200   {object}  dto.CustomerSavedResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/admin/customers [post]
func (h *CustomerHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.CustomerSavedResponse{OK: true, Customer: out})
}

// Update godoc
// @Summary      Actualizar teléfono de un cliente
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Teléfono"
// @Success      200   {object}  dto.OKResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("MISSING_ID", "Ogiltigt id."))
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdatePhone(int64(id), in); err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.OKResponse{OK: true})
}
