package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
)

// Mensaje de conflicto al guardar usuarios con personnummer repetido.
const userDuplicateMsg = "Kunde inte skapa användare. Kontrollera att personnummer inte redan finns."

// UserHandler maneja el mantenimiento de usuarios del panel admin.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.UserListResponse{OK: true, Users: out})
}

// Create godoc
// @Summary      Crear usuario
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserSavedResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/admin/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, userDuplicateMsg)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserSavedResponse{OK: true, User: out})
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.SaveUserRequest  true  "Datos del usuario"
// @Success      200   {object}  dto.UserSavedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("MISSING_ID", "Ogiltigt id."))
	}
	var in dto.SaveUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		return fail(c, err, userDuplicateMsg)
	}
	return c.JSON(dto.UserSavedResponse{OK: true, User: out})
}
