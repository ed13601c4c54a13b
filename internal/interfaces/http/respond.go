package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
)

// fail traduce errores de aplicación a la envoltura JSON común.
// duplicateMsg personaliza el 409 por recurso; vacío usa el texto genérico.
func fail(c *fiber.Ctx, err error, duplicateMsg string) error {
	if msgs, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Validation(msgs))
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "Hittades inte."))
	case errors.Is(err, domain.ErrDuplicate):
		if duplicateMsg == "" {
			duplicateMsg = "Posten finns redan."
		}
		return c.Status(fiber.StatusConflict).JSON(dto.Err("DUPLICATE", duplicateMsg))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
}

// badBody respuesta estándar para cuerpos JSON mal formados.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "Ogiltig begäran."))
}
