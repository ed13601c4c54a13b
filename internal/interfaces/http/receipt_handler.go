package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
)

// ReceiptHandler maneja las peticiones HTTP para recibos (protegido).
type ReceiptHandler struct {
	uc *usecase.ReceiptUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *usecase.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar recibo
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "Datos del recibo"
// @Success      201   {object}  dto.ReceiptCreatedResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	// El mecánico es siempre el usuario de la sesión, nunca el payload.
	id := GetIdentity(c)
	out, err := h.uc.Create(id.Username, in)
	if err != nil {
		return fail(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReceiptCreatedResponse{OK: true, Receipt: out})
}

// List godoc
// @Summary      Listar recibos
// @Tags         receipts
// @Produce      json
// @Success      200  {object}  dto.ReceiptListResponse
// @Router       /api/receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.ReceiptListResponse{OK: true, Receipts: out})
}

// PDF godoc
// @Summary      Recibo en PDF
// @Tags         receipts
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del recibo"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/pdf [get]
func (h *ReceiptHandler) PDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("MISSING_ID", "Ogiltigt id."))
	}
	doc, err := h.uc.PDF(int64(id))
	if err != nil {
		return fail(c, err, "")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="arbetsorder-%05d.pdf"`, id))
	return c.Send(doc)
}
