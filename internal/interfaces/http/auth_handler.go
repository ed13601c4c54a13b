package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/bennys-motorworks/verkstad-api/internal/application/auth"
	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
)

// AuthHandler maneja inicio y cierre de sesión.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	store *session.Store
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Authenticate(in.Personnummer, in.Password)
	if err != nil {
		// Mismo mensaje exista o no el usuario: sin enumeración de cuentas.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("INVALID_CREDENTIALS", "Fel personnummer eller lösenord."))
		}
		return fail(c, err, "")
	}
	sess, err := h.store.Get(c)
	if err != nil {
		return fail(c, err, "")
	}
	// Id de sesión nuevo en cada login: evita fijación de sesión.
	if err := sess.Regenerate(); err != nil {
		return fail(c, err, "")
	}
	saveIdentity(sess, id)
	if err := sess.Save(); err != nil {
		return fail(c, err, "")
	}
	return c.JSON(sessionResponse(id))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.OKResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return fail(c, err, "")
	}
	// Destruye el estado del lado servidor; la cookie queda huérfana y
	// cualquier reutilización posterior del id cae en 401.
	if err := sess.Destroy(); err != nil {
		return fail(c, err, "")
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if id == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "Inloggning krävs."))
	}
	return c.JSON(sessionResponse(id))
}

func sessionResponse(id *auth.Identity) dto.SessionResponse {
	return dto.SessionResponse{
		OK:           true,
		Personnummer: id.Username,
		DisplayName:  id.DisplayName,
		RankName:     id.RankName,
		Permissions:  id.Permissions,
	}
}
