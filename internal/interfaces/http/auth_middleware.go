package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"

	appauth "github.com/bennys-motorworks/verkstad-api/internal/application/auth"
)

// Local key para la identidad cargada por RequireAuth.
const localIdentity = "identity"

// RequireAuth exige sesión autenticada y carga la identidad en c.Locals.
// Sin sesión responde 401 sin tocar ningún handler de dominio.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "Inloggning krävs."))
		}
		id := identityFromSession(sess)
		if id == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "Inloggning krävs."))
		}
		c.Locals(localIdentity, id)
		return c.Next()
	}
}

// RequireCapability exige una capacidad concreta del snapshot de la sesión.
// Debe encadenarse después de RequireAuth. Cada grupo del panel se protege
// solo con SU capacidad: un rango con manage_users sin view_admin puede
// guardar usuarios aunque no vea el resto del panel.
func RequireCapability(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := GetIdentity(c)
		if id == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "Inloggning krävs."))
		}
		if !id.Permissions.Has(capability) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "Åtkomst nekad."))
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después de RequireAuth).
func GetIdentity(c *fiber.Ctx) *appauth.Identity {
	v := c.Locals(localIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*appauth.Identity)
	return id
}
