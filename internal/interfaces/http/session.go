package http

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/bennys-motorworks/verkstad-api/internal/application/auth"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/pkg/config"
)

// Claves bajo las que viaja la identidad en la sesión de servidor.
// La sesión guarda un snapshot derivado de permisos, no estado autoritativo.
const (
	sessUserID       = "user_id"
	sessUsername     = "username"
	sessDisplayName  = "display_name"
	sessRankID       = "rank_id"
	sessRankName     = "rank_name"
	sessViewAdmin    = "perm_view_admin"
	sessManageUsers  = "perm_manage_users"
	sessManagePrices = "perm_manage_prices"
	sessEditReceipts = "perm_edit_receipts"
)

// NewSessionStore construye el almacén de sesiones: estado del lado servidor,
// cookie solo con el id (HTTPOnly, SameSite Lax).
func NewSessionStore(cfg config.SessionConfig) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     time.Duration(cfg.TTLMinutes) * time.Minute,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})
}

// saveIdentity persiste el principal autenticado y su snapshot de permisos.
func saveIdentity(sess *session.Session, id *auth.Identity) {
	sess.Set(sessUserID, id.UserID)
	sess.Set(sessUsername, id.Username)
	sess.Set(sessDisplayName, id.DisplayName)
	if id.RankID != nil {
		sess.Set(sessRankID, *id.RankID)
	}
	sess.Set(sessRankName, id.RankName)
	sess.Set(sessViewAdmin, id.Permissions.ViewAdmin)
	sess.Set(sessManageUsers, id.Permissions.ManageUsers)
	sess.Set(sessManagePrices, id.Permissions.ManagePrices)
	sess.Set(sessEditReceipts, id.Permissions.EditReceipts)
}

// identityFromSession reconstruye la identidad; nil si la sesión no está autenticada.
func identityFromSession(sess *session.Session) *auth.Identity {
	username, ok := sess.Get(sessUsername).(string)
	if !ok || username == "" {
		return nil
	}
	id := &auth.Identity{Username: username}
	if v, ok := sess.Get(sessUserID).(int64); ok {
		id.UserID = v
	}
	if v, ok := sess.Get(sessDisplayName).(string); ok {
		id.DisplayName = v
	}
	if v, ok := sess.Get(sessRankID).(int64); ok {
		rankID := v
		id.RankID = &rankID
	}
	if v, ok := sess.Get(sessRankName).(string); ok {
		id.RankName = v
	}
	id.Permissions = entity.Permissions{
		ViewAdmin:    boolFromSession(sess, sessViewAdmin),
		ManageUsers:  boolFromSession(sess, sessManageUsers),
		ManagePrices: boolFromSession(sess, sessManagePrices),
		EditReceipts: boolFromSession(sess, sessEditReceipts),
	}
	return id
}

func boolFromSession(sess *session.Session, key string) bool {
	v, _ := sess.Get(key).(bool)
	return v
}
