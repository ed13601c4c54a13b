package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/bennys-motorworks/verkstad-api/internal/application/auth"
	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ReceiptUC  *usecase.ReceiptUseCase
	WorkTypeUC *usecase.WorkTypeUseCase
	UserUC     *usecase.UserUseCase
	RankUC     *usecase.RankUseCase
	VehicleUC  *usecase.VehicleUseCase
	CustomerUC *usecase.CustomerUseCase
	StatsUC    *usecase.StatsUseCase
	Store      *session.Store
}

// Router registra las rutas de la API. Cada grupo del panel admin se protege
// solo con SU capacidad, nunca con una combinación: manage_users sin
// view_admin sigue pudiendo guardar usuarios.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y me requieren sesión)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Store)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren sesión). El orden importa: todo lo
	// registrado a partir de aquí pasa por RequireAuth.
	protected := api.Group("/", RequireAuth(deps.Store))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Receipts (cualquier usuario autenticado)
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts := protected.Group("/receipts")
	receipts.Get("/", receiptHandler.List)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/:id/pdf", receiptHandler.PDF)

	// Work types activos para el formulario de recibos
	workTypeHandler := NewWorkTypeHandler(deps.WorkTypeUC)
	protected.Get("/work-types", workTypeHandler.ListActive)

	// Panel admin: estadísticas y registros (view_admin)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/admin/stats", RequireCapability(entity.CapViewAdmin), statsHandler.Stats)

	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles := protected.Group("/admin/vehicles", RequireCapability(entity.CapViewAdmin))
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Post("/", vehicleHandler.Save)
	vehicles.Put("/:id", vehicleHandler.Update)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/admin/customers", RequireCapability(entity.CapViewAdmin))
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Save)
	customers.Put("/:id", customerHandler.Update)

	// Panel admin: catálogo de tipos de trabajo (manage_prices)
	workTypes := protected.Group("/admin/work-types", RequireCapability(entity.CapManagePrices))
	workTypes.Get("/", workTypeHandler.List)
	workTypes.Post("/", workTypeHandler.Save)
	workTypes.Put("/:id", workTypeHandler.Update)

	// Panel admin: usuarios y rangos (manage_users)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/admin/users", RequireCapability(entity.CapManageUsers))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)

	rankHandler := NewRankHandler(deps.RankUC)
	ranks := protected.Group("/admin/ranks", RequireCapability(entity.CapManageUsers))
	ranks.Get("/", rankHandler.List)
	ranks.Post("/", rankHandler.Save)

	// Cualquier otra ruta de la API: 404 con la envoltura común.
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "Ogiltig åtgärd."))
	})
}
