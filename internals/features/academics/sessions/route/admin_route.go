package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikku_backend/internals/constants"
	"praktikku_backend/internals/features/academics/sessions/controller"
	featuresMiddleware "praktikku_backend/internals/middlewares/features"
)

// ================================
// Admin routes (manage)
// Base path contoh: /api/a/sessions
// ================================
func SessionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSessionController(db)

	admin := api.Group("/sessions",
		featuresMiddleware.RequireRoles(
			constants.RoleErrorAdmin("mengelola session"),
			constants.AdminAndAbove,
		),
	)

	admin.Get("/", ctl.List)
	admin.Get("/:id", ctl.GetByID)
	admin.Post("/", ctl.Create)
	admin.Put("/:id", ctl.Update)
	admin.Delete("/:id", ctl.Delete)
}
