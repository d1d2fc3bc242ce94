package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikku_backend/internals/constants"
	"praktikku_backend/internals/features/supervision/supervisors/controller"
	featuresMiddleware "praktikku_backend/internals/middlewares/features"
)

// ================================
// Admin routes (manage)
// Base path contoh: /api/a/supervisors, /api/a/ranks, /api/a/faculties
// ================================
func SupervisorAdminRoutes(api fiber.Router, db *gorm.DB) {
	supCtl := controller.NewSupervisorController(db)
	rankCtl := controller.NewRankController(db)
	facCtl := controller.NewFacultyController(db)

	guard := featuresMiddleware.RequireRoles(
		constants.RoleErrorAdmin("mengelola supervisor"),
		constants.AdminAndAbove,
	)

	sup := api.Group("/supervisors", guard)
	sup.Get("/", supCtl.List)
	sup.Get("/:id", supCtl.GetByID)
	sup.Post("/", supCtl.Create)
	sup.Put("/:id", supCtl.Update)
	sup.Delete("/:id", supCtl.Delete)

	ranks := api.Group("/ranks", guard)
	ranks.Get("/", rankCtl.List)
	ranks.Post("/", rankCtl.Create)

	faculties := api.Group("/faculties", guard)
	faculties.Get("/", facCtl.List)
	faculties.Post("/", facCtl.Create)
}
