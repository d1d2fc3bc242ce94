package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikku_backend/internals/constants"
	"praktikku_backend/internals/features/supervision/schools/controller"
	featuresMiddleware "praktikku_backend/internals/middlewares/features"
)

// ================================
// Admin routes (manage)
// Base path contoh: /api/a/schools, /api/a/routes, /api/a/lgas, /api/a/merge-groups
// ================================
func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	schoolCtl := controller.NewSchoolController(db)
	groupCtl := controller.NewGroupController(db)
	zoneCtl := controller.NewZoneController(db)
	mergeCtl := controller.NewMergeGroupController(db)

	guard := featuresMiddleware.RequireRoles(
		constants.RoleErrorAdmin("mengelola sekolah"),
		constants.AdminAndAbove,
	)

	schools := api.Group("/schools", guard)
	schools.Get("/", schoolCtl.List)
	schools.Get("/:id", schoolCtl.GetByID)
	schools.Post("/", schoolCtl.Create)
	schools.Put("/:id", schoolCtl.Update)
	schools.Delete("/:id", schoolCtl.Delete)

	// kelompok nested per sekolah
	schools.Get("/:school_id/groups", groupCtl.List)
	schools.Post("/:school_id/groups", groupCtl.Create)
	schools.Put("/:school_id/groups/:id", groupCtl.Update)

	api.Get("/routes", guard, zoneCtl.ListRoutes)
	api.Post("/routes", guard, zoneCtl.CreateRoute)
	api.Get("/lgas", guard, zoneCtl.ListLgas)
	api.Post("/lgas", guard, zoneCtl.CreateLga)

	merges := api.Group("/merge-groups", guard)
	merges.Get("/", mergeCtl.List)
	merges.Post("/", mergeCtl.Create)
	merges.Post("/:id/invalidate", mergeCtl.Invalidate)
}
