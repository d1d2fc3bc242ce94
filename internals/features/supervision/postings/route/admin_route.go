package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikku_backend/internals/constants"
	"praktikku_backend/internals/features/supervision/postings/controller"
	middlewares "praktikku_backend/internals/middlewares"
	featuresMiddleware "praktikku_backend/internals/middlewares/features"
)

// ================================
// Admin/Dean routes (auto-posting + postings)
// Base path contoh: /api/a/auto-posting
// ================================
func PostingAdminRoutes(api fiber.Router, db *gorm.DB) {
	auto := controller.NewAutoPostingController(db)
	postings := controller.NewPostingController(db)

	grp := api.Group("/auto-posting",
		featuresMiddleware.RequireRoles(
			constants.RoleErrorDean("auto-posting"),
			constants.DeanAndAbove,
		),
	)

	grp.Post("/preview", auto.Preview)
	grp.Post("/execute", middlewares.AutoPostingRateLimiter(), auto.Execute)
	grp.Get("/batches", auto.History)
	grp.Post("/batches/:id/rollback", auto.Rollback)

	list := api.Group("/postings",
		featuresMiddleware.RequireRoles(
			constants.RoleErrorSupervisor("daftar posting"),
			append(constants.DeanAndAbove, constants.SupervisorRoles...),
		),
	)
	list.Get("/", postings.List)
}
