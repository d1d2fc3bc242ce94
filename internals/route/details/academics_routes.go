package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionRoute "praktikku_backend/internals/features/academics/sessions/route"
)

func AcademicsAdminRoutes(api fiber.Router, db *gorm.DB) {
	sessionRoute.SessionAdminRoutes(api, db)
}
