package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postingRoute "praktikku_backend/internals/features/supervision/postings/route"
	schoolRoute "praktikku_backend/internals/features/supervision/schools/route"
	supervisorRoute "praktikku_backend/internals/features/supervision/supervisors/route"
)

func SupervisionAdminRoutes(api fiber.Router, db *gorm.DB) {
	supervisorRoute.SupervisorAdminRoutes(api, db)
	schoolRoute.SchoolAdminRoutes(api, db)
	postingRoute.PostingAdminRoutes(api, db)
}
