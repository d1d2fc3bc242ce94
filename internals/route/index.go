package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middleware "praktikku_backend/internals/middlewares/auth"
	featuresMiddleware "praktikku_backend/internals/middlewares/features"
	routeDetails "praktikku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== ADMIN (per institusi) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + Scope)...")
	admin := app.Group("/api/a",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.UseInstitutionScope(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academics routes...")
	routeDetails.AcademicsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Supervision routes...")
	routeDetails.SupervisionAdminRoutes(admin, db)
}
