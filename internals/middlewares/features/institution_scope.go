package featuresMiddleware

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "praktikku_backend/internals/helpers/auth"
)

// UseInstitutionScope memastikan token membawa scope institusi.
// Semua query fitur wajib difilter dengan institution_id ini — tidak ada
// context institusi global/ambient di server.
func UseInstitutionScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helperAuth.GetInstitutionIDFromToken(c); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Token tidak membawa scope institusi")
		}
		return c.Next()
	}
}
