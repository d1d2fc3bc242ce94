package featuresMiddleware

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "praktikku_backend/internals/helpers/auth"
)

// RequireRoles menolak request bila token tidak membawa salah satu role yang diizinkan.
// errMsg pakai template dari constants.RoleErrorXxx supaya pesan konsisten.
func RequireRoles(errMsg string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isOwner, _ := c.Locals(helperAuth.LocIsOwner).(bool); isOwner {
			return c.Next()
		}
		if !helperAuth.HasAnyRole(c, allowed) {
			return fiber.NewError(fiber.StatusForbidden, errMsg)
		}
		return c.Next()
	}
}
