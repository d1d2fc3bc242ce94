package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang dihydrate oleh middleware AuthJWT
const (
	LocUserID        = "user_id"
	LocInstitutionID = "institution_id"
	LocFacultyID     = "faculty_id"
	LocRoles         = "roles"
	LocIsOwner       = "is_owner"
)

// GetUserIDFromToken mengambil user_id dari Locals (diisi AuthJWT)
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ada di token")
	}
	return id, nil
}

// GetInstitutionIDFromToken mengambil scope institusi aktif dari Locals
func GetInstitutionIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocInstitutionID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "institution_id tidak ada di token")
	}
	return id, nil
}

// GetFacultyIDFromToken: nil jika token tidak membawa faculty (bukan dean)
func GetFacultyIDFromToken(c *fiber.Ctx) *uuid.UUID {
	raw, _ := c.Locals(LocFacultyID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &id
}

// GetRolesFromToken menormalkan klaim roles ([]any / []string) jadi []string
func GetRolesFromToken(c *fiber.Ctx) []string {
	switch v := c.Locals(LocRoles).(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// HasAnyRole true jika salah satu role di token cocok
func HasAnyRole(c *fiber.Ctx, allowed []string) bool {
	roles := GetRolesFromToken(c)
	for _, have := range roles {
		for _, want := range allowed {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
