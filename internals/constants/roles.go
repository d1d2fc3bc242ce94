package constants

import "fmt"

// Role names (konsisten dengan klaim `roles` di JWT)
const (
	RoleOwner        = "owner"
	RoleAdmin        = "admin"
	RoleDean         = "dean"
	RoleSupervisor   = "supervisor"
	RoleFieldMonitor = "field_monitor"
	RoleStudent      = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess      = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyDeansCanAccess       = "❌ Hanya dean atau admin yang boleh mengakses fitur %s."
	ErrOnlySupervisorsCanAccess = "❌ Hanya supervisor, field monitor, atau admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorDean(feature string) string {
	return fmt.Sprintf(ErrOnlyDeansCanAccess, feature)
}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleDean,
		RoleSupervisor,
		RoleFieldMonitor,
		RoleStudent,
	}

	SupervisorRoles = []string{
		RoleSupervisor,
		RoleFieldMonitor,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	DeanAndAbove = []string{
		RoleDean,
		RoleAdmin,
		RoleOwner,
	}
)
