package models

const (
	// RoleSuperAdmin is the role name stamped on every elevated session.
	RoleSuperAdmin = "super_admin"
	// RoleSuperAdminAlt is the legacy spelling some staff rows still carry.
	RoleSuperAdminAlt = "superadmin"
)

// IsSuperAdminRole reports whether a staff role name grants elevated
// privileges. The comparison is exact and case-sensitive.
func IsSuperAdminRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleSuperAdminAlt
}
