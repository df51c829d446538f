package constants

// Admin account roles
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var AllRoles = []string{RoleAdmin, RoleStaff}

// Role error messages
const (
	ErrAdminOnly = "Only admins may access this feature."
	ErrStaffOnly = "Only staff or admins may access this feature."
)
