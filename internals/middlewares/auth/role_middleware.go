package middleware

import (
	"github.com/gofiber/fiber/v2"

	"somangchurch_backend/internals/constants"
	helperauth "somangchurch_backend/internals/helpers/auth"
)

// RequireRoles lets the request through only when the token role is one of
// the given roles.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helperauth.GetRoleFromToken(c)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.ErrAdminOnly)
		}
		return c.Next()
	}
}

// IsAdmin shorthand for the admin-only groups.
func IsAdmin() fiber.Handler {
	return RequireRoles(constants.RoleAdmin)
}

// IsStaff allows admins and staff.
func IsStaff() fiber.Handler {
	return RequireRoles(constants.RoleAdmin, constants.RoleStaff)
}
