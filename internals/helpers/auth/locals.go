package helperauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID           = "user_id"
	LocUserRole         = "user_role"
	LocActiveMinistryID = "active_ministry_id"
)

// GetUserIDFromToken returns the authenticated user's id from locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocUserID, "Unauthorized")
}

// GetRoleFromToken returns the role claim ("admin", "staff", ...).
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

// GetActiveMinistryID resolves the ministry scope for the request: the
// ministry_id claim, overridable by an explicit X-Ministry-ID header. This is
// the request-scoped replacement for the old client's ambient selection state.
func GetActiveMinistryID(c *fiber.Ctx) (uuid.UUID, error) {
	if h := strings.TrimSpace(c.Get("X-Ministry-ID")); h != "" {
		id, err := uuid.Parse(h)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid X-Ministry-ID header")
		}
		return id, nil
	}
	return uuidLocal(c, LocActiveMinistryID, "No active ministry in token")
}

func uuidLocal(c *fiber.Ctx, key, msg string) (uuid.UUID, error) {
	switch v := c.Locals(key).(type) {
	case uuid.UUID:
		if v != uuid.Nil {
			return v, nil
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
}
