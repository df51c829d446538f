package routes

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouteTable(t *testing.T) map[string]bool {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, db)

	table := make(map[string]bool)
	for _, r := range app.GetRoutes() {
		table[r.Method+" "+r.Path] = true
	}
	return table
}

func TestAttendanceMutationsAreAdminOnly(t *testing.T) {
	table := setupRouteTable(t)

	assert.True(t, table["POST /api/a/attendance/sheets"])
	assert.True(t, table["PATCH /api/a/attendance/records/:id"])
	assert.True(t, table["DELETE /api/a/attendance/sheets"])

	assert.False(t, table["POST /api/u/attendance/sheets"])
	assert.False(t, table["PATCH /api/u/attendance/records/:id"])
	assert.False(t, table["PUT /api/u/attendance/records/:id"])

	// the grouped roster read stays a staff route
	assert.True(t, table["GET /api/u/attendance/sheets"])
}

func TestPointRoutesAreAdminOnly(t *testing.T) {
	table := setupRouteTable(t)

	assert.True(t, table["POST /api/a/points/confirm"])
	assert.True(t, table["GET /api/a/points/ledger"])
	assert.True(t, table["GET /api/a/points/balances"])
	assert.True(t, table["GET /api/a/points/policies"])
	assert.True(t, table["PUT /api/a/points/policies"])

	assert.False(t, table["GET /api/u/points/ledger"])
	assert.False(t, table["GET /api/u/points/balances"])
}

func TestPublicSurfaceIsCalendarOnly(t *testing.T) {
	table := setupRouteTable(t)

	assert.True(t, table["GET /api/public/calendar/upcoming"])
	assert.False(t, table["GET /api/public/calendar/birthdays"])
	assert.True(t, table["GET /api/u/calendar/birthdays"])
}
