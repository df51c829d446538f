package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middleware "somangchurch_backend/internals/middlewares/auth"
	routeDetails "somangchurch_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → no JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (staff) → JWT required
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		middleware.IsStaff(),
	)

	// ADMIN → JWT + admin role
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		middleware.IsAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Member routes...")
	routeDetails.MemberUserRoutes(private, db)
	routeDetails.MemberAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceUserRoutes(private, db)
	routeDetails.AttendanceAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Point routes...")
	routeDetails.PointAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Calendar routes...")
	routeDetails.CalendarPublicRoutes(public, db)
	routeDetails.CalendarUserRoutes(private, db)
	routeDetails.CalendarAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Party routes...")
	routeDetails.PartyUserRoutes(private, db)
	routeDetails.PartyAdminRoutes(admin, db)
}
