package details

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "somangchurch_backend/internals/features/users/auth/controller"
	middlewares "somangchurch_backend/internals/middlewares"
	middleware "somangchurch_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	authed := app.Group("/api/auth",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	authed.Get("/me", ctrl.Me)
	authed.Put("/password", ctrl.ChangePassword)
}
