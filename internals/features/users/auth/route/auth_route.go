package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "volunteerhub_backend/internals/features/users/auth/controller"
	middlewares "volunteerhub_backend/internals/middlewares"
	authMiddleware "volunteerhub_backend/internals/middlewares/auth"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// public
	baseAuth.Post("/login", middlewares.LoginRateLimiter(), authController.VolunteerLogin)
	baseAuth.Post("/admin-login", middlewares.LoginRateLimiter(), authController.AdminLogin)
	baseAuth.Post("/register-admin", middlewares.LoginRateLimiter(), authController.RegisterAdmin)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// requires a valid session
	protected := baseAuth.Group("/", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
}
