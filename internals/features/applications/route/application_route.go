package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "volunteerhub_backend/internals/features/applications/controller"
	middlewares "volunteerhub_backend/internals/middlewares"
)

// Base: /api/public
func PublicApplicationRoutes(public fiber.Router, db *gorm.DB) {
	applicationController := controller.NewApplicationController(db)

	public.Post("/apply", middlewares.ApplyRateLimiter(), applicationController.Apply)
}

// Base: /api/a — caller must already be authenticated as ADMIN.
func AdminApplicationRoutes(admin fiber.Router, db *gorm.DB) {
	adminController := controller.NewApplicationAdminController(db)

	admin.Get("/applications", adminController.List)
	admin.Post("/applications/:id/action", adminController.Action)
}
