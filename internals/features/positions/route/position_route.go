package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "volunteerhub_backend/internals/features/positions/controller"
)

// Base: /api/a — caller must already be authenticated as ADMIN.
func AdminPositionRoutes(admin fiber.Router, db *gorm.DB) {
	positionController := controller.NewPositionController(db)

	admin.Get("/positions", positionController.List)
	admin.Post("/positions", positionController.Create)
	admin.Put("/positions/:id", positionController.Update)
	admin.Delete("/positions/:id", positionController.Delete)
}
