package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "volunteerhub_backend/internals/features/activities/controller"
)

// Base: /api/v — caller must already be an authenticated volunteer.
func VolunteerActivityRoutes(volunteer fiber.Router, db *gorm.DB) {
	userController := controller.NewActivityUserController(db)

	volunteer.Get("/activities", userController.List)
	volunteer.Get("/activities/:id", userController.Detail)
	volunteer.Get("/activities/:id/reservation-count", userController.ReservationCount)
}

// Base: /api/a — caller must already be authenticated as ADMIN.
func AdminActivityRoutes(admin fiber.Router, db *gorm.DB) {
	adminController := controller.NewActivityAdminController(db)

	admin.Post("/activities", adminController.Create)
	admin.Get("/activities", adminController.List)
	admin.Put("/activities", adminController.Update)
	admin.Delete("/activities", adminController.Delete)
	admin.Get("/activities/date/:date", adminController.ByDate)
	admin.Get("/activities/month/:month", adminController.ByMonth)
	admin.Get("/activities/:id", adminController.Detail)
}
