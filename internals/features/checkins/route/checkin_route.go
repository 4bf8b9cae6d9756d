package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "volunteerhub_backend/internals/features/checkins/controller"
)

// Base: /api/v — caller must already be an authenticated volunteer.
func VolunteerCheckInRoutes(volunteer fiber.Router, db *gorm.DB) {
	checkInController := controller.NewCheckInController(db)

	volunteer.Post("/activities/:id/check-in", checkInController.CheckIn)
	volunteer.Get("/activities/:id/check-in-records", checkInController.ListForActivity)
}
