package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "volunteerhub_backend/internals/features/reservations/controller"
)

// Base: /api/v — caller must already be an authenticated volunteer.
func VolunteerReservationRoutes(volunteer fiber.Router, db *gorm.DB) {
	reservationController := controller.NewReservationController(db)

	volunteer.Post("/activities/:id/reserve", reservationController.Reserve)
	volunteer.Get("/reservations", reservationController.ListMine)
	volunteer.Patch("/reservations", reservationController.Cancel)
}
