package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "volunteerhub_backend/internals/features/users/user/controller"
)

// Base: /api/v — caller must already be an authenticated volunteer.
func VolunteerUserRoutes(volunteer fiber.Router, db *gorm.DB) {
	dashboardController := controller.NewDashboardController(db)

	volunteer.Get("/dashboard", dashboardController.Dashboard)
}

// Base: /api/a — caller must already be authenticated as ADMIN.
func AdminVolunteerRoutes(admin fiber.Router, db *gorm.DB) {
	volunteerController := controller.NewVolunteerAdminController(db)

	admin.Get("/volunteers", volunteerController.List)
	admin.Get("/volunteers/:id", volunteerController.Detail)
}
