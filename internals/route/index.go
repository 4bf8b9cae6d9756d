package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/constants"
	activityRoute "volunteerhub_backend/internals/features/activities/route"
	applicationRoute "volunteerhub_backend/internals/features/applications/route"
	checkinRoute "volunteerhub_backend/internals/features/checkins/route"
	positionRoute "volunteerhub_backend/internals/features/positions/route"
	reservationRoute "volunteerhub_backend/internals/features/reservations/route"
	authRoute "volunteerhub_backend/internals/features/users/auth/route"
	userRoute "volunteerhub_backend/internals/features/users/user/route"
	authMiddleware "volunteerhub_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the three API surfaces: the open public group, the
// volunteer group and the admin group.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	// open, no session required
	public := app.Group("/api/public")
	applicationRoute.PublicApplicationRoutes(public, db)

	// volunteer surface
	volunteer := app.Group("/api/v",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice("Volunteer account required", constants.VolunteerRoles),
	)
	activityRoute.VolunteerActivityRoutes(volunteer, db)
	reservationRoute.VolunteerReservationRoutes(volunteer, db)
	checkinRoute.VolunteerCheckInRoutes(volunteer, db)
	userRoute.VolunteerUserRoutes(volunteer, db)

	// admin surface
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin account required", constants.RoleAdmin),
	)
	positionRoute.AdminPositionRoutes(admin, db)
	activityRoute.AdminActivityRoutes(admin, db)
	applicationRoute.AdminApplicationRoutes(admin, db)
	userRoute.AdminVolunteerRoutes(admin, db)
}
