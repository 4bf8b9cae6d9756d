package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinModel "volunteerhub_backend/internals/features/checkins/model"
	reservationModel "volunteerhub_backend/internals/features/reservations/model"
	"volunteerhub_backend/internals/features/users/user/model"
	helper "volunteerhub_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/v/dashboard — the volunteer's profile, accrued hours and count
// of reservations still waiting to be served.
func (ctl *DashboardController) Dashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] load user %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
	}

	totalHours := 0
	var hourRow checkinModel.VolunteerHourModel
	if err := ctl.DB.First(&hourRow, "volunteer_hour_user_id = ?", userID).Error; err == nil {
		totalHours = hourRow.VolunteerHourTotalHours
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] load hours for %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
	}

	var activeReservations int64
	if err := ctl.DB.Model(&reservationModel.ReservationModel{}).
		Where("reservation_user_id = ? AND reservation_status = ?", userID, reservationModel.StatusReserved).
		Count(&activeReservations).Error; err != nil {
		log.Printf("[ERROR] count reservations for %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
	}

	var completed int64
	if err := ctl.DB.Model(&checkinModel.CheckInRecordModel{}).
		Where("check_in_user_id = ?", userID).
		Count(&completed).Error; err != nil {
		log.Printf("[ERROR] count check-ins for %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user": fiber.Map{
			"id":         user.UserID,
			"name":       user.UserName,
			"phone":      user.UserPhone,
			"email":      user.UserEmail,
			"role":       user.UserRole,
			"avatar_url": user.UserAvatarURL,
		},
		"total_hours":         totalHours,
		"active_reservations": activeReservations,
		"completed_check_ins": completed,
	})
}
