package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/features/activities/dto"
	"volunteerhub_backend/internals/features/activities/model"
	"volunteerhub_backend/internals/features/activities/service"
	reservationModel "volunteerhub_backend/internals/features/reservations/model"
	helper "volunteerhub_backend/internals/helpers"
	"volunteerhub_backend/internals/helpers/timeslot"
)

type ActivityUserController struct {
	DB *gorm.DB
}

func NewActivityUserController(db *gorm.DB) *ActivityUserController {
	return &ActivityUserController{DB: db}
}

// GET /api/v/activities — activities that have not ended yet, soonest
// first.
func (ctl *ActivityUserController) List(c *fiber.Ctx) error {
	now := time.Now()
	today := now.Format("2006-01-02")
	nowClock := now.Format("15:04")

	var activities []model.ActivityModel
	if err := ctl.DB.
		Where("activity_date > ? OR (activity_date = ? AND activity_end_time > ?)", today, today, nowClock).
		Order("activity_date ASC, activity_start_time ASC").
		Find(&activities).Error; err != nil {
		log.Printf("[ERROR] list upcoming activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}

	summaries, err := service.BuildSummaries(ctl.DB, activities)
	if err != nil {
		log.Printf("[ERROR] summarize activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}
	return helper.JsonOK(c, "ok", summaries)
}

// GET /api/v/activities/:id — activity detail with derived time slots and
// the caller's own non-cancelled reservations on it.
func (ctl *ActivityUserController) Detail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var activity model.ActivityModel
	if err := ctl.DB.First(&activity, "activity_id = ?", activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("[ERROR] load activity %s: %v", activityID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	summaries, err := service.BuildSummaries(ctl.DB, []model.ActivityModel{activity})
	if err != nil || len(summaries) != 1 {
		log.Printf("[ERROR] summarize activity %s: %v", activityID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	var mine []reservationModel.ReservationModel
	if err := ctl.DB.
		Where("reservation_activity_id = ? AND reservation_user_id = ? AND reservation_status <> ?",
			activityID, userID, reservationModel.StatusCancelled).
		Order("reservation_time_slot ASC").
		Find(&mine).Error; err != nil {
		log.Printf("[ERROR] load own reservations for %s: %v", activityID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	myViews := make([]dto.MyReservationView, 0, len(mine))
	for i := range mine {
		myViews = append(myViews, dto.MyReservationView{
			ReservationID: mine[i].ReservationID,
			TimeSlot:      mine[i].ReservationTimeSlot,
			ConfigID:      mine[i].ReservationConfigID,
			Status:        mine[i].ReservationStatus,
		})
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"activity":        summaries[0],
		"expired":         service.Expired(&activity, time.Now()),
		"my_reservations": myViews,
	})
}

// GET /api/v/activities/:id/reservation-count?time_slot=&position_config_id=
// — reserved/total/remaining for one cell.
func (ctl *ActivityUserController) ReservationCount(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}
	slot := c.Query("time_slot")
	configID, err := uuid.Parse(c.Query("position_config_id"))
	if err != nil || slot == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "time_slot and position_config_id are required")
	}

	var config model.ActivityPositionConfigModel
	if err := ctl.DB.First(&config, "config_id = ? AND config_activity_id = ?", configID, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Position config not found")
		}
		log.Printf("[ERROR] load config %s: %v", configID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reservation count")
	}

	var reserved int64
	if err := ctl.DB.Model(&reservationModel.ReservationModel{}).
		Where("reservation_activity_id = ? AND reservation_config_id = ? AND reservation_time_slot = ? AND reservation_status = ?",
			activityID, configID, slot, reservationModel.StatusReserved).
		Count(&reserved).Error; err != nil {
		log.Printf("[ERROR] count reservations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reservation count")
	}

	remaining := config.ConfigCount - int(reserved)
	if remaining < 0 {
		remaining = 0
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"time_slot": slot,
		"reserved":  reserved,
		"total":     config.ConfigCount,
		"remaining": remaining,
		"hours":     timeslot.SlotHours(slot),
	})
}
