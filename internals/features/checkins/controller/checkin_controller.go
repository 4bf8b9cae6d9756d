package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/features/checkins/dto"
	"volunteerhub_backend/internals/features/checkins/model"
	"volunteerhub_backend/internals/features/checkins/service"
	reservationModel "volunteerhub_backend/internals/features/reservations/model"
	helper "volunteerhub_backend/internals/helpers"
	"volunteerhub_backend/internals/helpers/timeslot"
)

type CheckInController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCheckInController(db *gorm.DB) *CheckInController {
	return &CheckInController{DB: db, Validate: validator.New()}
}

// POST /api/v/activities/:id/check-in
func (ctl *CheckInController) CheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.CheckOutTime.After(req.CheckInTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "check_out_time must be after check_in_time")
	}

	result, err := service.CheckIn(ctl.DB, userID, activityID, req.TimeSlot, req.PositionConfigID, req.CheckInTime, req.CheckOutTime)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] check-in %s/%s: %v", activityID, req.TimeSlot, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check in")
	}

	return helper.JsonOK(c, "Checked in", fiber.Map{
		"check_in_id":  result.Record.CheckInID,
		"hours_earned": result.HoursEarned,
		"total_hours":  result.TotalHours,
	})
}

// GET /api/v/activities/:id/check-in-records — the caller's attendance
// records on one activity.
func (ctl *CheckInController) ListForActivity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var reservations []reservationModel.ReservationModel
	if err := ctl.DB.
		Where("reservation_user_id = ? AND reservation_activity_id = ?", userID, activityID).
		Find(&reservations).Error; err != nil {
		log.Printf("[ERROR] load reservations for check-in list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch check-in records")
	}
	if len(reservations) == 0 {
		return helper.JsonOK(c, "ok", []dto.CheckInRecordResponse{})
	}

	reservationIDs := make([]uuid.UUID, 0, len(reservations))
	slotByReservation := make(map[uuid.UUID]string, len(reservations))
	for i := range reservations {
		reservationIDs = append(reservationIDs, reservations[i].ReservationID)
		slotByReservation[reservations[i].ReservationID] = reservations[i].ReservationTimeSlot
	}

	var records []model.CheckInRecordModel
	if err := ctl.DB.
		Where("check_in_reservation_id IN ?", reservationIDs).
		Order("check_in_time ASC").
		Find(&records).Error; err != nil {
		log.Printf("[ERROR] load check-in records: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch check-in records")
	}

	responses := make([]dto.CheckInRecordResponse, 0, len(records))
	for i := range records {
		r := &records[i]
		slot := slotByReservation[r.CheckInReservationID]
		responses = append(responses, dto.CheckInRecordResponse{
			ID:            r.CheckInID,
			ReservationID: r.CheckInReservationID,
			TimeSlot:      slot,
			CheckInTime:   r.CheckInTime,
			CheckOutTime:  r.CheckOutTime,
			Status:        r.CheckInStatus,
			HoursEarned:   timeslot.SlotHours(slot),
		})
	}
	return helper.JsonOK(c, "ok", responses)
}
