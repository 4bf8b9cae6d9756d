package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "volunteerhub_backend/internals/features/activities/model"
	positionModel "volunteerhub_backend/internals/features/positions/model"
	"volunteerhub_backend/internals/features/reservations/dto"
	"volunteerhub_backend/internals/features/reservations/model"
	"volunteerhub_backend/internals/features/reservations/service"
	helper "volunteerhub_backend/internals/helpers"
)

type ReservationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db, Validate: validator.New()}
}

// POST /api/v/activities/:id/reserve
func (ctl *ReservationController) Reserve(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var req dto.ReserveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	reservation, err := service.Reserve(ctl.DB, userID, activityID, req.TimeSlot, req.PositionConfigID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] reserve %s/%s: %v", activityID, req.TimeSlot, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reserve slot")
	}
	return helper.JsonCreated(c, "Slot reserved", fiber.Map{
		"reservation_id": reservation.ReservationID,
		"time_slot":      reservation.ReservationTimeSlot,
		"status":         reservation.ReservationStatus,
	})
}

// GET /api/v/reservations — the caller's reservations, newest first, with
// activity and position embedded.
func (ctl *ReservationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var reservations []model.ReservationModel
	if err := ctl.DB.
		Where("reservation_user_id = ?", userID).
		Order("reservation_reserve_time DESC").
		Find(&reservations).Error; err != nil {
		log.Printf("[ERROR] list reservations for %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reservations")
	}

	responses, err := ctl.decorate(reservations)
	if err != nil {
		log.Printf("[ERROR] decorate reservations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reservations")
	}
	return helper.JsonOK(c, "ok", responses)
}

// PATCH /api/v/reservations — cancel one of the caller's reservations.
func (ctl *ReservationController) Cancel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CancelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	reservation, err := service.Cancel(ctl.DB, userID, req.ReservationID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] cancel reservation %s: %v", req.ReservationID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel reservation")
	}
	return helper.JsonOK(c, "Reservation cancelled", fiber.Map{
		"reservation_id": reservation.ReservationID,
		"status":         reservation.ReservationStatus,
	})
}

// decorate joins activity and position names onto the raw rows.
func (ctl *ReservationController) decorate(reservations []model.ReservationModel) ([]dto.ReservationResponse, error) {
	activityIDs := make([]uuid.UUID, 0)
	configIDs := make([]uuid.UUID, 0)
	seenA := make(map[uuid.UUID]struct{})
	seenC := make(map[uuid.UUID]struct{})
	for i := range reservations {
		if _, ok := seenA[reservations[i].ReservationActivityID]; !ok {
			seenA[reservations[i].ReservationActivityID] = struct{}{}
			activityIDs = append(activityIDs, reservations[i].ReservationActivityID)
		}
		if _, ok := seenC[reservations[i].ReservationConfigID]; !ok {
			seenC[reservations[i].ReservationConfigID] = struct{}{}
			configIDs = append(configIDs, reservations[i].ReservationConfigID)
		}
	}

	activities := make(map[uuid.UUID]activityModel.ActivityModel)
	if len(activityIDs) > 0 {
		var rows []activityModel.ActivityModel
		if err := ctl.DB.Where("activity_id IN ?", activityIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for i := range rows {
			activities[rows[i].ActivityID] = rows[i]
		}
	}

	positionNames := make(map[uuid.UUID]string)
	if len(configIDs) > 0 {
		var configs []activityModel.ActivityPositionConfigModel
		if err := ctl.DB.Where("config_id IN ?", configIDs).Find(&configs).Error; err != nil {
			return nil, err
		}
		positionIDs := make([]uuid.UUID, 0, len(configs))
		configPosition := make(map[uuid.UUID]uuid.UUID, len(configs))
		for i := range configs {
			configPosition[configs[i].ConfigID] = configs[i].ConfigPositionID
			positionIDs = append(positionIDs, configs[i].ConfigPositionID)
		}
		if len(positionIDs) > 0 {
			var positions []positionModel.PositionModel
			if err := ctl.DB.Select("position_id", "position_name").Where("position_id IN ?", positionIDs).Find(&positions).Error; err != nil {
				return nil, err
			}
			byID := make(map[uuid.UUID]string, len(positions))
			for i := range positions {
				byID[positions[i].PositionID] = positions[i].PositionName
			}
			for configID, positionID := range configPosition {
				positionNames[configID] = byID[positionID]
			}
		}
	}

	responses := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		r := &reservations[i]
		resp := dto.ReservationResponse{
			ID:          r.ReservationID,
			ActivityID:  r.ReservationActivityID,
			TimeSlot:    r.ReservationTimeSlot,
			ConfigID:    r.ReservationConfigID,
			Status:      r.ReservationStatus,
			ReserveTime: r.ReservationReserveTime,
			CancelTime:  r.ReservationCancelTime,
		}
		if a, ok := activities[r.ReservationActivityID]; ok {
			resp.ActivityName = a.ActivityName
			resp.ActivityDate = a.ActivityDate
			resp.ActivityLocation = a.ActivityLocation
		}
		resp.PositionName = positionNames[r.ReservationConfigID]
		responses = append(responses, resp)
	}
	return responses, nil
}
