package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityModel "volunteerhub_backend/internals/features/activities/model"
	activityService "volunteerhub_backend/internals/features/activities/service"
	"volunteerhub_backend/internals/features/reservations/model"
	"volunteerhub_backend/internals/helpers/timeslot"
)

// Reserve books one (activity, slot, config) cell for the user. The whole
// check-and-insert runs in one transaction; the config row is locked FOR
// UPDATE first so concurrent bookings serialize on it and the RESERVED
// count can never pass the configured headcount.
func Reserve(db *gorm.DB, userID, activityID uuid.UUID, slot string, configID uuid.UUID) (*model.ReservationModel, error) {
	var reservation *model.ReservationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var activity activityModel.ActivityModel
		if err := tx.First(&activity, "activity_id = ?", activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Activity not found")
			}
			return err
		}
		if activityService.Expired(&activity, time.Now()) {
			return fiber.NewError(fiber.StatusBadRequest, "Activity has already ended")
		}

		if !timeslot.Contains(activity.ActivityStartTime, activity.ActivityEndTime, slot) {
			return fiber.NewError(fiber.StatusBadRequest, "Time slot does not belong to this activity")
		}

		configQuery := tx
		if tx.Dialector.Name() == "postgres" {
			configQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var config activityModel.ActivityPositionConfigModel
		if err := configQuery.First(&config, "config_id = ? AND config_activity_id = ?", configID, activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Position config not found")
			}
			return err
		}

		var existing model.ReservationModel
		err := tx.First(&existing,
			"reservation_user_id = ? AND reservation_activity_id = ? AND reservation_time_slot = ? AND reservation_config_id = ?",
			userID, activityID, slot, configID).Error
		switch {
		case err == nil && existing.ReservationStatus != model.StatusCancelled:
			return fiber.NewError(fiber.StatusBadRequest, "You already reserved this slot")
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		var reserved int64
		if err := tx.Model(&model.ReservationModel{}).
			Where("reservation_activity_id = ? AND reservation_config_id = ? AND reservation_time_slot = ? AND reservation_status = ?",
				activityID, configID, slot, model.StatusReserved).
			Count(&reserved).Error; err != nil {
			return err
		}
		if int(reserved) >= config.ConfigCount {
			return fiber.NewError(fiber.StatusBadRequest, "This slot is already full")
		}

		if existing.ReservationID != uuid.Nil {
			// revive the cancelled row instead of violating the unique index
			existing.ReservationStatus = model.StatusReserved
			existing.ReservationReserveTime = time.Now()
			existing.ReservationCancelTime = nil
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			reservation = &existing
			return nil
		}

		row := model.ReservationModel{
			ReservationID:         uuid.New(),
			ReservationUserID:     userID,
			ReservationActivityID: activityID,
			ReservationTimeSlot:   slot,
			ReservationConfigID:   configID,
			ReservationStatus:     model.StatusReserved,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		reservation = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// Cancel sets the caller's RESERVED reservation to CANCELLED.
func Cancel(db *gorm.DB, userID, reservationID uuid.UUID) (*model.ReservationModel, error) {
	var reservation model.ReservationModel
	if err := db.First(&reservation, "reservation_id = ?", reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Reservation not found")
		}
		return nil, err
	}
	if reservation.ReservationUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not your reservation")
	}
	if reservation.ReservationStatus != model.StatusReserved {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Reservation is not active")
	}

	now := time.Now()
	reservation.ReservationStatus = model.StatusCancelled
	reservation.ReservationCancelTime = &now
	if err := db.Save(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}
