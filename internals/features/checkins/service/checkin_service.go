package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/features/checkins/model"
	reservationModel "volunteerhub_backend/internals/features/reservations/model"
	"volunteerhub_backend/internals/helpers/timeslot"
)

// CheckInResult reports what one check-in call produced.
type CheckInResult struct {
	Record      *model.CheckInRecordModel
	HoursEarned int
	TotalHours  int
}

// CheckIn records attendance for the user's reservation on the given
// (activity, slot, config) cell. In one transaction it creates the
// CHECKED_OUT record, adds the slot's hour span to the user's running
// total and marks the reservation COMPLETED.
func CheckIn(db *gorm.DB, userID, activityID uuid.UUID, slot string, configID uuid.UUID, checkInTime, checkOutTime time.Time) (*CheckInResult, error) {
	result := &CheckInResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var reservation reservationModel.ReservationModel
		err := tx.First(&reservation,
			"reservation_user_id = ? AND reservation_activity_id = ? AND reservation_time_slot = ? AND reservation_config_id = ?",
			userID, activityID, slot, configID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "No reservation for this slot")
			}
			return err
		}
		if reservation.ReservationStatus == reservationModel.StatusCancelled {
			return fiber.NewError(fiber.StatusForbidden, "Reservation was cancelled")
		}

		var prior int64
		if err := tx.Model(&model.CheckInRecordModel{}).
			Where("check_in_reservation_id = ?", reservation.ReservationID).
			Count(&prior).Error; err != nil {
			return err
		}
		if prior > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Already checked in for this slot")
		}

		record := model.CheckInRecordModel{
			CheckInID:            uuid.New(),
			CheckInUserID:        userID,
			CheckInReservationID: reservation.ReservationID,
			CheckInTime:          checkInTime,
			CheckOutTime:         checkOutTime,
			CheckInCheckedBy:     userID,
			CheckInStatus:        model.StatusCheckedOut,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		hours := timeslot.SlotHours(slot)
		now := time.Now()

		var hourRow model.VolunteerHourModel
		err = tx.First(&hourRow, "volunteer_hour_user_id = ?", userID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			hourRow = model.VolunteerHourModel{
				VolunteerHourID:             uuid.New(),
				VolunteerHourUserID:         userID,
				VolunteerHourTotalHours:     hours,
				VolunteerHourLastUpdateTime: now,
			}
			if err := tx.Create(&hourRow).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			hourRow.VolunteerHourTotalHours += hours
			hourRow.VolunteerHourLastUpdateTime = now
			if err := tx.Save(&hourRow).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&reservationModel.ReservationModel{}).
			Where("reservation_id = ?", reservation.ReservationID).
			Update("reservation_status", reservationModel.StatusCompleted).Error; err != nil {
			return err
		}

		result.Record = &record
		result.HoursEarned = hours
		result.TotalHours = hourRow.VolunteerHourTotalHours
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
