package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "volunteerhub_backend/internals/features/activities/model"
	"volunteerhub_backend/internals/features/positions/model"
	reservationModel "volunteerhub_backend/internals/features/reservations/model"
)

// DeletePosition removes a position together with every activity config
// built on it and the reservations those configs hold, in one transaction.
// Leaving configs behind would render empty position data in summaries and
// rosters.
func DeletePosition(db *gorm.DB, positionID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.PositionModel{}, "position_id = ?", positionID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Position not found")
		}

		var configIDs []uuid.UUID
		if err := tx.Model(&activityModel.ActivityPositionConfigModel{}).
			Where("config_position_id = ?", positionID).
			Pluck("config_id", &configIDs).Error; err != nil {
			return err
		}
		if len(configIDs) == 0 {
			return nil
		}

		if err := tx.Delete(&reservationModel.ReservationModel{}, "reservation_config_id IN ?", configIDs).Error; err != nil {
			return err
		}
		return tx.Delete(&activityModel.ActivityPositionConfigModel{}, "config_id IN ?", configIDs).Error
	})
}
