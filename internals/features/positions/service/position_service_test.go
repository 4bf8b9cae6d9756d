package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	activityModel "volunteerhub_backend/internals/features/activities/model"
	"volunteerhub_backend/internals/features/positions/model"
	reservationModel "volunteerhub_backend/internals/features/reservations/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE volunteer_positions (
			position_id TEXT PRIMARY KEY,
			position_name TEXT NOT NULL,
			position_description TEXT,
			position_max_num INTEGER NOT NULL DEFAULT 1,
			position_is_active INTEGER NOT NULL DEFAULT 1,
			position_allowed_volunteer_types TEXT NOT NULL,
			position_gender_restriction TEXT NOT NULL DEFAULT 'UNRESTRICTED',
			position_min_age INTEGER,
			position_max_age INTEGER,
			position_created_at DATETIME,
			position_updated_at DATETIME
		)`,
		`CREATE TABLE activity_position_configs (
			config_id TEXT PRIMARY KEY,
			config_activity_id TEXT NOT NULL,
			config_position_id TEXT NOT NULL,
			config_count INTEGER NOT NULL DEFAULT 1,
			config_created_at DATETIME
		)`,
		`CREATE TABLE activity_reservations (
			reservation_id TEXT PRIMARY KEY,
			reservation_user_id TEXT NOT NULL,
			reservation_activity_id TEXT NOT NULL,
			reservation_time_slot TEXT NOT NULL,
			reservation_config_id TEXT NOT NULL,
			reservation_status TEXT NOT NULL DEFAULT 'RESERVED',
			reservation_reserve_time DATETIME,
			reservation_cancel_time DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedPosition(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	position := model.PositionModel{
		PositionID:                    uuid.New(),
		PositionName:                  "Gallery docent",
		PositionMaxNum:                3,
		PositionIsActive:              true,
		PositionAllowedVolunteerTypes: pq.StringArray{"SOCIAL_VOLUNTEER"},
		PositionGenderRestriction:     "UNRESTRICTED",
	}
	require.NoError(t, db.Create(&position).Error)
	return position.PositionID
}

func seedConfigWithReservation(t *testing.T, db *gorm.DB, positionID uuid.UUID) (uuid.UUID, uuid.UUID) {
	t.Helper()
	config := activityModel.ActivityPositionConfigModel{
		ConfigID:         uuid.New(),
		ConfigActivityID: uuid.New(),
		ConfigPositionID: positionID,
		ConfigCount:      2,
	}
	require.NoError(t, db.Create(&config).Error)

	reservation := reservationModel.ReservationModel{
		ReservationID:         uuid.New(),
		ReservationUserID:     uuid.New(),
		ReservationActivityID: config.ConfigActivityID,
		ReservationTimeSlot:   "09:00-10:00",
		ReservationConfigID:   config.ConfigID,
		ReservationStatus:     reservationModel.StatusReserved,
	}
	require.NoError(t, db.Create(&reservation).Error)
	return config.ConfigID, reservation.ReservationID
}

func TestDeletePositionCascades(t *testing.T) {
	db := openTestDB(t)
	positionID := seedPosition(t, db)
	configID, reservationID := seedConfigWithReservation(t, db, positionID)

	// an unrelated position's config must survive the cascade
	otherPosition := seedPosition(t, db)
	otherConfigID, _ := seedConfigWithReservation(t, db, otherPosition)

	require.NoError(t, DeletePosition(db, positionID))

	var positions int64
	require.NoError(t, db.Model(&model.PositionModel{}).Where("position_id = ?", positionID).Count(&positions).Error)
	assert.EqualValues(t, 0, positions)

	var configs int64
	require.NoError(t, db.Model(&activityModel.ActivityPositionConfigModel{}).Where("config_id = ?", configID).Count(&configs).Error)
	assert.EqualValues(t, 0, configs)

	var reservations int64
	require.NoError(t, db.Model(&reservationModel.ReservationModel{}).Where("reservation_id = ?", reservationID).Count(&reservations).Error)
	assert.EqualValues(t, 0, reservations)

	var otherConfigs int64
	require.NoError(t, db.Model(&activityModel.ActivityPositionConfigModel{}).Where("config_id = ?", otherConfigID).Count(&otherConfigs).Error)
	assert.EqualValues(t, 1, otherConfigs)
}

func TestDeletePositionWithoutConfigs(t *testing.T) {
	db := openTestDB(t)
	positionID := seedPosition(t, db)

	require.NoError(t, DeletePosition(db, positionID))

	var positions int64
	require.NoError(t, db.Model(&model.PositionModel{}).Count(&positions).Error)
	assert.EqualValues(t, 0, positions)
}

func TestDeleteUnknownPosition(t *testing.T) {
	db := openTestDB(t)

	err := DeletePosition(db, uuid.New())
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
