package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	activityModel "volunteerhub_backend/internals/features/activities/model"
	"volunteerhub_backend/internals/features/reservations/model"
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
		`CREATE TABLE activities (
			activity_id TEXT PRIMARY KEY,
			activity_name TEXT NOT NULL,
			activity_date TEXT NOT NULL,
			activity_start_time TEXT NOT NULL,
			activity_end_time TEXT NOT NULL,
			activity_location TEXT,
			activity_description TEXT,
			activity_created_by TEXT,
			activity_created_at DATETIME,
			activity_updated_at DATETIME
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
			reservation_cancel_time DATETIME,
			UNIQUE (reservation_user_id, reservation_activity_id, reservation_time_slot, reservation_config_id)
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedActivity(t *testing.T, db *gorm.DB, date string, count int) (uuid.UUID, uuid.UUID) {
	t.Helper()
	activity := activityModel.ActivityModel{
		ActivityID:        uuid.New(),
		ActivityName:      "Gallery docent day",
		ActivityDate:      date,
		ActivityStartTime: "09:00",
		ActivityEndTime:   "12:00",
	}
	require.NoError(t, db.Create(&activity).Error)

	config := activityModel.ActivityPositionConfigModel{
		ConfigID:         uuid.New(),
		ConfigActivityID: activity.ActivityID,
		ConfigPositionID: uuid.New(),
		ConfigCount:      count,
	}
	require.NoError(t, db.Create(&config).Error)
	return activity.ActivityID, config.ConfigID
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %v", err)
	return fe.Code
}

func TestReserveFillsCellUpToCount(t *testing.T) {
	db := openTestDB(t)
	activityID, configID := seedActivity(t, db, "2099-05-01", 2)

	first, err := Reserve(db, uuid.New(), activityID, "09:00-10:00", configID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReserved, first.ReservationStatus)

	_, err = Reserve(db, uuid.New(), activityID, "09:00-10:00", configID)
	require.NoError(t, err)

	_, err = Reserve(db, uuid.New(), activityID, "09:00-10:00", configID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	// a different slot of the same config is still open
	_, err = Reserve(db, uuid.New(), activityID, "10:00-11:00", configID)
	require.NoError(t, err)
}

func TestReserveRejectsDuplicate(t *testing.T) {
	db := openTestDB(t)
	activityID, configID := seedActivity(t, db, "2099-05-01", 2)
	userID := uuid.New()

	_, err := Reserve(db, userID, activityID, "09:00-10:00", configID)
	require.NoError(t, err)

	_, err = Reserve(db, userID, activityID, "09:00-10:00", configID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestReserveUnknownActivity(t *testing.T) {
	db := openTestDB(t)

	_, err := Reserve(db, uuid.New(), uuid.New(), "09:00-10:00", uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestReserveExpiredActivity(t *testing.T) {
	db := openTestDB(t)
	activityID, configID := seedActivity(t, db, "2020-01-01", 2)

	_, err := Reserve(db, uuid.New(), activityID, "09:00-10:00", configID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestReserveRejectsForeignSlot(t *testing.T) {
	db := openTestDB(t)
	activityID, configID := seedActivity(t, db, "2099-05-01", 2)

	_, err := Reserve(db, uuid.New(), activityID, "13:00-14:00", configID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestCancelAndRebook(t *testing.T) {
	db := openTestDB(t)
	activityID, configID := seedActivity(t, db, "2099-05-01", 1)
	userID := uuid.New()

	reservation, err := Reserve(db, userID, activityID, "09:00-10:00", configID)
	require.NoError(t, err)

	cancelled, err := Cancel(db, userID, reservation.ReservationID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.ReservationStatus)
	assert.NotNil(t, cancelled.ReservationCancelTime)

	// cancelling twice is rejected
	_, err = Cancel(db, userID, reservation.ReservationID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	// the freed seat can be taken by someone else
	_, err = Reserve(db, uuid.New(), activityID, "09:00-10:00", configID)
	require.NoError(t, err)

	// and cancelled rows don't block the same volunteer elsewhere
	_, err = Reserve(db, userID, activityID, "10:00-11:00", configID)
	require.NoError(t, err)
}

func TestRebookRevivesCancelledRow(t *testing.T) {
	db := openTestDB(t)
	activityID, configID := seedActivity(t, db, "2099-05-01", 1)
	userID := uuid.New()

	reservation, err := Reserve(db, userID, activityID, "09:00-10:00", configID)
	require.NoError(t, err)
	_, err = Cancel(db, userID, reservation.ReservationID)
	require.NoError(t, err)

	again, err := Reserve(db, userID, activityID, "09:00-10:00", configID)
	require.NoError(t, err)
	assert.Equal(t, reservation.ReservationID, again.ReservationID)
	assert.Equal(t, model.StatusReserved, again.ReservationStatus)
	assert.Nil(t, again.ReservationCancelTime)

	var total int64
	require.NoError(t, db.Model(&model.ReservationModel{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestCancelForeignReservation(t *testing.T) {
	db := openTestDB(t)
	activityID, configID := seedActivity(t, db, "2099-05-01", 1)

	reservation, err := Reserve(db, uuid.New(), activityID, "09:00-10:00", configID)
	require.NoError(t, err)

	_, err = Cancel(db, uuid.New(), reservation.ReservationID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestCancelUnknownReservation(t *testing.T) {
	db := openTestDB(t)

	_, err := Cancel(db, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}
