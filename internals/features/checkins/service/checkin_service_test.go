package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"volunteerhub_backend/internals/features/checkins/model"
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
		`CREATE TABLE check_in_records (
			check_in_id TEXT PRIMARY KEY,
			check_in_user_id TEXT NOT NULL,
			check_in_reservation_id TEXT NOT NULL UNIQUE,
			check_in_time DATETIME NOT NULL,
			check_out_time DATETIME NOT NULL,
			check_in_checked_by TEXT NOT NULL,
			check_in_status TEXT NOT NULL DEFAULT 'CHECKED_OUT',
			check_in_created_at DATETIME
		)`,
		`CREATE TABLE volunteer_hours (
			volunteer_hour_id TEXT PRIMARY KEY,
			volunteer_hour_user_id TEXT NOT NULL UNIQUE,
			volunteer_hour_total_hours INTEGER NOT NULL DEFAULT 0,
			volunteer_hour_last_update_time DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedReservation(t *testing.T, db *gorm.DB, userID uuid.UUID, slot, status string) reservationModel.ReservationModel {
	t.Helper()
	row := reservationModel.ReservationModel{
		ReservationID:         uuid.New(),
		ReservationUserID:     userID,
		ReservationActivityID: uuid.New(),
		ReservationTimeSlot:   slot,
		ReservationConfigID:   uuid.New(),
		ReservationStatus:     status,
	}
	require.NoError(t, db.Create(&row).Error)
	return row
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %v", err)
	return fe.Code
}

func TestCheckInWithoutReservation(t *testing.T) {
	db := openTestDB(t)

	_, err := CheckIn(db, uuid.New(), uuid.New(), "09:00-10:00", uuid.New(), time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestCheckInCancelledReservation(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()
	r := seedReservation(t, db, userID, "09:00-10:00", reservationModel.StatusCancelled)

	_, err := CheckIn(db, userID, r.ReservationActivityID, r.ReservationTimeSlot, r.ReservationConfigID,
		time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestCheckInAccruesHoursAndCompletes(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()
	r := seedReservation(t, db, userID, "09:00-10:00", reservationModel.StatusReserved)

	in := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	out := in.Add(time.Hour)

	result, err := CheckIn(db, userID, r.ReservationActivityID, r.ReservationTimeSlot, r.ReservationConfigID, in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, result.HoursEarned)
	assert.Equal(t, 1, result.TotalHours)
	assert.Equal(t, model.StatusCheckedOut, result.Record.CheckInStatus)

	var reservation reservationModel.ReservationModel
	require.NoError(t, db.First(&reservation, "reservation_id = ?", r.ReservationID).Error)
	assert.Equal(t, reservationModel.StatusCompleted, reservation.ReservationStatus)

	var hourRow model.VolunteerHourModel
	require.NoError(t, db.First(&hourRow, "volunteer_hour_user_id = ?", userID).Error)
	assert.Equal(t, 1, hourRow.VolunteerHourTotalHours)
}

func TestCheckInTwiceRejected(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()
	r := seedReservation(t, db, userID, "09:00-10:00", reservationModel.StatusReserved)

	in := time.Now()
	_, err := CheckIn(db, userID, r.ReservationActivityID, r.ReservationTimeSlot, r.ReservationConfigID, in, in.Add(time.Hour))
	require.NoError(t, err)

	_, err = CheckIn(db, userID, r.ReservationActivityID, r.ReservationTimeSlot, r.ReservationConfigID, in, in.Add(time.Hour))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	// the total did not move
	var hourRow model.VolunteerHourModel
	require.NoError(t, db.First(&hourRow, "volunteer_hour_user_id = ?", userID).Error)
	assert.Equal(t, 1, hourRow.VolunteerHourTotalHours)
}

func TestCheckInSumsAcrossSlots(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()
	first := seedReservation(t, db, userID, "09:00-10:00", reservationModel.StatusReserved)
	second := seedReservation(t, db, userID, "10:00-11:00", reservationModel.StatusReserved)

	in := time.Now()
	_, err := CheckIn(db, userID, first.ReservationActivityID, first.ReservationTimeSlot, first.ReservationConfigID, in, in.Add(time.Hour))
	require.NoError(t, err)

	result, err := CheckIn(db, userID, second.ReservationActivityID, second.ReservationTimeSlot, second.ReservationConfigID, in, in.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalHours)
}
