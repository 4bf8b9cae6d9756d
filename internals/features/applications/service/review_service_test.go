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

	"volunteerhub_backend/internals/constants"
	appModel "volunteerhub_backend/internals/features/applications/model"
	checkinModel "volunteerhub_backend/internals/features/checkins/model"
	authService "volunteerhub_backend/internals/features/users/auth/service"
	userModel "volunteerhub_backend/internals/features/users/user/model"
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
		`CREATE TABLE volunteer_applications (
			application_id TEXT PRIMARY KEY,
			application_applicant_name TEXT NOT NULL,
			application_applicant_phone TEXT NOT NULL UNIQUE,
			application_applicant_email TEXT,
			application_applicant_age INTEGER NOT NULL,
			application_applicant_gender TEXT NOT NULL,
			application_apply_type TEXT NOT NULL,
			application_status TEXT NOT NULL DEFAULT 'PENDING',
			application_apply_time DATETIME,
			application_user_id TEXT,
			application_review_by TEXT,
			application_review_note TEXT,
			application_review_time DATETIME
		)`,
		`CREATE TABLE users (
			user_id TEXT PRIMARY KEY,
			user_name TEXT NOT NULL,
			user_phone TEXT NOT NULL UNIQUE,
			user_email TEXT,
			user_password_hash TEXT NOT NULL,
			user_role TEXT NOT NULL,
			user_avatar_url TEXT,
			user_is_active INTEGER NOT NULL DEFAULT 1,
			user_created_at DATETIME,
			user_updated_at DATETIME
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

func seedApplication(t *testing.T, db *gorm.DB, applyType, status string) appModel.VolunteerApplicationModel {
	t.Helper()
	row := appModel.VolunteerApplicationModel{
		ApplicationID:              uuid.New(),
		ApplicationApplicantName:   "Li Hua",
		ApplicationApplicantPhone:  "13812345678",
		ApplicationApplicantAge:    21,
		ApplicationApplicantGender: "FEMALE",
		ApplicationApplyType:       applyType,
		ApplicationStatus:          status,
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

func TestApproveProvisionsAccount(t *testing.T) {
	db := openTestDB(t)
	application := seedApplication(t, db, constants.ApplyTypeUniversity, appModel.StatusPending)
	adminID := uuid.New()

	result, err := ReviewApplication(db, application.ApplicationID, adminID, ActionApprove, "welcome aboard")
	require.NoError(t, err)
	assert.Equal(t, appModel.StatusApproved, result.Status)
	require.NotNil(t, result.UserID)
	assert.Equal(t, "345678", result.DefaultPassword)

	var user userModel.UserModel
	require.NoError(t, db.First(&user, "user_id = ?", result.UserID).Error)
	assert.Equal(t, constants.RoleUniVolunteer, user.UserRole)
	assert.Equal(t, application.ApplicationApplicantPhone, user.UserPhone)
	assert.True(t, user.UserIsActive)
	assert.True(t, authService.CheckPassword(user.UserPasswordHash, result.DefaultPassword))

	var reloaded appModel.VolunteerApplicationModel
	require.NoError(t, db.First(&reloaded, "application_id = ?", application.ApplicationID).Error)
	assert.Equal(t, appModel.StatusApproved, reloaded.ApplicationStatus)
	require.NotNil(t, reloaded.ApplicationReviewBy)
	assert.Equal(t, adminID, *reloaded.ApplicationReviewBy)
	require.NotNil(t, reloaded.ApplicationUserID)
	assert.Equal(t, *result.UserID, *reloaded.ApplicationUserID)

	var hourRow checkinModel.VolunteerHourModel
	require.NoError(t, db.First(&hourRow, "volunteer_hour_user_id = ?", result.UserID).Error)
	assert.Equal(t, 0, hourRow.VolunteerHourTotalHours)
}

func TestRejectLeavesNoAccount(t *testing.T) {
	db := openTestDB(t)
	application := seedApplication(t, db, constants.ApplyTypeTeen, appModel.StatusPending)

	result, err := ReviewApplication(db, application.ApplicationID, uuid.New(), ActionReject, "too young for this season")
	require.NoError(t, err)
	assert.Equal(t, appModel.StatusRejected, result.Status)
	assert.Nil(t, result.UserID)

	var users int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&users).Error)
	assert.EqualValues(t, 0, users)
}

func TestReviewAlreadyProcessed(t *testing.T) {
	db := openTestDB(t)
	application := seedApplication(t, db, constants.ApplyTypeSocial, appModel.StatusRejected)

	_, err := ReviewApplication(db, application.ApplicationID, uuid.New(), ActionApprove, "")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestReviewUnknownApplication(t *testing.T) {
	db := openTestDB(t)

	_, err := ReviewApplication(db, uuid.New(), uuid.New(), ActionApprove, "")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestReviewUnknownAction(t *testing.T) {
	db := openTestDB(t)

	_, err := ReviewApplication(db, uuid.New(), uuid.New(), "escalate", "")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}
