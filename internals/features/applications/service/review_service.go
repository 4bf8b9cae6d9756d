package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/constants"
	appModel "volunteerhub_backend/internals/features/applications/model"
	checkinModel "volunteerhub_backend/internals/features/checkins/model"
	authService "volunteerhub_backend/internals/features/users/auth/service"
	userModel "volunteerhub_backend/internals/features/users/user/model"
	helper "volunteerhub_backend/internals/helpers"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// ReviewResult reports what the review transaction did. DefaultPassword is
// only set on approval, so the admin can pass it on to the applicant.
type ReviewResult struct {
	Status          string
	UserID          *uuid.UUID
	DefaultPassword string
}

// ReviewApplication approves or rejects one PENDING application in a single
// transaction. Approval provisions the user account (role mapped from the
// apply type, default password = last six phone digits) and initializes the
// volunteer-hour row.
func ReviewApplication(db *gorm.DB, applicationID, adminID uuid.UUID, action string, reviewNote string) (*ReviewResult, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown action")
	}

	var result ReviewResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var application appModel.VolunteerApplicationModel
		if err := tx.Where("application_id = ?", applicationID).First(&application).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Application not found")
			}
			return err
		}
		if application.ApplicationStatus != appModel.StatusPending {
			return fiber.NewError(fiber.StatusBadRequest, "This application has already been processed")
		}

		now := time.Now()
		var note *string
		if reviewNote != "" {
			note = &reviewNote
		}

		if action == ActionReject {
			result.Status = appModel.StatusRejected
			return tx.Model(&application).Updates(map[string]any{
				"application_status":      appModel.StatusRejected,
				"application_review_by":   adminID,
				"application_review_note": note,
				"application_review_time": now,
			}).Error
		}

		role, err := constants.RoleForApplyType(application.ApplicationApplyType)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Application type does not map to a role")
		}

		defaultPassword := helper.DefaultPasswordFromPhone(application.ApplicationApplicantPhone)
		passwordHash, err := authService.HashPassword(defaultPassword)
		if err != nil {
			return err
		}

		newUser := userModel.UserModel{
			UserID:           uuid.New(),
			UserName:         application.ApplicationApplicantName,
			UserPhone:        application.ApplicationApplicantPhone,
			UserEmail:        application.ApplicationApplicantEmail,
			UserPasswordHash: passwordHash,
			UserRole:         role,
			UserIsActive:     true,
		}
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		if err := tx.Model(&application).Updates(map[string]any{
			"application_status":      appModel.StatusApproved,
			"application_review_by":   adminID,
			"application_review_note": note,
			"application_review_time": now,
			"application_user_id":     newUser.UserID,
		}).Error; err != nil {
			return err
		}

		hourRow := checkinModel.VolunteerHourModel{
			VolunteerHourID:             uuid.New(),
			VolunteerHourUserID:         newUser.UserID,
			VolunteerHourTotalHours:     0,
			VolunteerHourLastUpdateTime: now,
		}
		if err := tx.Create(&hourRow).Error; err != nil {
			return err
		}

		result.Status = appModel.StatusApproved
		result.UserID = &newUser.UserID
		result.DefaultPassword = defaultPassword
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
