package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/features/applications/dto"
	helper "volunteerhub_backend/internals/helpers"
)

type ApplicationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db, Validate: validator.New()}
}

// POST /api/public/apply — public application form. No user row is created
// here; approval does that.
func (ctl *ApplicationController) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !helper.IsValidPhone(req.Phone) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please enter a valid 11-digit phone number")
	}

	application := req.ToModel()
	if err := ctl.DB.Create(application).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "An application with this phone number already exists")
		}
		log.Printf("[ERROR] create application: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	return helper.JsonOK(c, "Application submitted. We will notify you within 3 working days.", fiber.Map{
		"application_id": application.ApplicationID,
	})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
