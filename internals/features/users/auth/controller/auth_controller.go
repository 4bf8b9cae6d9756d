package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/constants"
	authService "volunteerhub_backend/internals/features/users/auth/service"
	userModel "volunteerhub_backend/internals/features/users/user/model"
	helper "volunteerhub_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

type volunteerLoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminRegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// POST /api/auth/login — volunteer login by phone number.
func (ctl *AuthController) VolunteerLogin(c *fiber.Ctx) error {
	var req volunteerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !helper.IsValidPhone(req.Phone) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please enter a valid 11-digit phone number")
	}

	var user userModel.UserModel
	err := ctl.DB.Where("user_phone = ? AND user_role IN ?", req.Phone, constants.VolunteerRoles).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Volunteer account not found, please apply first")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if !authService.CheckPassword(user.UserPasswordHash, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect password")
	}

	accessToken, err := authService.IssueTokens(ctl.DB, c, &user)
	if err != nil {
		log.Printf("[ERROR] issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue session tokens")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":         loginResponseUser(&user),
		"access_token": accessToken,
	})
}

// POST /api/auth/admin-login — admin login, username is the phone number.
func (ctl *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var admin userModel.UserModel
	err := ctl.DB.Where("user_phone = ? AND user_role = ?", strings.TrimSpace(req.Username), constants.RoleAdmin).
		First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Admin account not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !authService.CheckPassword(admin.UserPasswordHash, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect password")
	}

	accessToken, err := authService.IssueTokens(ctl.DB, c, &admin)
	if err != nil {
		log.Printf("[ERROR] issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue session tokens")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":         loginResponseUser(&admin),
		"access_token": accessToken,
	})
}

// POST /api/auth/register-admin — open admin provisioning (test stage).
func (ctl *AuthController) RegisterAdmin(c *fiber.Ctx) error {
	var req adminRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !helper.IsValidPhone(req.Phone) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please enter a valid 11-digit phone number")
	}
	if req.Password != req.ConfirmPassword {
		return helper.JsonError(c, fiber.StatusBadRequest, "Passwords do not match")
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	admin := userModel.UserModel{
		UserName:         req.Name,
		UserPhone:        req.Phone,
		UserPasswordHash: hash,
		UserRole:         constants.RoleAdmin,
		UserIsActive:     true,
	}
	if req.Email != "" {
		email := strings.TrimSpace(req.Email)
		admin.UserEmail = &email
	}
	if err := ctl.DB.Create(&admin).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "This phone number is already registered")
		}
		log.Printf("[ERROR] create admin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin account")
	}

	return helper.JsonCreated(c, "Admin account created", loginResponseUser(&admin))
}

// POST /api/auth/refresh-token — rotate the refresh cookie, issue new pair.
func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	userID, err := authService.RotateRefreshToken(ctl.DB, c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh session")
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	accessToken, err := authService.IssueTokens(ctl.DB, c, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue session tokens")
	}
	return helper.JsonOK(c, "Session refreshed", fiber.Map{
		"access_token": accessToken,
	})
}

// POST /api/auth/logout — blacklist the current access token.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		if err := authService.BlacklistAccessToken(ctl.DB, raw); err != nil {
			log.Printf("[WARN] blacklist on logout: %v", err)
		}
	}
	authService.ClearAuthCookies(c)
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/auth/me — profile of the authenticated user.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var user userModel.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", loginResponseUser(&user))
}

func loginResponseUser(u *userModel.UserModel) fiber.Map {
	return fiber.Map{
		"id":         u.UserID,
		"name":       u.UserName,
		"phone":      u.UserPhone,
		"email":      u.UserEmail,
		"role":       u.UserRole,
		"avatar_url": u.UserAvatarURL,
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// string fallback, compatible with lib/pq and wrapped pgx errors
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
