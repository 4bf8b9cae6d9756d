package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/configs"
	authModel "volunteerhub_backend/internals/features/users/auth/model"
	userModel "volunteerhub_backend/internals/features/users/user/model"
	helper "volunteerhub_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", errors.New("JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func buildAccessClaims(user *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.UserID.String(),
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// IssueTokens signs an access + refresh JWT pair for the user, persists the
// hashed refresh token and sets both auth cookies. Returns the access token
// for the response body.
func IssueTokens(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) (string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	now := nowUTC()
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return "", errors.New("failed to sign access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.UserID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return "", errors.New("failed to sign refresh token")
	}

	rt := authModel.RefreshTokenModel{
		UserID:    user.UserID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", errors.New("failed to store refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)
	return accessToken, nil
}

// RotateRefreshToken validates the refresh cookie, deletes the old stored
// hash and returns the user id a new pair should be issued for.
func RotateRefreshToken(db *gorm.DB, c *fiber.Ctx) (uuid.UUID, error) {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing refresh token")
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	hash := computeRefreshHash(refreshCookie, refreshSecret)
	res := db.Where("token_hash = ? AND expires_at > ? AND revoked_at IS NULL", hash, nowUTC()).
		Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unknown refresh token")
	}
	return userID, nil
}

// BlacklistAccessToken records the raw access token until its exp claim so
// the auth middleware rejects it from now on.
func BlacklistAccessToken(db *gorm.DB, rawToken string) error {
	expiredAt := nowUTC().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(rawToken, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}
	entry := authModel.TokenBlacklistModel{
		Token:     rawToken,
		ExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

func ClearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", HTTPOnly: true, Secure: true, SameSite: "None", Path: "/", Expires: expired})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", HTTPOnly: true, Secure: true, SameSite: "None", Path: "/", Expires: expired})
}
