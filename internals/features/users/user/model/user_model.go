package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel covers both admins and provisioned volunteers; the role column
// tells them apart. Volunteers log in with their phone number.
type UserModel struct {
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName         string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserPhone        string    `gorm:"column:user_phone;type:varchar(20);not null;uniqueIndex:ux_users_phone" json:"user_phone"`
	UserEmail        *string   `gorm:"column:user_email;type:varchar(255)" json:"user_email,omitempty"`
	UserPasswordHash string    `gorm:"column:user_password_hash;type:text;not null" json:"-"`
	UserRole         string    `gorm:"column:user_role;type:varchar(32);not null" json:"user_role"`
	UserAvatarURL    *string   `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`
	UserIsActive     bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
