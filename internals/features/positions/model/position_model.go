package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PositionModel describes a reusable volunteer role (docent, greeter, ...)
// that activities reference through position configs.
type PositionModel struct {
	PositionID uuid.UUID `gorm:"column:position_id;type:uuid;default:gen_random_uuid();primaryKey" json:"position_id"`

	PositionName        string  `gorm:"column:position_name;type:varchar(100);not null" json:"position_name"`
	PositionDescription *string `gorm:"column:position_description;type:text" json:"position_description,omitempty"`
	PositionMaxNum      int     `gorm:"column:position_max_num;not null;default:1" json:"position_max_num"`
	PositionIsActive    bool    `gorm:"column:position_is_active;not null;default:true" json:"position_is_active"`

	PositionAllowedVolunteerTypes pq.StringArray `gorm:"column:position_allowed_volunteer_types;type:text[];not null" json:"position_allowed_volunteer_types"`
	PositionGenderRestriction     string         `gorm:"column:position_gender_restriction;type:varchar(16);not null;default:'UNRESTRICTED'" json:"position_gender_restriction"`
	PositionMinAge                *int           `gorm:"column:position_min_age" json:"position_min_age,omitempty"`
	PositionMaxAge                *int           `gorm:"column:position_max_age" json:"position_max_age,omitempty"`

	PositionCreatedAt time.Time `gorm:"column:position_created_at;type:timestamptz;not null;autoCreateTime" json:"position_created_at"`
	PositionUpdatedAt time.Time `gorm:"column:position_updated_at;type:timestamptz;not null;autoUpdateTime" json:"position_updated_at"`
}

func (PositionModel) TableName() string {
	return "volunteer_positions"
}
