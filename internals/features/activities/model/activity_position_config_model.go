package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityPositionConfigModel pins a position to an activity with the
// per-hour headcount. Demand for the activity is count x number of slots.
type ActivityPositionConfigModel struct {
	ConfigID uuid.UUID `gorm:"column:config_id;type:uuid;default:gen_random_uuid();primaryKey" json:"config_id"`

	ConfigActivityID uuid.UUID `gorm:"column:config_activity_id;type:uuid;not null;index:ix_configs_activity" json:"config_activity_id"`
	ConfigPositionID uuid.UUID `gorm:"column:config_position_id;type:uuid;not null" json:"config_position_id"`
	ConfigCount      int       `gorm:"column:config_count;not null;default:1" json:"config_count"`

	ConfigCreatedAt time.Time `gorm:"column:config_created_at;type:timestamptz;not null;autoCreateTime" json:"config_created_at"`
}

func (ActivityPositionConfigModel) TableName() string {
	return "activity_position_configs"
}
