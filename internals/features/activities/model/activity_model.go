package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel is one museum activity on one calendar day. Start/end
// times are "HH:MM" strings on integer hours; the hourly slots volunteers
// reserve are derived from them, never stored.
type ActivityModel struct {
	ActivityID uuid.UUID `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`

	ActivityName        string  `gorm:"column:activity_name;type:varchar(150);not null" json:"activity_name"`
	ActivityDate        string  `gorm:"column:activity_date;type:varchar(10);not null;index:ix_activities_date" json:"activity_date"`
	ActivityStartTime   string  `gorm:"column:activity_start_time;type:varchar(5);not null" json:"activity_start_time"`
	ActivityEndTime     string  `gorm:"column:activity_end_time;type:varchar(5);not null" json:"activity_end_time"`
	ActivityLocation    *string `gorm:"column:activity_location;type:varchar(200)" json:"activity_location,omitempty"`
	ActivityDescription *string `gorm:"column:activity_description;type:text" json:"activity_description,omitempty"`

	ActivityCreatedBy *uuid.UUID `gorm:"column:activity_created_by;type:uuid" json:"activity_created_by,omitempty"`

	ActivityCreatedAt time.Time `gorm:"column:activity_created_at;type:timestamptz;not null;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt time.Time `gorm:"column:activity_updated_at;type:timestamptz;not null;autoUpdateTime" json:"activity_updated_at"`

	PositionConfigs []ActivityPositionConfigModel `gorm:"foreignKey:ConfigActivityID;references:ActivityID" json:"position_configs,omitempty"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
