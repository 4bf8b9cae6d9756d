package model

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerHourModel is the running service-hour total per volunteer.
// Incremented on every check-out; never decremented.
type VolunteerHourModel struct {
	VolunteerHourID             uuid.UUID `gorm:"column:volunteer_hour_id;type:uuid;default:gen_random_uuid();primaryKey" json:"volunteer_hour_id"`
	VolunteerHourUserID         uuid.UUID `gorm:"column:volunteer_hour_user_id;type:uuid;not null;uniqueIndex:ux_volunteer_hours_user" json:"volunteer_hour_user_id"`
	VolunteerHourTotalHours     int       `gorm:"column:volunteer_hour_total_hours;not null;default:0" json:"volunteer_hour_total_hours"`
	VolunteerHourLastUpdateTime time.Time `gorm:"column:volunteer_hour_last_update_time;type:timestamptz;not null" json:"volunteer_hour_last_update_time"`
}

func (VolunteerHourModel) TableName() string {
	return "volunteer_hours"
}
