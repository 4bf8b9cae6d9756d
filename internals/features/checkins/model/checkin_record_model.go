package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// Test-stage workflow: a check-in is recorded together with its
	// check-out, so records are created directly in CHECKED_OUT.
	StatusCheckedOut = "CHECKED_OUT"
)

// CheckInRecordModel records actual attendance against one reservation.
// One record per reservation; rows are never deleted.
type CheckInRecordModel struct {
	CheckInID            uuid.UUID `gorm:"column:check_in_id;type:uuid;default:gen_random_uuid();primaryKey" json:"check_in_id"`
	CheckInUserID        uuid.UUID `gorm:"column:check_in_user_id;type:uuid;not null;index" json:"check_in_user_id"`
	CheckInReservationID uuid.UUID `gorm:"column:check_in_reservation_id;type:uuid;not null;uniqueIndex:ux_check_ins_reservation" json:"check_in_reservation_id"`

	CheckInTime  time.Time `gorm:"column:check_in_time;type:timestamptz;not null" json:"check_in_time"`
	CheckOutTime time.Time `gorm:"column:check_out_time;type:timestamptz;not null" json:"check_out_time"`

	CheckInCheckedBy uuid.UUID `gorm:"column:check_in_checked_by;type:uuid;not null" json:"check_in_checked_by"`
	CheckInStatus    string    `gorm:"column:check_in_status;type:varchar(16);not null;default:'CHECKED_OUT'" json:"check_in_status"`

	CheckInCreatedAt time.Time `gorm:"column:check_in_created_at;type:timestamptz;autoCreateTime" json:"check_in_created_at"`
}

func (CheckInRecordModel) TableName() string {
	return "check_in_records"
}
