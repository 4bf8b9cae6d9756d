package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusReserved  = "RESERVED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// ReservationModel is one volunteer's claim on one hourly slot of one
// position config. The composite unique index keeps a volunteer from
// holding two rows for the same cell; cancelled rows are updated back to
// RESERVED on re-reservation instead of inserting a second row.
type ReservationModel struct {
	ReservationID uuid.UUID `gorm:"column:reservation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reservation_id"`

	ReservationUserID     uuid.UUID `gorm:"column:reservation_user_id;type:uuid;not null;uniqueIndex:ux_reservations_cell;index:ix_reservations_user" json:"reservation_user_id"`
	ReservationActivityID uuid.UUID `gorm:"column:reservation_activity_id;type:uuid;not null;uniqueIndex:ux_reservations_cell;index:ix_reservations_activity" json:"reservation_activity_id"`
	ReservationTimeSlot   string    `gorm:"column:reservation_time_slot;type:varchar(16);not null;uniqueIndex:ux_reservations_cell" json:"reservation_time_slot"`
	ReservationConfigID   uuid.UUID `gorm:"column:reservation_config_id;type:uuid;not null;uniqueIndex:ux_reservations_cell" json:"reservation_config_id"`

	ReservationStatus      string     `gorm:"column:reservation_status;type:varchar(16);not null;default:'RESERVED'" json:"reservation_status"`
	ReservationReserveTime time.Time  `gorm:"column:reservation_reserve_time;type:timestamptz;not null;autoCreateTime" json:"reservation_reserve_time"`
	ReservationCancelTime  *time.Time `gorm:"column:reservation_cancel_time;type:timestamptz" json:"reservation_cancel_time,omitempty"`
}

func (ReservationModel) TableName() string {
	return "activity_reservations"
}
