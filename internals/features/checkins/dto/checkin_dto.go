package dto

import (
	"time"

	"github.com/google/uuid"
)

// CheckInRequest reports attendance for one reserved slot cell. Check-out
// is reported in the same call; the times come from the client.
type CheckInRequest struct {
	TimeSlot         string    `json:"time_slot" validate:"required"`
	PositionConfigID uuid.UUID `json:"position_config_id" validate:"required"`
	CheckInTime      time.Time `json:"check_in_time" validate:"required"`
	CheckOutTime     time.Time `json:"check_out_time" validate:"required"`
}

// CheckInRecordResponse is one attendance record in the volunteer's list.
type CheckInRecordResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	TimeSlot      string    `json:"time_slot"`
	CheckInTime   time.Time `json:"check_in_time"`
	CheckOutTime  time.Time `json:"check_out_time"`
	Status        string    `json:"status"`
	HoursEarned   int       `json:"hours_earned"`
}
