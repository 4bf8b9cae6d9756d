package dto

import (
	"time"

	"github.com/google/uuid"
)

// ReserveRequest books one slot cell on an activity.
type ReserveRequest struct {
	TimeSlot         string    `json:"time_slot" validate:"required"`
	PositionConfigID uuid.UUID `json:"position_config_id" validate:"required"`
}

// CancelRequest carries the reservation to cancel.
type CancelRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" validate:"required"`
}

// ReservationResponse is one reservation with its activity and position
// context embedded, as the volunteer's "my reservations" list shows it.
type ReservationResponse struct {
	ID          uuid.UUID  `json:"id"`
	ActivityID  uuid.UUID  `json:"activity_id"`
	TimeSlot    string     `json:"time_slot"`
	ConfigID    uuid.UUID  `json:"config_id"`
	Status      string     `json:"status"`
	ReserveTime time.Time  `json:"reserve_time"`
	CancelTime  *time.Time `json:"cancel_time,omitempty"`

	ActivityName     string  `json:"activity_name"`
	ActivityDate     string  `json:"activity_date"`
	ActivityLocation *string `json:"activity_location,omitempty"`
	PositionName     string  `json:"position_name"`
}
