package dto

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerListItem is one row of the admin volunteer roster.
type VolunteerListItem struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      *string   `json:"email,omitempty"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	TotalHours int       `json:"total_hours"`
	CreatedAt  time.Time `json:"created_at"`
}

// VolunteerReservationView is one reservation on the admin volunteer
// detail, with activity context.
type VolunteerReservationView struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	ActivityID    uuid.UUID `json:"activity_id"`
	ActivityName  string    `json:"activity_name"`
	ActivityDate  string    `json:"activity_date"`
	TimeSlot      string    `json:"time_slot"`
	Status        string    `json:"status"`
	ReserveTime   time.Time `json:"reserve_time"`
}

// VolunteerCheckInView is one attendance record on the admin volunteer
// detail.
type VolunteerCheckInView struct {
	CheckInID     uuid.UUID `json:"check_in_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	TimeSlot      string    `json:"time_slot"`
	CheckInTime   time.Time `json:"check_in_time"`
	CheckOutTime  time.Time `json:"check_out_time"`
	HoursEarned   int       `json:"hours_earned"`
}
