package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"volunteerhub_backend/internals/features/activities/model"
)

// PositionConfigRequest is one position line of an activity payload.
type PositionConfigRequest struct {
	PositionID uuid.UUID `json:"position_id" validate:"required"`
	Count      int       `json:"count" validate:"required,min=1"`
}

// ActivityRequest is the admin create payload.
type ActivityRequest struct {
	Name            string                  `json:"name" validate:"required,min=1,max=150"`
	Date            string                  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string                  `json:"start_time" validate:"required"`
	EndTime         string                  `json:"end_time" validate:"required"`
	Location        string                  `json:"location" validate:"omitempty,max=200"`
	Description     string                  `json:"description" validate:"omitempty,max=5000"`
	PositionConfigs []PositionConfigRequest `json:"position_configs" validate:"required,min=1,dive"`
}

func (r *ActivityRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *ActivityRequest) ToModel() *model.ActivityModel {
	m := &model.ActivityModel{
		ActivityName:      r.Name,
		ActivityDate:      r.Date,
		ActivityStartTime: r.StartTime,
		ActivityEndTime:   r.EndTime,
	}
	if r.Location != "" {
		loc := r.Location
		m.ActivityLocation = &loc
	}
	if r.Description != "" {
		desc := r.Description
		m.ActivityDescription = &desc
	}
	return m
}

// UpdateActivityRequest carries the target id in the body, update replaces
// the position configs wholesale.
type UpdateActivityRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
	ActivityRequest
}

// PositionConfigView is a config joined with its position's constraints.
type PositionConfigView struct {
	ConfigID              uuid.UUID `json:"config_id"`
	PositionID            uuid.UUID `json:"position_id"`
	PositionName          string    `json:"position_name"`
	Count                 int       `json:"count"`
	AllowedVolunteerTypes []string  `json:"allowed_volunteer_types"`
	GenderRestriction     string    `json:"gender_restriction"`
	MinAge                *int      `json:"min_age,omitempty"`
	MaxAge                *int      `json:"max_age,omitempty"`
}

// ActivitySummary is the list view shared by admin and volunteer listings.
type ActivitySummary struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	Date            string               `json:"date"`
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time"`
	Location        *string              `json:"location,omitempty"`
	Description     *string              `json:"description,omitempty"`
	TimeSlots       []string             `json:"time_slots"`
	TotalDemand     int                  `json:"total_demand"`
	TotalReserved   int                  `json:"total_reserved"`
	PositionConfigs []PositionConfigView `json:"position_configs"`
	CreatedAt       time.Time            `json:"created_at"`
}

// RosterEntry is one reserved volunteer in the admin detail roster.
type RosterEntry struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserPhone     string    `json:"user_phone"`
	Status        string    `json:"status"`
}

// RosterCell is one (config, slot) cell with its occupants.
type RosterCell struct {
	TimeSlot string        `json:"time_slot"`
	Count    int           `json:"count"`
	Reserved int           `json:"reserved"`
	Entries  []RosterEntry `json:"entries"`
}

// RosterPosition groups a config's cells for the admin detail view.
type RosterPosition struct {
	ConfigID     uuid.UUID    `json:"config_id"`
	PositionID   uuid.UUID    `json:"position_id"`
	PositionName string       `json:"position_name"`
	Count        int          `json:"count"`
	Cells        []RosterCell `json:"cells"`
}

// MyReservationView is the caller's own reservation on an activity detail.
type MyReservationView struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	TimeSlot      string    `json:"time_slot"`
	ConfigID      uuid.UUID `json:"config_id"`
	Status        string    `json:"status"`
}
