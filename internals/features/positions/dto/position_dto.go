package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"volunteerhub_backend/internals/features/positions/model"
)

// PositionRequest is the admin create/update payload.
type PositionRequest struct {
	Name                  string   `json:"name" validate:"required,min=1,max=100"`
	Description           string   `json:"description" validate:"omitempty,max=2000"`
	MaxNum                int      `json:"max_num" validate:"required,min=1"`
	IsActive              *bool    `json:"is_active"`
	AllowedVolunteerTypes []string `json:"allowed_volunteer_types" validate:"required,min=1,dive,oneof=TEEN_VOLUNTEER SOCIAL_VOLUNTEER UNI_VOLUNTEER"`
	GenderRestriction     string   `json:"gender_restriction" validate:"omitempty,oneof=UNRESTRICTED MALE_ONLY FEMALE_ONLY"`
	MinAge                *int     `json:"min_age" validate:"omitempty,min=0,max=120"`
	MaxAge                *int     `json:"max_age" validate:"omitempty,min=0,max=120"`
}

func (r *PositionRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	if r.GenderRestriction == "" {
		r.GenderRestriction = "UNRESTRICTED"
	}
}

func (r *PositionRequest) ToModel() *model.PositionModel {
	m := &model.PositionModel{
		PositionName:                  r.Name,
		PositionMaxNum:                r.MaxNum,
		PositionIsActive:              true,
		PositionAllowedVolunteerTypes: pq.StringArray(r.AllowedVolunteerTypes),
		PositionGenderRestriction:     r.GenderRestriction,
		PositionMinAge:                r.MinAge,
		PositionMaxAge:                r.MaxAge,
	}
	if r.Description != "" {
		desc := r.Description
		m.PositionDescription = &desc
	}
	if r.IsActive != nil {
		m.PositionIsActive = *r.IsActive
	}
	return m
}

// ApplyToModel copies the request onto an existing row for updates.
func (r *PositionRequest) ApplyToModel(m *model.PositionModel) {
	m.PositionName = r.Name
	m.PositionMaxNum = r.MaxNum
	m.PositionAllowedVolunteerTypes = pq.StringArray(r.AllowedVolunteerTypes)
	m.PositionGenderRestriction = r.GenderRestriction
	m.PositionMinAge = r.MinAge
	m.PositionMaxAge = r.MaxAge
	if r.Description != "" {
		desc := r.Description
		m.PositionDescription = &desc
	} else {
		m.PositionDescription = nil
	}
	if r.IsActive != nil {
		m.PositionIsActive = *r.IsActive
	}
}

type PositionResponse struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Description           *string   `json:"description,omitempty"`
	MaxNum                int       `json:"max_num"`
	IsActive              bool      `json:"is_active"`
	AllowedVolunteerTypes []string  `json:"allowed_volunteer_types"`
	GenderRestriction     string    `json:"gender_restriction"`
	MinAge                *int      `json:"min_age,omitempty"`
	MaxAge                *int      `json:"max_age,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func ToPositionResponse(m *model.PositionModel) PositionResponse {
	return PositionResponse{
		ID:                    m.PositionID,
		Name:                  m.PositionName,
		Description:           m.PositionDescription,
		MaxNum:                m.PositionMaxNum,
		IsActive:              m.PositionIsActive,
		AllowedVolunteerTypes: []string(m.PositionAllowedVolunteerTypes),
		GenderRestriction:     m.PositionGenderRestriction,
		MinAge:                m.PositionMinAge,
		MaxAge:                m.PositionMaxAge,
		CreatedAt:             m.PositionCreatedAt,
		UpdatedAt:             m.PositionUpdatedAt,
	}
}
