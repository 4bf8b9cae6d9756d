package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"volunteerhub_backend/internals/features/applications/model"
)

// ApplyRequest is the public application form payload.
type ApplyRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Gender        string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Age           int    `json:"age" validate:"required,min=12,max=65"`
	VolunteerType string `json:"volunteer_type" validate:"required,oneof=TEEN SOCIAL UNIVERSITY"`
}

func (r *ApplyRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *ApplyRequest) ToModel() *model.VolunteerApplicationModel {
	m := &model.VolunteerApplicationModel{
		ApplicationApplicantName:   r.Name,
		ApplicationApplicantPhone:  r.Phone,
		ApplicationApplicantAge:    r.Age,
		ApplicationApplicantGender: r.Gender,
		ApplicationApplyType:       r.VolunteerType,
		ApplicationStatus:          model.StatusPending,
	}
	if r.Email != "" {
		email := r.Email
		m.ApplicationApplicantEmail = &email
	}
	return m
}

// ApplicationActionRequest is the admin approve/reject payload.
type ApplicationActionRequest struct {
	Action     string `json:"action" validate:"required,oneof=approve reject"`
	ReviewNote string `json:"review_note" validate:"omitempty,max=500"`
}

// ApplicationResponse is the admin list/detail view of one application.
type ApplicationResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Email        *string    `json:"email,omitempty"`
	Age          int        `json:"age"`
	Gender       string     `json:"gender"`
	ApplyType    string     `json:"apply_type"`
	Status       string     `json:"status"`
	ApplyTime    time.Time  `json:"apply_time"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	ReviewerName *string    `json:"reviewer_name,omitempty"`
	ReviewNote   *string    `json:"review_note,omitempty"`
	ReviewTime   *time.Time `json:"review_time,omitempty"`
}

func ToApplicationResponse(m *model.VolunteerApplicationModel, reviewerName *string) ApplicationResponse {
	return ApplicationResponse{
		ID:           m.ApplicationID,
		Name:         m.ApplicationApplicantName,
		Phone:        m.ApplicationApplicantPhone,
		Email:        m.ApplicationApplicantEmail,
		Age:          m.ApplicationApplicantAge,
		Gender:       m.ApplicationApplicantGender,
		ApplyType:    m.ApplicationApplyType,
		Status:       m.ApplicationStatus,
		ApplyTime:    m.ApplicationApplyTime,
		UserID:       m.ApplicationUserID,
		ReviewerName: reviewerName,
		ReviewNote:   m.ApplicationReviewNote,
		ReviewTime:   m.ApplicationReviewTime,
	}
}
