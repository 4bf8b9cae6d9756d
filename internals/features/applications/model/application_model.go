package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// VolunteerApplicationModel is the public application form record. No user
// row exists until an admin approves; the applicant_* columns carry the
// form data until then.
type VolunteerApplicationModel struct {
	ApplicationID uuid.UUID `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"application_id"`

	ApplicationApplicantName   string  `gorm:"column:application_applicant_name;type:varchar(100);not null" json:"application_applicant_name"`
	ApplicationApplicantPhone  string  `gorm:"column:application_applicant_phone;type:varchar(20);not null;uniqueIndex:ux_applications_phone" json:"application_applicant_phone"`
	ApplicationApplicantEmail  *string `gorm:"column:application_applicant_email;type:varchar(255)" json:"application_applicant_email,omitempty"`
	ApplicationApplicantAge    int     `gorm:"column:application_applicant_age;not null" json:"application_applicant_age"`
	ApplicationApplicantGender string  `gorm:"column:application_applicant_gender;type:varchar(16);not null" json:"application_applicant_gender"`
	ApplicationApplyType       string  `gorm:"column:application_apply_type;type:varchar(16);not null" json:"application_apply_type"`

	ApplicationStatus    string     `gorm:"column:application_status;type:varchar(16);not null;default:'PENDING'" json:"application_status"`
	ApplicationApplyTime time.Time  `gorm:"column:application_apply_time;type:timestamptz;not null;autoCreateTime" json:"application_apply_time"`
	ApplicationUserID    *uuid.UUID `gorm:"column:application_user_id;type:uuid" json:"application_user_id,omitempty"`

	ApplicationReviewBy   *uuid.UUID `gorm:"column:application_review_by;type:uuid" json:"application_review_by,omitempty"`
	ApplicationReviewNote *string    `gorm:"column:application_review_note;type:text" json:"application_review_note,omitempty"`
	ApplicationReviewTime *time.Time `gorm:"column:application_review_time;type:timestamptz" json:"application_review_time,omitempty"`
}

func (VolunteerApplicationModel) TableName() string {
	return "volunteer_applications"
}
