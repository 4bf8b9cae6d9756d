package constants

import "fmt"

// User roles stored on the users table.
const (
	RoleAdmin           = "ADMIN"
	RoleTeenVolunteer   = "TEEN_VOLUNTEER"
	RoleSocialVolunteer = "SOCIAL_VOLUNTEER"
	RoleUniVolunteer    = "UNI_VOLUNTEER"
)

// VolunteerRoles are all non-admin roles a provisioned applicant can hold.
var VolunteerRoles = []string{
	RoleTeenVolunteer,
	RoleSocialVolunteer,
	RoleUniVolunteer,
}

var AllowedRoles = []string{
	RoleAdmin,
	RoleTeenVolunteer,
	RoleSocialVolunteer,
	RoleUniVolunteer,
}

// Volunteer application types (what the applicant ticks on the form).
const (
	ApplyTypeTeen       = "TEEN"
	ApplyTypeSocial     = "SOCIAL"
	ApplyTypeUniversity = "UNIVERSITY"
)

var ApplyTypes = []string{ApplyTypeTeen, ApplyTypeSocial, ApplyTypeUniversity}

// RoleForApplyType maps an application type to the role the provisioned
// user account gets on approval.
func RoleForApplyType(applyType string) (string, error) {
	switch applyType {
	case ApplyTypeTeen:
		return RoleTeenVolunteer, nil
	case ApplyTypeSocial:
		return RoleSocialVolunteer, nil
	case ApplyTypeUniversity:
		return RoleUniVolunteer, nil
	default:
		return "", fmt.Errorf("unknown apply type: %s", applyType)
	}
}

func IsVolunteerRole(role string) bool {
	for _, r := range VolunteerRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Gender restrictions on positions.
const (
	GenderUnrestricted = "UNRESTRICTED"
	GenderMaleOnly     = "MALE_ONLY"
	GenderFemaleOnly   = "FEMALE_ONLY"
)

var GenderRestrictions = []string{GenderUnrestricted, GenderMaleOnly, GenderFemaleOnly}
