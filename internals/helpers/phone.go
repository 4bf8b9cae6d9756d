package helper

import "regexp"

// Mainland mobile number: 11 digits, 1[3-9]xxxxxxxxx.
var phoneRe = regexp.MustCompile(`^1[3-9]\d{9}$`)

func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// DefaultPasswordFromPhone derives the initial password for a provisioned
// volunteer: the last six digits of the phone number the applicant supplied.
func DefaultPasswordFromPhone(phone string) string {
	if len(phone) <= 6 {
		return phone
	}
	return phone[len(phone)-6:]
}
