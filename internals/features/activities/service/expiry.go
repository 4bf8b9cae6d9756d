package service

import (
	"fmt"
	"time"

	"volunteerhub_backend/internals/features/activities/model"
)

// Expired reports whether the activity has already ended at the given
// moment. Malformed rows count as expired so they never accept
// reservations.
func Expired(a *model.ActivityModel, now time.Time) bool {
	end, err := time.ParseInLocation("2006-01-02 15:04",
		fmt.Sprintf("%s %s", a.ActivityDate, a.ActivityEndTime), now.Location())
	if err != nil {
		return true
	}
	return !now.Before(end)
}
