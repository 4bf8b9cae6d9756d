package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"volunteerhub_backend/internals/features/activities/model"
)

func TestExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		endTime string
		want    bool
	}{
		{"future day", "2026-05-02", "12:00", false},
		{"past day", "2026-04-30", "12:00", true},
		{"same day still running", "2026-05-01", "12:00", false},
		{"same day just ended", "2026-05-01", "10:30", true},
		{"same day long over", "2026-05-01", "09:00", true},
		{"malformed date", "soon", "12:00", true},
		{"malformed end time", "2026-05-02", "noonish", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := model.ActivityModel{ActivityDate: tt.date, ActivityEndTime: tt.endTime}
			assert.Equal(t, tt.want, Expired(&a, now))
		})
	}
}
