package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
		want      []string
		wantErr   bool
	}{
		{
			name:      "three hour morning window",
			startTime: "09:00",
			endTime:   "12:00",
			want:      []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"},
		},
		{
			name:      "single hour",
			startTime: "14:00",
			endTime:   "15:00",
			want:      []string{"14:00-15:00"},
		},
		{
			name:      "pads single digit hours",
			startTime: "07:00",
			endTime:   "09:00",
			want:      []string{"07:00-08:00", "08:00-09:00"},
		},
		{
			name:      "end before start",
			startTime: "12:00",
			endTime:   "09:00",
			wantErr:   true,
		},
		{
			name:      "equal start and end",
			startTime: "09:00",
			endTime:   "09:00",
			wantErr:   true,
		},
		{
			name:      "malformed start",
			startTime: "nine",
			endTime:   "12:00",
			wantErr:   true,
		},
		{
			name:      "hour out of range",
			startTime: "09:00",
			endTime:   "25:00",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Slots(tt.startTime, tt.endTime)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("09:00", "12:00", "10:00-11:00"))
	assert.False(t, Contains("09:00", "12:00", "12:00-13:00"))
	assert.False(t, Contains("09:00", "12:00", "10:00"))
	assert.False(t, Contains("bad", "12:00", "10:00-11:00"))
}

func TestSlotHours(t *testing.T) {
	tests := []struct {
		slot string
		want int
	}{
		{"09:00-10:00", 1},
		{"09:00-12:00", 3},
		{"09:00-09:00", 0},
		{"12:00-09:00", 0},
		{"garbage", 0},
		{"09:00", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SlotHours(tt.slot), "slot %q", tt.slot)
	}
}

func TestTotalDemand(t *testing.T) {
	// 09:00-12:00 with count=2 -> 3 slots, demand 6
	slots, err := Slots("09:00", "12:00")
	require.NoError(t, err)
	assert.Equal(t, 6, TotalDemand(2, len(slots)))
	assert.Equal(t, 0, TotalDemand(-1, 3))
	assert.Equal(t, 0, TotalDemand(2, -3))
}
