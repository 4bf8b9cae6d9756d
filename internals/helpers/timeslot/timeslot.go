// Hourly slot arithmetic for activities. An activity declares a working
// window as "HH:MM" start/end strings; volunteers claim whole-hour slots
// identified by "HH:00-HH:00" strings.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHour extracts the integer hour from an "HH:MM" string.
func ParseHour(t string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(t), ":", 2)
	if len(parts) != 2 || len(parts[0]) == 0 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", t)
	}
	if m, err := strconv.Atoi(parts[1]); err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", t)
	}
	return h, nil
}

// Slots expands an activity window into ordered one-hour slot strings,
// one per integer hour in [startHour, endHour).
// "09:00".."12:00" -> ["09:00-10:00", "10:00-11:00", "11:00-12:00"].
func Slots(startTime, endTime string) ([]string, error) {
	startHour, err := ParseHour(startTime)
	if err != nil {
		return nil, err
	}
	endHour, err := ParseHour(endTime)
	if err != nil {
		return nil, err
	}
	if startHour >= endHour {
		return nil, fmt.Errorf("end time %q must be after start time %q", endTime, startTime)
	}
	out := make([]string, 0, endHour-startHour)
	for h := startHour; h < endHour; h++ {
		out = append(out, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
	}
	return out, nil
}

// Contains reports whether slot is one of the slots derived from the window.
func Contains(startTime, endTime, slot string) bool {
	all, err := Slots(startTime, endTime)
	if err != nil {
		return false
	}
	for _, s := range all {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotHours returns the integer hour span of one "HH:MM-HH:MM" slot string.
// Malformed input or a non-positive span yields 0, so a bad row never
// subtracts from an hour total.
func SlotHours(slot string) int {
	parts := strings.SplitN(slot, "-", 2)
	if len(parts) != 2 {
		return 0
	}
	start, err := ParseHour(parts[0])
	if err != nil {
		return 0
	}
	end, err := ParseHour(parts[1])
	if err != nil {
		return 0
	}
	if end <= start {
		return 0
	}
	return end - start
}

// TotalDemand is the headcount needed across all slots of a window:
// per-hour count times number of slots.
func TotalDemand(count, numSlots int) int {
	if count < 0 || numSlots < 0 {
		return 0
	}
	return count * numSlots
}
