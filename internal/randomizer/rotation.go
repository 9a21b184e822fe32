package randomizer

import (
	"slices"
	"time"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

// ShiftNames is the fixed rotation order. Each name moves one slot forward
// every day, so the mapping repeats with a period of five days.
var ShiftNames = []string{"alpha", "bravo", "charlie", "delta", "echo"}

// rotationEpoch is day zero of the rotation. On this date alpha works the
// morning slot, bravo the afternoon and charlie the night.
var rotationEpoch = time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)

func IsValidShiftName(name string) bool {
	return slices.Contains(ShiftNames, name)
}

// ShiftsForDate computes the shift assignment for a calendar date. The result
// depends only on the date, never on the wall clock or time zone of the input.
func ShiftsForDate(date time.Time) domain.ShiftDetail {
	days := daysSinceEpoch(date)
	idx := days % len(ShiftNames)
	if idx < 0 {
		idx += len(ShiftNames)
	}

	detail := domain.ShiftDetail{
		Morning:   ShiftNames[idx],
		Afternoon: ShiftNames[(idx+1)%len(ShiftNames)],
		Night:     ShiftNames[(idx+2)%len(ShiftNames)],
	}

	// general and ramc run every day, weekends included. The upstream system
	// never skipped them on weekends either, so existing job documents all
	// carry these slots.
	detail.General = "general"
	detail.Ramc = "ramc"

	return detail
}

func daysSinceEpoch(date time.Time) int {
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(midnight.Sub(rotationEpoch).Hours() / 24)
}
