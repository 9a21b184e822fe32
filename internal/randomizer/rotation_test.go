package randomizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestShiftsForDateEpoch(t *testing.T) {
	detail := ShiftsForDate(date(2024, time.November, 1))

	assert.Equal(t, "alpha", detail.Morning)
	assert.Equal(t, "bravo", detail.Afternoon)
	assert.Equal(t, "charlie", detail.Night)
	assert.Equal(t, "general", detail.General)
	assert.Equal(t, "ramc", detail.Ramc)
}

func TestShiftsForDateRotatesDaily(t *testing.T) {
	detail := ShiftsForDate(date(2024, time.November, 2))

	assert.Equal(t, "bravo", detail.Morning)
	assert.Equal(t, "charlie", detail.Afternoon)
	assert.Equal(t, "delta", detail.Night)
}

func TestShiftsForDateDeterministic(t *testing.T) {
	d := date(2025, time.March, 14)
	assert.Equal(t, ShiftsForDate(d), ShiftsForDate(d))
}

func TestShiftsForDatePeriodFive(t *testing.T) {
	start := date(2024, time.November, 1)
	for i := 0; i < 30; i++ {
		d := start.AddDate(0, 0, i)
		assert.Equal(t, ShiftsForDate(d), ShiftsForDate(d.AddDate(0, 0, 5)), "date %s", d.Format(time.DateOnly))
	}
}

func TestShiftsForDateWeekendStillHasGeneralAndRamc(t *testing.T) {
	saturday := date(2024, time.November, 2)
	require.Equal(t, time.Saturday, saturday.Weekday())
	sunday := date(2024, time.November, 3)
	require.Equal(t, time.Sunday, sunday.Weekday())

	for _, d := range []time.Time{saturday, sunday} {
		detail := ShiftsForDate(d)
		assert.Equal(t, "general", detail.General)
		assert.Equal(t, "ramc", detail.Ramc)
	}
}

func TestShiftsForDateIgnoresTimeOfDayAndZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	midnight := date(2025, time.January, 10)
	lateEvening := time.Date(2025, time.January, 10, 23, 45, 0, 0, kolkata)

	assert.Equal(t, ShiftsForDate(midnight).Morning, ShiftsForDate(lateEvening).Morning)
}
