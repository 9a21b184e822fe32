package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

func TestBuildReportRows(t *testing.T) {
	triggered := time.Date(2025, time.February, 3, 9, 30, 0, 0, time.UTC)

	log := []domain.RandomizerRun{
		{
			ID:              1,
			TriggerDateTime: triggered,
			Shift:           "alpha",
			Result: domain.RandomizationResult{
				MainList: []domain.EmployeeSnapshot{
					{EmployeeID: "EMP001", Name: "Arjun Mehta", Designation: "Operator", Email: "arjun@example.com", Phone: "9000000001", Shift: "alpha"},
				},
				StandbyList: []domain.EmployeeSnapshot{
					{EmployeeID: "EMP002", Name: "Priya Nair", Designation: "Technician", Email: "priya@example.com", Phone: "9000000002", Shift: "alpha"},
				},
			},
		},
		{
			ID:              2,
			TriggerDateTime: triggered.Add(time.Hour),
			Shift:           "bravo",
			Result: domain.RandomizationResult{
				MainList: []domain.EmployeeSnapshot{
					{EmployeeID: "EMP003", Name: "Rohan Iyer", Designation: "Operator", Email: "rohan@example.com", Phone: "9000000003", Shift: "bravo"},
				},
			},
		},
	}

	rows := buildReportRows(log)

	assert.Len(t, rows, 3)
	assert.Equal(t, []any{"2025-02-03 09:30:00", "alpha", "Main", "EMP001", "Arjun Mehta", "Operator", "arjun@example.com", "9000000001", "alpha"}, rows[0])
	assert.Equal(t, "Standby", rows[1][2])
	assert.Equal(t, "EMP002", rows[1][3])
	assert.Equal(t, []any{"2025-02-03 10:30:00", "bravo", "Main", "EMP003", "Rohan Iyer", "Operator", "rohan@example.com", "9000000003", "bravo"}, rows[2])
}

func TestBuildReportRowsEmptyLog(t *testing.T) {
	assert.Empty(t, buildReportRows(nil))
}
