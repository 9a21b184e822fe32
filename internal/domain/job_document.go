package domain

import "time"

// DateKey is the calendar-date format used as the unique key of a job document.
const DateKey = "2006-01-02"

type ShiftDetail struct {
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Night     string `json:"night"`
	General   string `json:"general"`
	Ramc      string `json:"ramc"`
}

// ShiftDetailPatch carries an optional value per shift slot. Nil fields keep
// the stored value.
type ShiftDetailPatch struct {
	Morning   *string `json:"morning"`
	Afternoon *string `json:"afternoon"`
	Night     *string `json:"night"`
	General   *string `json:"general"`
	Ramc      *string `json:"ramc"`
}

func (p ShiftDetailPatch) IsEmpty() bool {
	return p.Morning == nil && p.Afternoon == nil && p.Night == nil && p.General == nil && p.Ramc == nil
}

type JobUser struct {
	EmployeeID string `json:"employeeId"`
	Status     bool   `json:"status"`
}

type JobDocument struct {
	ID            int64           `json:"id"`
	Date          string          `json:"dateDocId"`
	ShiftDetail   ShiftDetail     `json:"shiftDetail"`
	Users         []JobUser       `json:"users"`
	CreatedOn     time.Time       `json:"createdOn"`
	PrevDocID     *int64          `json:"prevDocId"`
	RandomizerLog []RandomizerRun `json:"randomizerLog"`
}
