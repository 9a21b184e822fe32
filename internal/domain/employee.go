package domain

import (
	"time"
)

type Employee struct {
	ID          int64     `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Shift       string    `json:"shift"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EmployeeSnapshot is a point-in-time copy of an employee's roster fields.
// Snapshots are persisted inside randomizer log entries and never follow
// later roster changes.
type EmployeeSnapshot struct {
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Shift       string `json:"shift"`
}

func (e *Employee) Snapshot() EmployeeSnapshot {
	return EmployeeSnapshot{
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Designation: e.Designation,
		Email:       e.Email,
		Phone:       e.Phone,
		Shift:       e.Shift,
	}
}
