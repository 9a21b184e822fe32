package repository

import (
	"context"
	"time"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO employees (employee_id, name, designation, email, phone, shift)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	args := []any{employee.EmployeeID, employee.Name, employee.Designation, employee.Email, employee.Phone, employee.Shift}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, employee_id, name, designation, email, phone, shift, created_at
		FROM employees
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.EmployeeID, &employee.Name, &employee.Designation, &employee.Email, &employee.Phone, &employee.Shift, &employee.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) GetEmployeeByEmployeeID(employeeID string) (*domain.Employee, error) {
	query := `
		SELECT id, name, designation, email, phone, shift, created_at
		FROM employees WHERE employee_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		EmployeeID: employeeID,
	}

	dst := []any{&employee.ID, &employee.Name, &employee.Designation, &employee.Email, &employee.Phone, &employee.Shift, &employee.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, employeeID).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetAllEmployeeIDs is the projection used when seeding a new job document.
func (r *Repository) GetAllEmployeeIDs() ([]string, error) {
	query := `
		SELECT employee_id FROM employees ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employeeIDs := make([]string, 0)
	for rows.Next() {
		var employeeID string
		if err := rows.Scan(&employeeID); err != nil {
			return nil, err
		}
		employeeIDs = append(employeeIDs, employeeID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employeeIDs, nil
}

// UpdateEmployeeShift reassigns an employee's shift. The reassignment shows up
// immediately in every date's active-by-shift query because the join against
// the roster happens at read time.
func (r *Repository) UpdateEmployeeShift(employeeID string, shift string) error {
	query := `
		UPDATE employees SET shift = $1 WHERE employee_id = $2
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var id int64
	if err := r.dbpool.QueryRowContext(ctx, query, shift, employeeID).Scan(&id); err != nil {
		return err
	}

	return nil
}
