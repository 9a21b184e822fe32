package repository

import (
	"context"
	"time"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

const (
	entryCategoryMain    = "main"
	entryCategoryStandby = "standby"
)

// InsertRandomizerRun appends one entry to a document's randomizer log. The
// run row and its snapshot entries go in together or not at all; existing runs
// are never touched, so repeated runs for the same date and shift pile up as
// distinct log entries.
func (r *Repository) InsertRandomizerRun(docID int64, run *domain.RandomizerRun) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO randomizer_runs (job_document_id, shift)
		VALUES ($1, $2)
		RETURNING id, triggered_at
	`

	if err := tx.QueryRowContext(ctx, query, docID, run.Shift).Scan(&run.ID, &run.TriggerDateTime); err != nil {
		return err
	}

	insertEntries := func(category string, entries []domain.EmployeeSnapshot) error {
		for position, entry := range entries {
			query := `
				INSERT INTO randomizer_run_entries (randomizer_run_id, category, position, employee_id, name, designation, email, phone, shift)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`

			args := []any{run.ID, category, position, entry.EmployeeID, entry.Name, entry.Designation, entry.Email, entry.Phone, entry.Shift}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}
		return nil
	}

	if err := insertEntries(entryCategoryMain, run.Result.MainList); err != nil {
		return err
	}
	if err := insertEntries(entryCategoryStandby, run.Result.StandbyList); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) getRandomizerLog(docID int64) ([]domain.RandomizerRun, error) {
	query := `
		SELECT
			run.id,
			run.shift,
			run.triggered_at,
			entry.category,
			entry.employee_id,
			entry.name,
			entry.designation,
			entry.email,
			entry.phone,
			entry.shift
		FROM randomizer_runs run
		LEFT JOIN randomizer_run_entries entry ON entry.randomizer_run_id = run.id
		WHERE run.job_document_id = $1
		ORDER BY run.id, entry.category, entry.position
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]domain.RandomizerRun, 0)

	for rows.Next() {
		var row struct {
			runID       int64
			shift       string
			triggeredAt time.Time
			category    *string
			employeeID  *string
			name        *string
			designation *string
			email       *string
			phone       *string
			empShift    *string
		}

		dst := []any{
			&row.runID,
			&row.shift,
			&row.triggeredAt,
			&row.category,
			&row.employeeID,
			&row.name,
			&row.designation,
			&row.email,
			&row.phone,
			&row.empShift,
		}

		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if len(runs) == 0 || runs[len(runs)-1].ID != row.runID {
			runs = append(runs, domain.RandomizerRun{
				ID:              row.runID,
				Shift:           row.shift,
				TriggerDateTime: row.triggeredAt,
				Result: domain.RandomizationResult{
					MainList:    make([]domain.EmployeeSnapshot, 0),
					StandbyList: make([]domain.EmployeeSnapshot, 0),
				},
			})
		}

		if row.category == nil {
			// a run with an empty selection has no entry rows
			continue
		}

		snapshot := domain.EmployeeSnapshot{
			EmployeeID:  *row.employeeID,
			Name:        *row.name,
			Designation: *row.designation,
			Email:       *row.email,
			Phone:       *row.phone,
			Shift:       *row.empShift,
		}

		run := &runs[len(runs)-1]
		switch *row.category {
		case entryCategoryMain:
			run.Result.MainList = append(run.Result.MainList, snapshot)
		case entryCategoryStandby:
			run.Result.StandbyList = append(run.Result.StandbyList, snapshot)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}
