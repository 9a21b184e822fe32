package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

// CreateJobDocument inserts the job document for a date together with its
// initial users list (every roster member, active). The unique index on
// doc_date decides the winner when the daily timer and a manual request race;
// the loser gets domain.ErrJobDocumentExists and no partial document is left
// behind because everything happens in one transaction.
func (r *Repository) CreateJobDocument(date string, detail domain.ShiftDetail, employeeIDs []string) (*domain.JobDocument, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	doc := &domain.JobDocument{
		Date:        date,
		ShiftDetail: detail,
		Users:       make([]domain.JobUser, 0, len(employeeIDs)),
	}

	query := `
		INSERT INTO job_documents (doc_date, morning, afternoon, night, general, ramc, prev_doc_id)
		VALUES ($1, $2, $3, $4, $5, $6, (SELECT id FROM job_documents WHERE doc_date = $1::date - 1))
		RETURNING id, created_on, prev_doc_id
	`

	args := []any{date, detail.Morning, detail.Afternoon, detail.Night, detail.General, detail.Ramc}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&doc.ID, &doc.CreatedOn, &doc.PrevDocID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "job_documents_doc_date_key" {
			return nil, domain.ErrJobDocumentExists
		}
		return nil, err
	}

	for position, employeeID := range employeeIDs {
		query := `
			INSERT INTO job_document_users (job_document_id, employee_id, status, position)
			VALUES ($1, $2, true, $3)
		`

		if _, err := tx.ExecContext(ctx, query, doc.ID, employeeID, position); err != nil {
			return nil, err
		}

		doc.Users = append(doc.Users, domain.JobUser{EmployeeID: employeeID, Status: true})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	doc.RandomizerLog = make([]domain.RandomizerRun, 0)

	return doc, nil
}

// GetJobDocumentMetaByDate loads the document row without its users and
// randomizer log. Handlers that only patch the document use this.
func (r *Repository) GetJobDocumentMetaByDate(date string) (*domain.JobDocument, error) {
	query := `
		SELECT id, doc_date, morning, afternoon, night, general, ramc, prev_doc_id, created_on
		FROM job_documents WHERE doc_date = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	doc := &domain.JobDocument{}
	var docDate time.Time

	dst := []any{&doc.ID, &docDate, &doc.ShiftDetail.Morning, &doc.ShiftDetail.Afternoon, &doc.ShiftDetail.Night, &doc.ShiftDetail.General, &doc.ShiftDetail.Ramc, &doc.PrevDocID, &doc.CreatedOn}
	if err := r.dbpool.QueryRowContext(ctx, query, date).Scan(dst...); err != nil {
		return nil, err
	}

	doc.Date = docDate.Format(domain.DateKey)

	return doc, nil
}

// GetJobDocumentByDate loads the full document: users list in insertion order
// plus the complete randomizer log with result snapshots.
func (r *Repository) GetJobDocumentByDate(date string) (*domain.JobDocument, error) {
	doc, err := r.GetJobDocumentMetaByDate(date)
	if err != nil {
		return nil, err
	}

	if doc.Users, err = r.getJobDocumentUsers(doc.ID); err != nil {
		return nil, err
	}
	if doc.RandomizerLog, err = r.getRandomizerLog(doc.ID); err != nil {
		return nil, err
	}

	return doc, nil
}

func (r *Repository) getJobDocumentUsers(docID int64) ([]domain.JobUser, error) {
	query := `
		SELECT employee_id, status
		FROM job_document_users
		WHERE job_document_id = $1
		ORDER BY position
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.JobUser, 0)
	for rows.Next() {
		user := domain.JobUser{}
		if err := rows.Scan(&user.EmployeeID, &user.Status); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

const addUserPositionRetries = 3

// AddUserToJobDocument appends one entry to the end of the users list. New
// entries start inactive; an explicit status update activates them. The unique
// index on (job_document_id, position) catches two concurrent appends that
// computed the same tail position; the loser recomputes and retries.
func (r *Repository) AddUserToJobDocument(docID int64, employeeID string) error {
	query := `
		INSERT INTO job_document_users (job_document_id, employee_id, status, position)
		VALUES ($1, $2, false, (SELECT COALESCE(MAX(position) + 1, 0) FROM job_document_users WHERE job_document_id = $1))
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var err error
	for attempt := 0; attempt < addUserPositionRetries; attempt++ {
		if _, err = r.dbpool.ExecContext(ctx, query, docID, employeeID); err == nil {
			return nil
		}
		if !isPositionConflict(err) {
			return err
		}
	}

	return err
}

func isPositionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == "job_document_users_job_document_id_position_key"
}

// RemoveUserFromJobDocument deletes the matching users entry. Removing an
// employee who is not listed is a no-op.
func (r *Repository) RemoveUserFromJobDocument(docID int64, employeeID string) error {
	query := `
		DELETE FROM job_document_users WHERE job_document_id = $1 AND employee_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, docID, employeeID); err != nil {
		return err
	}

	return nil
}

// UpdateUserStatuses applies a batch of status flips in a single statement.
// Updates that name an employee not present in the users list match nothing
// and are silently skipped.
func (r *Repository) UpdateUserStatuses(docID int64, updates []domain.JobUser) error {
	employeeIDs := make([]string, 0, len(updates))
	statuses := make([]bool, 0, len(updates))
	for _, update := range updates {
		employeeIDs = append(employeeIDs, update.EmployeeID)
		statuses = append(statuses, update.Status)
	}

	query := `
		UPDATE job_document_users u
		SET status = v.status
		FROM unnest($2::text[], $3::boolean[]) AS v(employee_id, status)
		WHERE u.job_document_id = $1 AND u.employee_id = v.employee_id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, docID, employeeIDs, statuses); err != nil {
		return err
	}

	return nil
}

// UpdateShiftDetail sets only the provided shift slots in one statement, so
// two concurrent patches touching different slots both land. The updated
// assignment is read back from the same statement.
func (r *Repository) UpdateShiftDetail(docID int64, patch domain.ShiftDetailPatch) (*domain.ShiftDetail, error) {
	query := `
		UPDATE job_documents
		SET morning = COALESCE($1::text, morning),
			afternoon = COALESCE($2::text, afternoon),
			night = COALESCE($3::text, night),
			general = COALESCE($4::text, general),
			ramc = COALESCE($5::text, ramc)
		WHERE id = $6
		RETURNING morning, afternoon, night, general, ramc
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	detail := &domain.ShiftDetail{}
	args := []any{patch.Morning, patch.Afternoon, patch.Night, patch.General, patch.Ramc, docID}
	dst := []any{&detail.Morning, &detail.Afternoon, &detail.Night, &detail.General, &detail.Ramc}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return nil, err
	}

	return detail, nil
}

// GetActiveEmployeesByShift joins the document's active users against the
// roster filtered by assigned shift, preserving the users-list order. The join
// is evaluated at read time, so a shift reassignment changes the result for
// every date at once.
func (r *Repository) GetActiveEmployeesByShift(docID int64, shift string) ([]*domain.Employee, error) {
	query := `
		SELECT e.id, e.employee_id, e.name, e.designation, e.email, e.phone, e.shift, e.created_at
		FROM job_document_users u
		JOIN employees e ON e.employee_id = u.employee_id
		WHERE u.job_document_id = $1 AND u.status = true AND e.shift = $2
		ORDER BY u.position
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, docID, shift)
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
