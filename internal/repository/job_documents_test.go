package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsPositionConflict(t *testing.T) {
	positionErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "job_document_users_job_document_id_position_key",
	}
	assert.True(t, isPositionConflict(positionErr))
}

func TestIsPositionConflictOtherErrors(t *testing.T) {
	memberErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "job_document_users_job_document_id_employee_id_key",
	}
	assert.False(t, isPositionConflict(memberErr), "duplicate membership must surface, not retry")
	assert.False(t, isPositionConflict(errors.New("connection refused")))
	assert.False(t, isPositionConflict(nil))
}
