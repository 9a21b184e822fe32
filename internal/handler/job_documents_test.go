package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

func newShiftDetailRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/job-documents/2025-01-15/shift-detail", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), JobDocumentCtx, &domain.JobDocument{ID: 1, Date: "2025-01-15"})
	return req.WithContext(ctx)
}

func TestUpdateJobDocumentShiftDetailRejectsEmptyPatch(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.UpdateJobDocumentShiftDetail(rec, newShiftDetailRequest(`{}`))

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "no shift detail fields provided", resp.Message)
}

func TestUpdateJobDocumentShiftDetailRejectsUnknownShiftName(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.UpdateJobDocumentShiftDetail(rec, newShiftDetailRequest(`{"morning":"zulu"}`))

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}
