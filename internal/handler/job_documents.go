package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
	"github.com/raid-bits/shift-compliance/backend/internal/randomizer"
)

// EnsureJobDocumentForDate creates the job document for a date, seeded with
// the full roster (everyone active) and the rotation's shift assignment. When
// the document already exists this is a no-op reported through
// domain.ErrJobDocumentExists. Both the POST endpoint and the daily timer end
// up here.
func (h *Handler) EnsureJobDocumentForDate(date time.Time) (*domain.JobDocument, error) {
	employeeIDs, err := h.repository.GetAllEmployeeIDs()
	if err != nil {
		return nil, err
	}

	detail := randomizer.ShiftsForDate(date)

	return h.repository.CreateJobDocument(date.Format(domain.DateKey), detail, employeeIDs)
}

// RunDailyJobDocumentCreation is the cron entry point. It runs once per firing
// and does not retry on failure; the next firing tries again.
func (h *Handler) RunDailyJobDocumentCreation() {
	now := time.Now().In(h.location)

	doc, err := h.EnsureJobDocumentForDate(now)
	switch {
	case errors.Is(err, domain.ErrJobDocumentExists):
		slog.Info("job document for today already exists", "date", now.Format(domain.DateKey))
	case err != nil:
		slog.Error("could not create today's job document", "date", now.Format(domain.DateKey), "error", err)
	default:
		slog.Info("created today's job document", "date", doc.Date, "users", len(doc.Users))
	}
}

func (h *Handler) CreateJobDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date" validate:"required,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse(domain.DateKey, req.Date)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	doc, err := h.EnsureJobDocumentForDate(date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobDocumentExists):
			// not a failure, the caller just lost the race or asked twice
			h.successResponse(w, r, "job document already exists", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "job document created", doc)
}

func (h *Handler) GetJobDocument(w http.ResponseWriter, r *http.Request) {
	meta := r.Context().Value(JobDocumentCtx).(*domain.JobDocument)

	doc, err := h.repository.GetJobDocumentByDate(meta.Date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "job document fetched", doc)
}

func (h *Handler) AddJobDocumentUser(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(JobDocumentCtx).(*domain.JobDocument)

	var req struct {
		EmployeeID string `json:"employeeId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// only roster members can be listed on a job document
	if _, err := h.repository.GetEmployeeByEmployeeID(req.EmployeeID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "employee not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.AddUserToJobDocument(doc.ID, req.EmployeeID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "job_document_users_job_document_id_employee_id_key":
			h.badRequest(w, r, errors.New("employee is already on the job document"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee added to job document", nil)
}

func (h *Handler) RemoveJobDocumentUser(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(JobDocumentCtx).(*domain.JobDocument)
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.repository.RemoveUserFromJobDocument(doc.ID, employeeID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employee removed from job document", nil)
}

func (h *Handler) UpdateJobDocumentUserStatuses(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(JobDocumentCtx).(*domain.JobDocument)

	var req []struct {
		EmployeeID string `json:"employeeId" validate:"required"`
		Status     *bool  `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if len(req) == 0 {
		h.badRequest(w, r, errors.New("empty status update"))
		return
	}
	for _, update := range req {
		if err := h.validate.Struct(update); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	updates := make([]domain.JobUser, 0, len(req))
	for _, update := range req {
		updates = append(updates, domain.JobUser{EmployeeID: update.EmployeeID, Status: *update.Status})
	}

	if err := h.repository.UpdateUserStatuses(doc.ID, updates); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "user statuses updated", nil)
}

func (h *Handler) UpdateJobDocumentShiftDetail(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(JobDocumentCtx).(*domain.JobDocument)

	var req struct {
		Morning   *string `json:"morning" validate:"omitempty,oneof=alpha bravo charlie delta echo"`
		Afternoon *string `json:"afternoon" validate:"omitempty,oneof=alpha bravo charlie delta echo"`
		Night     *string `json:"night" validate:"omitempty,oneof=alpha bravo charlie delta echo"`
		General   *string `json:"general"`
		Ramc      *string `json:"ramc"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := domain.ShiftDetailPatch{
		Morning:   req.Morning,
		Afternoon: req.Afternoon,
		Night:     req.Night,
		General:   req.General,
		Ramc:      req.Ramc,
	}
	if patch.IsEmpty() {
		h.badRequest(w, r, errors.New("no shift detail fields provided"))
		return
	}

	detail, err := h.repository.UpdateShiftDetail(doc.ID, patch)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift detail updated", detail)
}

func (h *Handler) GetActiveEmployeesByShift(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(JobDocumentCtx).(*domain.JobDocument)
	shift := r.Context().Value(ShiftNameCtx).(string)

	employees, err := h.repository.GetActiveEmployeesByShift(doc.ID, shift)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "active employees fetched", employees)
}
