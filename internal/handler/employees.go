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
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees fetched", employees)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID  string `json:"employeeId" validate:"required"`
		Name        string `json:"name" validate:"required"`
		Designation string `json:"designation" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Phone       string `json:"phone" validate:"required"`
		Shift       string `json:"shift" validate:"required,oneof=alpha bravo charlie delta echo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := &domain.Employee{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Designation: req.Designation,
		Email:       req.Email,
		Phone:       req.Phone,
		Shift:       req.Shift,
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employees_employee_id_key":
				h.badRequest(w, r, errors.New("employee id already exists"))
			case "employees_email_key":
				h.badRequest(w, r, errors.New("email already exists"))
			case "employees_phone_key":
				h.badRequest(w, r, errors.New("phone already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// a new joiner also lands on today's job document, inactive until an admin
	// flips their status
	today := time.Now().In(h.location).Format(domain.DateKey)
	doc, err := h.repository.GetJobDocumentMetaByDate(today)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// no document yet for today, the daily job will pick the employee up
	case err != nil:
		slog.Warn("could not load today's job document for new employee", "employeeId", employee.EmployeeID, "error", err)
	default:
		if err := h.repository.AddUserToJobDocument(doc.ID, employee.EmployeeID); err != nil {
			slog.Warn("could not add new employee to today's job document", "employeeId", employee.EmployeeID, "error", err)
		}
	}

	h.successResponse(w, r, "employee created", employee)
}

func (h *Handler) UpdateEmployeeShift(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req struct {
		Shift string `json:"shift" validate:"required,oneof=alpha bravo charlie delta echo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateEmployeeShift(employeeID, req.Shift); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "employee not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift updated", nil)
}
