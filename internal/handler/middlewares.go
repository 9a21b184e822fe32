package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
	"github.com/raid-bits/shift-compliance/backend/internal/randomizer"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog would mangle the multi-line trace
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// jobDocument resolves the {date} URL parameter into the document row and puts
// it on the context. Every per-date operation except creation goes through
// here, so the NotFound case is handled in one place.
func (h *Handler) jobDocument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dateParam := chi.URLParam(r, "date")
		if _, err := time.Parse(domain.DateKey, dateParam); err != nil {
			h.errorResponse(w, r, "invalid date, expected YYYY-MM-DD")
			return
		}

		doc, err := h.repository.GetJobDocumentMetaByDate(dateParam)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "no job document exists for this date")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), JobDocumentCtx, doc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) shiftName(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shift := chi.URLParam(r, "shift")
		if !randomizer.IsValidShiftName(shift) {
			h.errorResponse(w, r, "unknown shift name")
			return
		}

		ctx := context.WithValue(r.Context(), ShiftNameCtx, shift)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
