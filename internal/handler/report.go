package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

const reportSheet = "sheet1"

var reportHeader = []any{"TriggerDateTime", "Shift", "Category", "EmployeeID", "Name", "Designation", "Email", "Phone", "AssignedShift"}

// ExportRandomizerReport streams the date's randomizer history as a
// spreadsheet, one row per selected person per run.
func (h *Handler) ExportRandomizerReport(w http.ResponseWriter, r *http.Request) {
	meta := r.Context().Value(JobDocumentCtx).(*domain.JobDocument)

	doc, err := h.repository.GetJobDocumentByDate(meta.Date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	if err := file.SetSheetName("Sheet1", reportSheet); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := file.SetSheetRow(reportSheet, "A1", &reportHeader); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	for i, row := range buildReportRows(doc.RandomizerLog) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if err := file.SetSheetRow(reportSheet, cell, &row); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.xlsx", doc.Date))

	if err := file.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}

// buildReportRows flattens the randomizer log: for every run first the main
// list, then the standby list, each person on their own row.
func buildReportRows(log []domain.RandomizerRun) [][]any {
	rows := make([][]any, 0)

	appendEntries := func(run domain.RandomizerRun, category string, entries []domain.EmployeeSnapshot) {
		for _, entry := range entries {
			rows = append(rows, []any{
				run.TriggerDateTime.Format(time.DateTime),
				run.Shift,
				category,
				entry.EmployeeID,
				entry.Name,
				entry.Designation,
				entry.Email,
				entry.Phone,
				entry.Shift,
			})
		}
	}

	for _, run := range log {
		appendEntries(run, "Main", run.Result.MainList)
		appendEntries(run, "Standby", run.Result.StandbyList)
	}

	return rows
}
