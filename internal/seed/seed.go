package seed

import (
	"errors"
	"log/slog"
	"time"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
	"github.com/raid-bits/shift-compliance/backend/internal/randomizer"
	"github.com/raid-bits/shift-compliance/backend/internal/repository"
	"github.com/raid-bits/shift-compliance/backend/internal/utils"
)

// SeedEmployees inserts n random roster members. Collisions on the generated
// identifiers are just skipped, the caller only cares about roughly n rows.
func SeedEmployees(r *repository.Repository, n int, emailDomainName string) {
	inserted := 0
	for i := 0; i < n; i++ {
		employee := utils.GenerateRandomEmployee(emailDomainName)
		if err := r.CreateEmployee(employee); err != nil {
			slog.Error("could not insert employee", "employeeId", employee.EmployeeID, "error", err)
			continue
		}
		inserted++
	}

	slog.Info("seeded employees", "inserted", inserted)
}

// SeedTodayJobDocument creates today's job document from the current roster.
func SeedTodayJobDocument(r *repository.Repository, location *time.Location) {
	now := time.Now().In(location)

	employeeIDs, err := r.GetAllEmployeeIDs()
	if err != nil {
		slog.Error("could not load the roster", "error", err)
		return
	}

	detail := randomizer.ShiftsForDate(now)

	doc, err := r.CreateJobDocument(now.Format(domain.DateKey), detail, employeeIDs)
	switch {
	case errors.Is(err, domain.ErrJobDocumentExists):
		slog.Info("job document for today already exists")
	case err != nil:
		slog.Error("could not create today's job document", "error", err)
	default:
		slog.Info("created today's job document", "date", doc.Date, "users", len(doc.Users))
	}
}
