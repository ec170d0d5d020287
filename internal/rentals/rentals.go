// Package rentals classifies rental records and drives the rent/return round
// trip against the backend.
//
// The due-date rule (rental date + 7 days, boundary inclusive) is defined here
// and nowhere else; every view that renders a status badge goes through
// [StatusOf] or [Partition].
package rentals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/services"
	"github.com/marisvale/renterm/internal/shared"
)

// RentalPeriod is the fixed rental window. The backend contract carries no
// per-film or per-plan period, so the policy is a client constant.
const RentalPeriod = 7 * 24 * time.Hour

// Status is the derived state of a rental at a point in time.
type Status int

const (
	StatusActive Status = iota
	StatusOverdue
	StatusReturned
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusOverdue:
		return "Overdue"
	case StatusReturned:
		return "Returned"
	default:
		return "Unknown"
	}
}

// DueDate returns the date by which the rental must be returned.
func DueDate(r models.Rental) time.Time {
	return r.RentalDate.Add(RentalPeriod)
}

// StatusOf derives the rental's status at the given instant. A rental due
// exactly now is still Active; it becomes Overdue one tick later.
func StatusOf(r models.Rental, now time.Time) Status {
	if r.ReturnDate != nil {
		return StatusReturned
	}
	if now.After(DueDate(r)) {
		return StatusOverdue
	}
	return StatusActive
}

// LoanDays returns the whole number of days a completed rental was out,
// rounded up. Returns 0 for rentals that are still outstanding.
func LoanDays(r models.Rental) int {
	if r.ReturnDate == nil {
		return 0
	}

	elapsed := r.ReturnDate.Sub(r.RentalDate)
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Partitioned groups a customer's rentals by derived status. Every input
// rental lands in exactly one bucket; order within each bucket preserves
// input order.
type Partitioned struct {
	Active  []models.Rental
	Overdue []models.Rental
	Past    []models.Rental
}

// Partition splits rentals by status at the given instant.
func Partition(rs []models.Rental, now time.Time) Partitioned {
	var p Partitioned
	for _, r := range rs {
		switch StatusOf(r, now) {
		case StatusReturned:
			p.Past = append(p.Past, r)
		case StatusOverdue:
			p.Overdue = append(p.Overdue, r)
		default:
			p.Active = append(p.Active, r)
		}
	}
	return p
}

// Engine orchestrates rent and return requests. It never retries and never
// patches rental records in place; after a successful return the caller must
// re-fetch the customer's rentals so the backend's timestamps stay
// authoritative.
type Engine struct {
	catalog services.Catalog
}

// NewEngine creates an Engine backed by the given catalog service.
func NewEngine(catalog services.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Rent validates the customer details and opens a rental for the film.
// Validation failure short-circuits before any backend call.
func (e *Engine) Rent(ctx context.Context, filmID int, info models.CustomerInfo) error {
	if err := validateCustomerInfo(info); err != nil {
		return err
	}

	if e.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	return e.catalog.RentFilm(ctx, filmID, info)
}

// Return records the return of an outstanding rental. Confirmation is the
// caller's concern; the engine assumes it already happened.
func (e *Engine) Return(ctx context.Context, rentalID int) error {
	if e.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	return e.catalog.ReturnRental(ctx, rentalID)
}

// ValidateCustomerForm applies the same non-empty rule to customer create and
// update submissions.
func ValidateCustomerForm(form models.CustomerForm) error {
	return validateFields(form.FirstName, form.LastName, form.Email)
}

func validateCustomerInfo(info models.CustomerInfo) error {
	return validateFields(info.FirstName, info.LastName, info.Email)
}

func validateFields(firstName, lastName, email string) error {
	var missing []string
	if strings.TrimSpace(firstName) == "" {
		missing = append(missing, "first name")
	}
	if strings.TrimSpace(lastName) == "" {
		missing = append(missing, "last name")
	}
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", shared.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
