package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/rentals"
)

var (
	_ list.Item = filmItem{}
	_ list.Item = customerItem{}
	_ list.Item = rentalItem{}
)

// filmItem wraps [models.Film] to implement [list.Item].
type filmItem struct {
	film models.Film
}

func (i filmItem) FilterValue() string { return i.film.Title }
func (i filmItem) Title() string       { return i.film.Title }
func (i filmItem) Description() string {
	desc := i.film.Category
	if i.film.Rating != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.film.Rating)
	}
	if i.film.ReleaseYear > 0 {
		desc = fmt.Sprintf("%s • %d", desc, i.film.ReleaseYear)
	}
	return desc
}

// customerItem wraps [models.Customer] to implement [list.Item].
type customerItem struct {
	customer models.Customer
}

func (i customerItem) FilterValue() string { return i.customer.Name() }
func (i customerItem) Title() string       { return i.customer.Name() }
func (i customerItem) Description() string {
	desc := i.customer.Email
	if !i.customer.Active {
		desc = fmt.Sprintf("%s • inactive", desc)
	}
	return desc
}

// rentalItem wraps [models.Rental] with a render instant so derived status
// stays stable for the lifetime of the list.
type rentalItem struct {
	rental models.Rental
	now    time.Time
}

func (i rentalItem) FilterValue() string { return i.rental.Title }
func (i rentalItem) Title() string       { return i.rental.Title }
func (i rentalItem) Description() string {
	status := rentals.StatusOf(i.rental, i.now)
	switch status {
	case rentals.StatusReturned:
		return fmt.Sprintf("%s • returned %s", status, i.rental.ReturnDate.Format("2006-01-02"))
	default:
		return fmt.Sprintf("%s • due %s", status, rentals.DueDate(i.rental).Format("2006-01-02"))
	}
}
