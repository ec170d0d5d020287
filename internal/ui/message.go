package ui

import (
	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/views"
)

// landingMsg resolves the landing view's top lists.
type landingMsg struct {
	topFilms  []models.Film
	topActors []models.Actor
	err       error
}

// filmsPageMsg resolves a film page fetch. The embedded request carries the
// generation stamp the controller uses to discard stale resolutions.
type filmsPageMsg struct {
	req   views.PageRequest
	films []models.Film
	total int
	err   error
}

// filmSearchMsg resolves a film search fetch.
type filmSearchMsg struct {
	req   views.SearchRequest
	films []models.Film
	err   error
}

// customersPageMsg resolves a customer page fetch.
type customersPageMsg struct {
	req       views.PageRequest
	customers []models.Customer
	total     int
	err       error
}

// customerSearchMsg resolves a customer search fetch.
type customerSearchMsg struct {
	req       views.SearchRequest
	customers []models.Customer
	err       error
}

// filmDetailMsg resolves a film detail fetch.
type filmDetailMsg struct {
	detail *models.FilmDetail
	err    error
}

// customerDetailMsg resolves a customer detail fetch.
type customerDetailMsg struct {
	detail *models.CustomerDetail
	err    error
}

// rentDoneMsg resolves a rent submission.
type rentDoneMsg struct {
	filmTitle string
	err       error
}

// returnDoneMsg resolves a return submission.
type returnDoneMsg struct {
	rentalID   int
	customerID int
	err        error
}

// notifyTickMsg drives periodic re-renders so expired notifications leave the
// screen without other input.
type notifyTickMsg struct{}
