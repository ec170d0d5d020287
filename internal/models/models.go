// package models defines the data model for the rental catalog client
package models

import (
	"strings"
	"time"
)

// Film represents a film in the rental catalog.
type Film struct {
	FilmID      int    `json:"film_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Rating      string `json:"rating"`
	ReleaseYear int    `json:"release_year"`
	Length      int    `json:"length"`
	Language    string `json:"language"`
	RentalCount int    `json:"rental_count,omitempty"`
}

// ItemID returns the film's catalog identity.
func (f Film) ItemID() int { return f.FilmID }

// Actor represents an actor, optionally with aggregate rental figures.
type Actor struct {
	ActorID      int    `json:"actor_id"`
	Name         string `json:"name"`
	TotalRentals int    `json:"total_rentals,omitempty"`
}

// ItemID returns the actor's catalog identity.
func (a Actor) ItemID() int { return a.ActorID }

// Customer represents a customer account.
type Customer struct {
	CustomerID int    `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Active     bool   `json:"active"`
}

// ItemID returns the customer's catalog identity.
func (c Customer) ItemID() int { return c.CustomerID }

// Name returns the customer's display name.
func (c Customer) Name() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Rental represents one rental of a film by a customer.
//
// ReturnDate is nil while the rental is outstanding. The backend owns the
// return timestamp; it is never assigned client-side.
type Rental struct {
	RentalID   int        `json:"rental_id"`
	FilmID     int        `json:"film_id"`
	CustomerID int        `json:"customer_id"`
	Title      string     `json:"title"`
	RentalDate time.Time  `json:"rental_date"`
	ReturnDate *time.Time `json:"return_date"`
}

// FilmDetail is a film with its cast, as returned by the film detail endpoint.
type FilmDetail struct {
	Film   Film    `json:"film"`
	Actors []Actor `json:"actors"`
}

// ActorDetail is an actor with their most rented films.
type ActorDetail struct {
	Actor    Actor  `json:"actor"`
	TopFilms []Film `json:"topFilms"`
}

// CustomerDetail is a customer with their full rental history.
type CustomerDetail struct {
	Customer Customer `json:"customer"`
	Rentals  []Rental `json:"rentals"`
}

// CustomerInfo holds the customer fields submitted when renting a film.
type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CustomerForm holds the fields submitted when creating or updating a customer.
type CustomerForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
}
