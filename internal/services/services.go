// package services defines interface Catalog for interacting with the rental backend HTTP API
package services

import (
	"context"

	"github.com/marisvale/renterm/internal/models"
)

// Catalog defines the operations the rental backend exposes to this client.
//
// Every response carries a success envelope; implementations surface an
// application-level failure (success:false) as an error wrapping the
// backend-supplied message when one is present.
type Catalog interface {
	// Films retrieves one page of the film listing along with the total film count.
	Films(ctx context.Context, page, pageSize int) ([]models.Film, int, error)

	// SearchFilms retrieves all films matching the query, unpaginated.
	SearchFilms(ctx context.Context, query string) ([]models.Film, error)

	// FilmDetail retrieves a single film with its cast.
	FilmDetail(ctx context.Context, filmID int) (*models.FilmDetail, error)

	// ActorDetail retrieves a single actor with their most rented films.
	ActorDetail(ctx context.Context, actorID int) (*models.ActorDetail, error)

	// TopRentedFilms retrieves the most rented films for the landing view.
	TopRentedFilms(ctx context.Context) ([]models.Film, error)

	// TopActors retrieves the actors with the highest rental totals.
	TopActors(ctx context.Context) ([]models.Actor, error)

	// Customers retrieves one page of the customer listing along with the total count.
	Customers(ctx context.Context, page, pageSize int) ([]models.Customer, int, error)

	// SearchCustomers retrieves all customers matching the query, unpaginated.
	SearchCustomers(ctx context.Context, query string) ([]models.Customer, error)

	// CustomerDetail retrieves a customer with their full rental history.
	CustomerDetail(ctx context.Context, customerID int) (*models.CustomerDetail, error)

	// AddCustomer creates a new customer account.
	AddCustomer(ctx context.Context, form models.CustomerForm) error

	// UpdateCustomer updates an existing customer account.
	UpdateCustomer(ctx context.Context, customerID int, form models.CustomerForm) error

	// DeleteCustomer removes a customer account.
	DeleteCustomer(ctx context.Context, customerID int) error

	// RentFilm opens a rental for the given film and customer details.
	RentFilm(ctx context.Context, filmID int, info models.CustomerInfo) error

	// ReturnRental records the return of an outstanding rental. The backend
	// assigns the return timestamp; callers must re-fetch the customer's
	// rentals rather than patch local state.
	ReturnRental(ctx context.Context, rentalID int) error
}
