// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/marisvale/renterm/internal/models"
)

// MockCatalog is a test double for [services.Catalog]. Each operation returns
// the configured value and counts its calls so tests can assert that
// validation failures issue zero backend requests.
type MockCatalog struct {
	Calls int

	FilmsFn          func(ctx context.Context, page, pageSize int) ([]models.Film, int, error)
	SearchFilmsFn    func(ctx context.Context, query string) ([]models.Film, error)
	TopRentedFilmsFn func(ctx context.Context) ([]models.Film, error)
	RentFilmFn       func(ctx context.Context, filmID int, info models.CustomerInfo) error
	ReturnRentalFn   func(ctx context.Context, rentalID int) error
	CustomerDetailFn func(ctx context.Context, customerID int) (*models.CustomerDetail, error)
}

func (m *MockCatalog) Films(ctx context.Context, page, pageSize int) ([]models.Film, int, error) {
	m.Calls++
	if m.FilmsFn != nil {
		return m.FilmsFn(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *MockCatalog) SearchFilms(ctx context.Context, query string) ([]models.Film, error) {
	m.Calls++
	if m.SearchFilmsFn != nil {
		return m.SearchFilmsFn(ctx, query)
	}
	return nil, nil
}

func (m *MockCatalog) FilmDetail(ctx context.Context, filmID int) (*models.FilmDetail, error) {
	m.Calls++
	return nil, nil
}

func (m *MockCatalog) ActorDetail(ctx context.Context, actorID int) (*models.ActorDetail, error) {
	m.Calls++
	return nil, nil
}

func (m *MockCatalog) TopRentedFilms(ctx context.Context) ([]models.Film, error) {
	m.Calls++
	if m.TopRentedFilmsFn != nil {
		return m.TopRentedFilmsFn(ctx)
	}
	return nil, nil
}

func (m *MockCatalog) TopActors(ctx context.Context) ([]models.Actor, error) {
	m.Calls++
	return nil, nil
}

func (m *MockCatalog) Customers(ctx context.Context, page, pageSize int) ([]models.Customer, int, error) {
	m.Calls++
	return nil, 0, nil
}

func (m *MockCatalog) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	m.Calls++
	return nil, nil
}

func (m *MockCatalog) CustomerDetail(ctx context.Context, customerID int) (*models.CustomerDetail, error) {
	m.Calls++
	if m.CustomerDetailFn != nil {
		return m.CustomerDetailFn(ctx, customerID)
	}
	return nil, nil
}

func (m *MockCatalog) AddCustomer(ctx context.Context, form models.CustomerForm) error {
	m.Calls++
	return nil
}

func (m *MockCatalog) UpdateCustomer(ctx context.Context, customerID int, form models.CustomerForm) error {
	m.Calls++
	return nil
}

func (m *MockCatalog) DeleteCustomer(ctx context.Context, customerID int) error {
	m.Calls++
	return nil
}

func (m *MockCatalog) RentFilm(ctx context.Context, filmID int, info models.CustomerInfo) error {
	m.Calls++
	if m.RentFilmFn != nil {
		return m.RentFilmFn(ctx, filmID, info)
	}
	return nil
}

func (m *MockCatalog) ReturnRental(ctx context.Context, rentalID int) error {
	m.Calls++
	if m.ReturnRentalFn != nil {
		return m.ReturnRentalFn(ctx, rentalID)
	}
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

// FakeClock drives notification expiry in tests with virtual time.
//
// Callbacks scheduled via After fire, in schedule order, when Advance moves
// the clock past their deadline.
type FakeClock struct {
	Time   time.Time
	timers []fakeTimer
}

type fakeTimer struct {
	at time.Time
	fn func()
}

// Now returns the current virtual time.
func (c *FakeClock) Now() time.Time { return c.Time }

// After schedules fn to run when the virtual clock reaches d from now.
func (c *FakeClock) After(d time.Duration, fn func()) {
	c.timers = append(c.timers, fakeTimer{at: c.Time.Add(d), fn: fn})
}

// Advance moves the clock forward and fires every timer that has come due.
func (c *FakeClock) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)

	remaining := c.timers[:0]
	var due []func()
	for _, t := range c.timers {
		if !t.at.After(c.Time) {
			due = append(due, t.fn)
		} else {
			remaining = append(remaining, t)
		}
	}
	c.timers = remaining

	for _, fn := range due {
		fn()
	}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
