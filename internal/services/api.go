// HTTP implementation of [Catalog]
//
// Endpoint paths and the {success, data, total, message} envelope follow the
// rental backend's REST contract. The backend is unauthenticated; requests
// carry only a correlation id header.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:3001/api"

// defaultTimeout bounds every backend call; a timeout surfaces like any other
// transport failure.
const defaultTimeout = 10 * time.Second

// envelope is the wire shape every backend response shares.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Total   int             `json:"total"`
	Data    json.RawMessage `json:"data"`
}

// CatalogAPI implements the [Catalog] interface against the rental backend.
type CatalogAPI struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Catalog = (*CatalogAPI)(nil)

// NewCatalogAPI creates a new backend client. An empty baseURL falls back to
// the local development default, a nil client gets the fixed request timeout.
func NewCatalogAPI(baseURL string, client *http.Client) *CatalogAPI {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &CatalogAPI{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// SetRateLimit throttles outgoing requests to rps requests per second.
// A non-positive rps removes the throttle.
func (c *CatalogAPI) SetRateLimit(rps float64) {
	if rps <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// doRequest performs one backend call and decodes the response envelope.
//
// A non-2xx status or transport failure returns an error; a 404 wraps
// [shared.ErrNotFound]. A decodable envelope with success:false is returned
// as-is so each operation can map the backend message into its own error class.
func (c *CatalogAPI) doRequest(ctx context.Context, method, endpoint string, body any) (*envelope, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
	}

	apiURL := c.baseURL + endpoint

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", shared.GenerateID())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", shared.ErrNotFound, endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && env.Message != "" {
			return nil, fmt.Errorf("%w: %s", shared.ErrAPIRequest, env.Message)
		}
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	return &env, nil
}

// get performs a read and maps all failures into [shared.ErrFetch].
func (c *CatalogAPI) get(ctx context.Context, endpoint string, result any) (*envelope, error) {
	env, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fetchErr(err)
	}

	if !env.Success {
		if env.Message != "" {
			return nil, fmt.Errorf("%w: %s", shared.ErrFetch, env.Message)
		}
		return nil, fmt.Errorf("%w: backend reported failure", shared.ErrFetch)
	}

	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return env, nil
}

// fetchErr wraps transport failures as ErrFetch while preserving ErrNotFound.
func fetchErr(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", shared.ErrFetch, err)
}

func (c *CatalogAPI) Films(ctx context.Context, page, pageSize int) ([]models.Film, int, error) {
	endpoint := fmt.Sprintf("/films?page=%d&pageSize=%d", page, pageSize)

	var films []models.Film
	env, err := c.get(ctx, endpoint, &films)
	if err != nil {
		return nil, 0, err
	}

	total := env.Total
	if total < len(films) {
		total = len(films)
	}

	return films, total, nil
}

func (c *CatalogAPI) SearchFilms(ctx context.Context, query string) ([]models.Film, error) {
	endpoint := "/films/search?q=" + url.QueryEscape(query)

	var films []models.Film
	if _, err := c.get(ctx, endpoint, &films); err != nil {
		return nil, err
	}

	return films, nil
}

func (c *CatalogAPI) FilmDetail(ctx context.Context, filmID int) (*models.FilmDetail, error) {
	endpoint := fmt.Sprintf("/films/%d", filmID)

	var detail models.FilmDetail
	if _, err := c.get(ctx, endpoint, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}

func (c *CatalogAPI) ActorDetail(ctx context.Context, actorID int) (*models.ActorDetail, error) {
	endpoint := fmt.Sprintf("/actors/%d", actorID)

	var detail models.ActorDetail
	if _, err := c.get(ctx, endpoint, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}

func (c *CatalogAPI) TopRentedFilms(ctx context.Context) ([]models.Film, error) {
	var films []models.Film
	if _, err := c.get(ctx, "/films/top-rented", &films); err != nil {
		return nil, err
	}
	return films, nil
}

func (c *CatalogAPI) TopActors(ctx context.Context) ([]models.Actor, error) {
	var actors []models.Actor
	if _, err := c.get(ctx, "/actors/top-actors", &actors); err != nil {
		return nil, err
	}
	return actors, nil
}

func (c *CatalogAPI) Customers(ctx context.Context, page, pageSize int) ([]models.Customer, int, error) {
	endpoint := fmt.Sprintf("/customers?page=%d&pageSize=%d", page, pageSize)

	var customers []models.Customer
	env, err := c.get(ctx, endpoint, &customers)
	if err != nil {
		return nil, 0, err
	}

	total := env.Total
	if total < len(customers) {
		total = len(customers)
	}

	return customers, total, nil
}

func (c *CatalogAPI) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	endpoint := "/customers/search?q=" + url.QueryEscape(query)

	var customers []models.Customer
	if _, err := c.get(ctx, endpoint, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

func (c *CatalogAPI) CustomerDetail(ctx context.Context, customerID int) (*models.CustomerDetail, error) {
	endpoint := fmt.Sprintf("/customers/%d", customerID)

	var detail models.CustomerDetail
	if _, err := c.get(ctx, endpoint, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}

// mutate performs a write and maps failures into errClass, preferring the
// backend-supplied message when one is present.
func (c *CatalogAPI) mutate(ctx context.Context, errClass error, method, endpoint string, body any) error {
	env, err := c.doRequest(ctx, method, endpoint, body)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", errClass, err)
	}

	if !env.Success {
		if env.Message != "" {
			return fmt.Errorf("%w: %s", errClass, env.Message)
		}
		return fmt.Errorf("%w: backend rejected the request", errClass)
	}

	return nil
}

func (c *CatalogAPI) AddCustomer(ctx context.Context, form models.CustomerForm) error {
	return c.mutate(ctx, shared.ErrAPIRequest, http.MethodPost, "/customers", form)
}

func (c *CatalogAPI) UpdateCustomer(ctx context.Context, customerID int, form models.CustomerForm) error {
	endpoint := fmt.Sprintf("/customers/%d", customerID)
	return c.mutate(ctx, shared.ErrAPIRequest, http.MethodPut, endpoint, form)
}

func (c *CatalogAPI) DeleteCustomer(ctx context.Context, customerID int) error {
	endpoint := fmt.Sprintf("/customers/%d", customerID)
	return c.mutate(ctx, shared.ErrAPIRequest, http.MethodDelete, endpoint, nil)
}

func (c *CatalogAPI) RentFilm(ctx context.Context, filmID int, info models.CustomerInfo) error {
	body := struct {
		FilmID   int                 `json:"filmId"`
		Customer models.CustomerInfo `json:"customer"`
	}{FilmID: filmID, Customer: info}

	return c.mutate(ctx, shared.ErrRental, http.MethodPost, "/rentals", body)
}

func (c *CatalogAPI) ReturnRental(ctx context.Context, rentalID int) error {
	endpoint := fmt.Sprintf("/rentals/%d/return", rentalID)
	return c.mutate(ctx, shared.ErrRental, http.MethodPost, endpoint, nil)
}
