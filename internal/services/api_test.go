package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/shared"
	tu "github.com/marisvale/renterm/internal/testing"
)

func TestCatalogAPI(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			api := NewCatalogAPI("http://example.com/api", customClient)

			if api.baseURL != "http://example.com/api" {
				t.Errorf("expected baseURL 'http://example.com/api', got %s", api.baseURL)
			}
			if api.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("With Empty BaseURL", func(t *testing.T) {
			api := NewCatalogAPI("", nil)

			if api.baseURL != defaultBaseURL {
				t.Errorf("expected default baseURL %s, got %s", defaultBaseURL, api.baseURL)
			}
			if api.httpClient.Timeout != defaultTimeout {
				t.Errorf("expected default timeout %v, got %v", defaultTimeout, api.httpClient.Timeout)
			}
		})
	})

	t.Run("Films", func(t *testing.T) {
		t.Run("Decodes Page And Total", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/films" {
					t.Errorf("expected path '/films', got %s", r.URL.Path)
				}
				if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("pageSize") != "20" {
					t.Errorf("unexpected query %s", r.URL.RawQuery)
				}
				if r.Header.Get("X-Request-ID") == "" {
					t.Error("expected correlation id header")
				}

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"total":   57,
					"data": []map[string]any{
						{"film_id": 21, "title": "ACADEMY DINOSAUR"},
						{"film_id": 22, "title": "ACE GOLDFINGER"},
					},
				})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			films, total, err := api.Films(context.Background(), 2, 20)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if total != 57 {
				t.Errorf("expected total 57, got %d", total)
			}
			if len(films) != 2 || films[0].FilmID != 21 {
				t.Errorf("unexpected films %v", films)
			}
		})

		t.Run("Missing Total Falls Back To Item Count", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"data":    []map[string]any{{"film_id": 1}, {"film_id": 2}, {"film_id": 3}},
				})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			_, total, err := api.Films(context.Background(), 1, 20)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if total != 3 {
				t.Errorf("expected total to fall back to 3, got %d", total)
			}
		})

		t.Run("Transport Failure Maps To ErrFetch", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused")),
			}

			api := NewCatalogAPI("http://example.com", client)
			_, _, err := api.Films(context.Background(), 1, 20)

			if !errors.Is(err, shared.ErrFetch) {
				t.Errorf("expected ErrFetch, got %v", err)
			}
		})

		t.Run("Envelope Failure Maps To ErrFetch With Message", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "database unavailable",
				})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			_, _, err := api.Films(context.Background(), 1, 20)

			if !errors.Is(err, shared.ErrFetch) {
				t.Fatalf("expected ErrFetch, got %v", err)
			}
			if !strings.Contains(err.Error(), "database unavailable") {
				t.Errorf("expected backend message in error, got %v", err)
			}
		})

		t.Run("Canceled Context", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			api := NewCatalogAPI(server.URL, nil)
			if _, _, err := api.Films(ctx, 1, 20); err == nil {
				t.Error("expected error for canceled context")
			}
		})
	})

	t.Run("SearchFilms", func(t *testing.T) {
		t.Run("Escapes Query", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/films/search" {
					t.Errorf("expected path '/films/search', got %s", r.URL.Path)
				}
				if got := r.URL.Query().Get("q"); got != "space movie" {
					t.Errorf("expected query 'space movie', got %q", got)
				}
				json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"data":    []map[string]any{{"film_id": 9, "title": "SPACE QUEST"}},
				})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			films, err := api.SearchFilms(context.Background(), "space movie")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(films) != 1 || films[0].Title != "SPACE QUEST" {
				t.Errorf("unexpected films %v", films)
			}
		})
	})

	t.Run("FilmDetail", func(t *testing.T) {
		t.Run("Decodes Film With Cast", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/films/42" {
					t.Errorf("expected path '/films/42', got %s", r.URL.Path)
				}
				json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"data": map[string]any{
						"film":   map[string]any{"film_id": 42, "title": "OUTLAW HANKY"},
						"actors": []map[string]any{{"actor_id": 5, "name": "JOHNNY LOLLOBRIGIDA"}},
					},
				})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			detail, err := api.FilmDetail(context.Background(), 42)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if detail.Film.Title != "OUTLAW HANKY" {
				t.Errorf("unexpected film %v", detail.Film)
			}
			if len(detail.Actors) != 1 || detail.Actors[0].ActorID != 5 {
				t.Errorf("unexpected cast %v", detail.Actors)
			}
		})

		t.Run("404 Maps To ErrNotFound", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			_, err := api.FilmDetail(context.Background(), 9999)

			if !errors.Is(err, shared.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	})

	t.Run("RentFilm", func(t *testing.T) {
		info := models.CustomerInfo{FirstName: "Ann", LastName: "Bell", Email: "ann@example.com"}

		t.Run("Posts Film And Customer", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/rentals" {
					t.Errorf("expected POST /rentals, got %s %s", r.Method, r.URL.Path)
				}

				var body struct {
					FilmID   int                 `json:"filmId"`
					Customer models.CustomerInfo `json:"customer"`
				}
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode request body: %v", err)
				}
				if body.FilmID != 42 || body.Customer.Email != "ann@example.com" {
					t.Errorf("unexpected body %+v", body)
				}

				json.NewEncoder(w).Encode(map[string]any{"success": true})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			if err := api.RentFilm(context.Background(), 42, info); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Rejection Maps To ErrRental With Message", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "Film is out of stock",
				})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			err := api.RentFilm(context.Background(), 42, info)

			if !errors.Is(err, shared.ErrRental) {
				t.Fatalf("expected ErrRental, got %v", err)
			}
			if !strings.Contains(err.Error(), "Film is out of stock") {
				t.Errorf("expected backend message, got %v", err)
			}
		})

		t.Run("Rejection Without Message Uses Generic Phrase", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"success": false})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			err := api.RentFilm(context.Background(), 42, info)

			if !errors.Is(err, shared.ErrRental) {
				t.Fatalf("expected ErrRental, got %v", err)
			}
			if !strings.Contains(err.Error(), "backend rejected the request") {
				t.Errorf("expected generic phrase, got %v", err)
			}
		})
	})

	t.Run("ReturnRental", func(t *testing.T) {
		t.Run("Posts To Return Endpoint", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/rentals/7/return" {
					t.Errorf("expected POST /rentals/7/return, got %s %s", r.Method, r.URL.Path)
				}
				json.NewEncoder(w).Encode(map[string]any{"success": true})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			if err := api.ReturnRental(context.Background(), 7); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Rejection Carries Exact Backend Message", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "Customer has outstanding rental",
				})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			err := api.ReturnRental(context.Background(), 7)

			if !errors.Is(err, shared.ErrRental) {
				t.Fatalf("expected ErrRental, got %v", err)
			}
			if !strings.Contains(err.Error(), "Customer has outstanding rental") {
				t.Errorf("expected exact backend message, got %v", err)
			}
		})
	})

	t.Run("CustomerDetail", func(t *testing.T) {
		t.Run("Decodes Customer With Rentals", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"data": map[string]any{
						"customer": map[string]any{"customer_id": 12, "first_name": "Ann", "last_name": "Bell", "active": true},
						"rentals": []map[string]any{
							{"rental_id": 3, "film_id": 42, "title": "OUTLAW HANKY", "rental_date": "2024-03-01T12:00:00Z", "return_date": nil},
							{"rental_id": 4, "film_id": 43, "title": "PACKER MADIGAN", "rental_date": "2024-02-01T12:00:00Z", "return_date": "2024-02-04T12:00:00Z"},
						},
					},
				})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			detail, err := api.CustomerDetail(context.Background(), 12)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if detail.Customer.Name() != "Ann Bell" {
				t.Errorf("unexpected customer %v", detail.Customer)
			}
			if len(detail.Rentals) != 2 {
				t.Fatalf("expected 2 rentals, got %d", len(detail.Rentals))
			}
			if detail.Rentals[0].ReturnDate != nil {
				t.Error("expected first rental to be outstanding")
			}
			if detail.Rentals[1].ReturnDate == nil {
				t.Error("expected second rental to be returned")
			}
		})
	})

	t.Run("Customer Mutations", func(t *testing.T) {
		form := models.CustomerForm{FirstName: "Ann", LastName: "Bell", Email: "ann@example.com", Active: true}

		t.Run("Add", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/customers" {
					t.Errorf("expected POST /customers, got %s %s", r.Method, r.URL.Path)
				}
				json.NewEncoder(w).Encode(map[string]any{"success": true})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			if err := api.AddCustomer(context.Background(), form); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Update", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut || r.URL.Path != "/customers/12" {
					t.Errorf("expected PUT /customers/12, got %s %s", r.Method, r.URL.Path)
				}
				json.NewEncoder(w).Encode(map[string]any{"success": true})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			if err := api.UpdateCustomer(context.Background(), 12, form); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Delete Rejection Surfaces Message", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("expected DELETE, got %s", r.Method)
				}
				json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "Customer has outstanding rental",
				})
			}))
			defer server.Close()

			api := NewCatalogAPI(server.URL, nil)
			err := api.DeleteCustomer(context.Background(), 12)

			if err == nil || !strings.Contains(err.Error(), "Customer has outstanding rental") {
				t.Errorf("expected backend message, got %v", err)
			}
		})
	})

	t.Run("Top Lists", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/films/top-rented":
				json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"data":    []map[string]any{{"film_id": 1, "title": "BUCKET BROTHERHOOD", "rental_count": 34}},
				})
			case "/actors/top-actors":
				json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"data":    []map[string]any{{"actor_id": 107, "name": "GINA DEGENERES", "total_rentals": 753}},
				})
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		api := NewCatalogAPI(server.URL, nil)

		films, err := api.TopRentedFilms(context.Background())
		if err != nil || len(films) != 1 || films[0].RentalCount != 34 {
			t.Errorf("unexpected top films %v (err %v)", films, err)
		}

		actors, err := api.TopActors(context.Background())
		if err != nil || len(actors) != 1 || actors[0].TotalRentals != 753 {
			t.Errorf("unexpected top actors %v (err %v)", actors, err)
		}
	})
}
