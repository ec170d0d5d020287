package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/shared"
	tu "github.com/marisvale/renterm/internal/testing"
	"github.com/urfave/cli/v3"
)

// newTestApp builds the full command tree around a Runner wired to the given
// mock catalog, writing output to the returned buffer.
func newTestApp(t *testing.T, catalog *tu.MockCatalog) (*cli.Command, *bytes.Buffer) {
	t.Helper()

	output := &bytes.Buffer{}
	config := shared.DefaultConfig()
	config.Database.Path = filepath.Join(t.TempDir(), "journal.db")

	logger := shared.NewLogger(&bytes.Buffer{})
	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: catalog,
		Logger:  logger,
		Output:  output,
	})

	return &cli.Command{
		Name:     "renterm",
		Commands: runner.register(),
	}, output
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			catalog := &tu.MockCatalog{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/test/path/config.toml",
				Catalog:    catalog,
				HTTPClient: httpClient,
				Logger:     logger,
				Output:     output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
			if runner.catalog != catalog {
				t.Error("expected catalog to be set")
			}
			if runner.engine == nil {
				t.Error("expected engine to be constructed")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if output.String() != expected {
				t.Errorf("expected %q, got %q", expected, output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			// channels cannot be marshaled to JSON
			err := runner.writeJSON(make(chan int), false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writePlain("test"); err == nil {
				t.Fatal("expected error from failing writer")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) != 8 {
			t.Errorf("expected 8 top-level commands, got %d", len(commands))
		}

		names := make(map[string]bool)
		for _, command := range commands {
			names[command.Name] = true
		}

		for _, expected := range []string{"setup", "films", "actors", "customers", "rent", "return", "history", "tui"} {
			if !names[expected] {
				t.Errorf("expected command %q to be registered", expected)
			}
		}
	})
}

func TestCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("films top", func(t *testing.T) {
		catalog := &tu.MockCatalog{
			TopRentedFilmsFn: func(ctx context.Context) ([]models.Film, error) {
				return []models.Film{{FilmID: 1, Title: "BUCKET BROTHERHOOD", RentalCount: 34}}, nil
			},
		}
		app, output := newTestApp(t, catalog)

		if err := app.Run(ctx, []string{"renterm", "films", "top"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "1. BUCKET BROTHERHOOD (34 rentals)") {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("films list prints page summary", func(t *testing.T) {
		catalog := &tu.MockCatalog{
			FilmsFn: func(ctx context.Context, page, pageSize int) ([]models.Film, int, error) {
				return []models.Film{{FilmID: 1, Title: "ACADEMY DINOSAUR", Rating: "PG", ReleaseYear: 2006}}, 57, nil
			},
		}
		app, output := newTestApp(t, catalog)

		if err := app.Run(ctx, []string{"renterm", "films", "list", "--page", "2"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "Page 2 of 3 (57 films total)") {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("films search requires a query", func(t *testing.T) {
		catalog := &tu.MockCatalog{}
		app, _ := newTestApp(t, catalog)

		err := app.Run(ctx, []string{"renterm", "films", "search", "  "})

		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
		if catalog.Calls != 0 {
			t.Errorf("expected no backend calls, got %d", catalog.Calls)
		}
	})

	t.Run("rent rejects invalid customer without a backend call", func(t *testing.T) {
		catalog := &tu.MockCatalog{}
		app, _ := newTestApp(t, catalog)

		err := app.Run(ctx, []string{"renterm", "rent", "--first-name", "Ann", "42"})

		if !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
		if catalog.Calls != 0 {
			t.Errorf("expected no backend calls, got %d", catalog.Calls)
		}
	})

	t.Run("rent submits valid customer", func(t *testing.T) {
		var gotFilmID int
		catalog := &tu.MockCatalog{
			RentFilmFn: func(ctx context.Context, filmID int, info models.CustomerInfo) error {
				gotFilmID = filmID
				return nil
			},
		}
		app, output := newTestApp(t, catalog)

		err := app.Run(ctx, []string{
			"renterm", "rent",
			"--first-name", "Ann", "--last-name", "Bell", "--email", "ann@example.com",
			"42",
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotFilmID != 42 {
			t.Errorf("expected film 42, got %d", gotFilmID)
		}
		if !strings.Contains(output.String(), "✓ Film 42 rented") {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("return surfaces backend rejection", func(t *testing.T) {
		catalog := &tu.MockCatalog{
			ReturnRentalFn: func(ctx context.Context, rentalID int) error {
				return errors.New("Rental already returned")
			},
		}
		app, _ := newTestApp(t, catalog)

		err := app.Run(ctx, []string{"renterm", "return", "7"})

		if err == nil || !strings.Contains(err.Error(), "Rental already returned") {
			t.Errorf("expected backend message, got %v", err)
		}
	})

	t.Run("films top propagates write failure", func(t *testing.T) {
		catalog := &tu.MockCatalog{
			TopRentedFilmsFn: func(ctx context.Context) ([]models.Film, error) {
				return []models.Film{{FilmID: 1, Title: "BUCKET BROTHERHOOD", RentalCount: 34}}, nil
			},
		}
		runner := NewRunner(RunnerOpts{
			Config:  shared.DefaultConfig(),
			Catalog: catalog,
			Logger:  shared.NewLogger(nil),
			Output:  &tu.FWriter{},
		})
		app := &cli.Command{Name: "renterm", Commands: runner.register()}

		err := app.Run(ctx, []string{"renterm", "films", "top"})

		if err == nil || !strings.Contains(err.Error(), "failed to write output") {
			t.Errorf("expected write failure to surface, got %v", err)
		}
	})

	t.Run("history on a fresh journal", func(t *testing.T) {
		catalog := &tu.MockCatalog{}
		app, output := newTestApp(t, catalog)

		if err := app.Run(ctx, []string{"renterm", "history"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "No recorded actions.") {
			t.Errorf("unexpected output %q", output.String())
		}
	})
}
