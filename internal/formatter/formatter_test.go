package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/marisvale/renterm/internal/models"
)

var sampleFilms = []models.Film{
	{FilmID: 1, Title: "ACADEMY DINOSAUR", Category: "Documentary", Rating: "PG", ReleaseYear: 2006, Length: 86},
	{FilmID: 2, Title: "ACE GOLDFINGER", Category: "Horror", Rating: "G", ReleaseYear: 2006, Length: 48},
}

func TestFormatter(t *testing.T) {
	t.Run("FilmsToCSV", func(t *testing.T) {
		data, err := FilmsToCSV(sampleFilms)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus 2 records, got %d lines", len(lines))
		}
		if lines[0] != "ID,Title,Category,Rating,Year,Length" {
			t.Errorf("unexpected header %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "1,ACADEMY DINOSAUR,Documentary") {
			t.Errorf("unexpected record %q", lines[1])
		}
	})

	t.Run("CustomersToCSV", func(t *testing.T) {
		customers := []models.Customer{
			{CustomerID: 12, FirstName: "Ann", LastName: "Bell", Email: "ann@example.com", Active: true},
		}

		data, err := CustomersToCSV(customers)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out := string(data)
		if !strings.Contains(out, "ann@example.com") || !strings.Contains(out, "true") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("FilmsToMarkdown", func(t *testing.T) {
		top := []models.Film{{FilmID: 1, Title: "BUCKET BROTHERHOOD", Category: "Animation", RentalCount: 34}}

		out := string(FilmsToMarkdown("Top Rented", top))

		if !strings.HasPrefix(out, "# Top Rented\n") {
			t.Errorf("expected title heading, got %q", out)
		}
		if !strings.Contains(out, "**Films**: 1") {
			t.Errorf("expected film count, got %q", out)
		}
		if !strings.Contains(out, "1. BUCKET BROTHERHOOD (Animation) [34 rentals]") {
			t.Errorf("expected numbered entry with rental count, got %q", out)
		}
	})

	t.Run("FilmsToText", func(t *testing.T) {
		out := string(FilmsToText(sampleFilms))

		if !strings.Contains(out, "Films: 2") {
			t.Errorf("expected count, got %q", out)
		}
		if !strings.Contains(out, "2. ACE GOLDFINGER (G, 2006)") {
			t.Errorf("expected numbered entry, got %q", out)
		}
	})

	t.Run("RentalsToText", func(t *testing.T) {
		now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		returned := time.Date(2024, 2, 4, 12, 0, 0, 0, time.UTC)
		entries := []models.Rental{
			{RentalID: 3, Title: "OUTLAW HANKY", RentalDate: time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)},
			{RentalID: 4, Title: "PACKER MADIGAN", RentalDate: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), ReturnDate: &returned},
			{RentalID: 5, Title: "QUEST MUSSOLINI", RentalDate: time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC)},
		}

		out := string(RentalsToText(entries, now))

		if !strings.Contains(out, "1. OUTLAW HANKY [Active] due 2024-03-15") {
			t.Errorf("expected active entry with due date, got %q", out)
		}
		if !strings.Contains(out, "2. PACKER MADIGAN [Returned] returned 2024-02-04 after 3 days") {
			t.Errorf("expected returned entry, got %q", out)
		}
		if !strings.Contains(out, "3. QUEST MUSSOLINI [Overdue] due 2024-02-27") {
			t.Errorf("expected overdue entry, got %q", out)
		}
	})

	t.Run("WriteToFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "films.csv")

		if err := WriteToFile(path, []byte("hello")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil || string(data) != "hello" {
			t.Errorf("unexpected file contents %q (err %v)", string(data), err)
		}
	})
}
