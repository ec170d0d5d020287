// package formatter provides functions to export catalog listings to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/rentals"
)

// FilmsToCSV converts films to CSV format with columns: ID, Title, Category, Rating, Year, Length
func FilmsToCSV(films []models.Film) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Category", "Rating", "Year", "Length"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, film := range films {
		record := []string{
			strconv.Itoa(film.FilmID),
			film.Title,
			film.Category,
			film.Rating,
			strconv.Itoa(film.ReleaseYear),
			strconv.Itoa(film.Length),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// CustomersToCSV converts customers to CSV format with columns: ID, First Name, Last Name, Email, Active
func CustomersToCSV(customers []models.Customer) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "First Name", "Last Name", "Email", "Active"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, customer := range customers {
		record := []string{
			strconv.Itoa(customer.CustomerID),
			customer.FirstName,
			customer.LastName,
			customer.Email,
			strconv.FormatBool(customer.Active),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// FilmsToMarkdown converts films to a Markdown listing under the given title
func FilmsToMarkdown(title string, films []models.Film) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Films**: %d\n\n", len(films)))

	for i, film := range films {
		detail := ""
		if film.Category != "" {
			detail = fmt.Sprintf(" (%s)", film.Category)
		}
		if film.RentalCount > 0 {
			detail += fmt.Sprintf(" [%d rentals]", film.RentalCount)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, film.Title, detail))
	}

	return buf.Bytes()
}

// FilmsToText converts films to plain text format
func FilmsToText(films []models.Film) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Films: %d\n\n", len(films)))
	for i, film := range films {
		buf.WriteString(fmt.Sprintf("%d. %s (%s, %d)\n", i+1, film.Title, film.Rating, film.ReleaseYear))
	}

	return buf.Bytes()
}

// RentalsToText formats a customer's rental history with due and return dates,
// relative to now.
func RentalsToText(entries []models.Rental, now time.Time) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Rentals: %d\n\n", len(entries)))
	for i, rental := range entries {
		status := rentals.StatusOf(rental, now)
		line := fmt.Sprintf("%d. %s [%s]", i+1, rental.Title, status)

		switch status {
		case rentals.StatusReturned:
			line += fmt.Sprintf(" returned %s after %d days",
				rental.ReturnDate.Format("2006-01-02"), rentals.LoanDays(rental))
		default:
			line += fmt.Sprintf(" due %s", rentals.DueDate(rental).Format("2006-01-02"))
		}

		buf.WriteString(line + "\n")
	}

	return buf.Bytes()
}

// WriteToFile writes data to the specified file path
func WriteToFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
