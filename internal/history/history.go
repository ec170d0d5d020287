// Package history records rent and return actions issued from this client
// in a local SQLite journal. The journal is an audit trail, not a cache:
// catalog data always comes from the backend.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/marisvale/renterm/internal/shared"
)

// Outcomes recorded for a journal entry.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Actions recorded in the journal.
const (
	ActionRent   = "rent"
	ActionReturn = "return"
)

// Entry is one recorded action.
type Entry struct {
	ID            string
	Action        string
	FilmID        int
	RentalID      int
	CustomerEmail string
	Outcome       string
	Message       string
	CreatedAt     time.Time
}

// Journal stores actions in a SQLite database.
type Journal struct {
	db *sql.DB
}

// NewJournal wraps an open database. The caller is responsible for running
// migrations before the first write.
func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

// Open opens the journal database at path and applies pending migrations.
func Open(path string) (*Journal, error) {
	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	return NewJournal(db), nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// RecordRent journals a rent attempt for filmID by the customer with email.
// A nil actionErr records a successful outcome.
func (j *Journal) RecordRent(ctx context.Context, filmID int, email string, actionErr error) (string, error) {
	entry := Entry{
		ID:            shared.GenerateID(),
		Action:        ActionRent,
		FilmID:        filmID,
		CustomerEmail: email,
		Outcome:       OutcomeOK,
	}
	if actionErr != nil {
		entry.Outcome = OutcomeFailed
		entry.Message = actionErr.Error()
	}

	return entry.ID, j.insert(ctx, entry)
}

// RecordReturn journals a return attempt for rentalID.
// A nil actionErr records a successful outcome.
func (j *Journal) RecordReturn(ctx context.Context, rentalID int, actionErr error) (string, error) {
	entry := Entry{
		ID:       shared.GenerateID(),
		Action:   ActionReturn,
		RentalID: rentalID,
		Outcome:  OutcomeOK,
	}
	if actionErr != nil {
		entry.Outcome = OutcomeFailed
		entry.Message = actionErr.Error()
	}

	return entry.ID, j.insert(ctx, entry)
}

func (j *Journal) insert(ctx context.Context, entry Entry) error {
	query := `
		INSERT INTO journal_entries (id, action, film_id, rental_id, customer_email, outcome, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := j.db.ExecContext(ctx, query,
		entry.ID, entry.Action, entry.FilmID, entry.RentalID,
		entry.CustomerEmail, entry.Outcome, entry.Message, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record %s action: %w", entry.Action, err)
	}
	return nil
}

// Recent returns the most recent entries, newest first, up to limit.
// A non-positive limit returns up to 50 entries.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, action, film_id, rental_id, customer_email, outcome, message, created_at
		FROM journal_entries
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := j.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		err := rows.Scan(
			&entry.ID, &entry.Action, &entry.FilmID, &entry.RentalID,
			&entry.CustomerEmail, &entry.Outcome, &entry.Message, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
