package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/shared"
	"github.com/urfave/cli/v3"
)

// Rent submits a new rental for the given film and records it in the journal.
func (r *Runner) Rent(ctx context.Context, cmd *cli.Command) error {
	filmID := cmd.IntArg("film-id")
	if filmID <= 0 {
		return fmt.Errorf("%w: a positive film id is required", shared.ErrInvalidArgument)
	}

	info := models.CustomerInfo{
		FirstName: cmd.String("first-name"),
		LastName:  cmd.String("last-name"),
		Email:     cmd.String("email"),
	}

	r.logger.Info("renting film", "filmID", filmID, "email", info.Email)

	err := r.engine.Rent(ctx, filmID, info)

	if journal, jerr := r.openJournal(); jerr == nil {
		defer journal.Close()
		if _, jerr := journal.RecordRent(ctx, filmID, info.Email, err); jerr != nil {
			r.logger.Warn("failed to journal rent action", "error", jerr)
		}
	} else {
		r.logger.Warn("action journal unavailable", "error", jerr)
	}

	if err != nil {
		return err
	}

	return r.writePlain("✓ Film %d rented for %s %s\n", filmID, info.FirstName, info.LastName)
}

// Return returns an outstanding rental and records it in the journal.
func (r *Runner) Return(ctx context.Context, cmd *cli.Command) error {
	rentalID := cmd.IntArg("rental-id")
	if rentalID <= 0 {
		return fmt.Errorf("%w: a positive rental id is required", shared.ErrInvalidArgument)
	}

	r.logger.Info("returning rental", "rentalID", rentalID)

	err := r.engine.Return(ctx, rentalID)

	if journal, jerr := r.openJournal(); jerr == nil {
		defer journal.Close()
		if _, jerr := journal.RecordReturn(ctx, rentalID, err); jerr != nil {
			r.logger.Warn("failed to journal return action", "error", jerr)
		}
	} else {
		r.logger.Warn("action journal unavailable", "error", jerr)
	}

	if err != nil {
		return err
	}

	return r.writePlain("✓ Rental %d returned\n", rentalID)
}

// History prints recent entries from the local action journal.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")

	journal, err := r.openJournal()
	if err != nil {
		return err
	}
	defer journal.Close()

	entries, err := journal.Recent(ctx, limit)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(entries, true)
	}

	if len(entries) == 0 {
		return r.writePlain("No recorded actions.\n")
	}

	var b strings.Builder
	for _, entry := range entries {
		target := fmt.Sprintf("film %d", entry.FilmID)
		if entry.Action == "return" {
			target = fmt.Sprintf("rental %d", entry.RentalID)
		}

		fmt.Fprintf(&b, "%s  %-6s  %-12s  %s", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Action, target, entry.Outcome)
		if entry.Message != "" {
			fmt.Fprintf(&b, " (%s)", entry.Message)
		}
		b.WriteByte('\n')
	}

	return r.writePlain("%s", b.String())
}
