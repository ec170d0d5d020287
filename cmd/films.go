package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/marisvale/renterm/internal/formatter"
	"github.com/marisvale/renterm/internal/shared"
	"github.com/urfave/cli/v3"
)

// FilmsList fetches and prints one page of the film listing.
func (r *Runner) FilmsList(ctx context.Context, cmd *cli.Command) error {
	page := cmd.Int("page")
	pageSize := cmd.Int("page-size")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	output := cmd.String("output")

	if pageSize <= 0 {
		pageSize = r.config.Catalog.PageSize
	}
	if page < 1 {
		page = 1
	}

	r.logger.Info("listing films", "page", page, "pageSize", pageSize)

	films, total, err := r.catalog.Films(ctx, page, pageSize)
	if err != nil {
		return err
	}

	if output != "" {
		data, err := formatter.FilmsToCSV(films)
		if err != nil {
			return err
		}
		if err := formatter.WriteToFile(output, data); err != nil {
			return err
		}
		return r.writePlain("✓ Wrote %d films to %s\n", len(films), output)
	}

	if useJSON {
		return r.writeJSON(films, pretty)
	}

	pageCount := (total + pageSize - 1) / pageSize
	if err := r.writePlain("%s", formatter.FilmsToText(films)); err != nil {
		return err
	}
	return r.writePlainln("Page %d of %d (%d films total)", page, pageCount, total)
}

// FilmsSearch searches films and prints the full result list.
func (r *Runner) FilmsSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: search query is required", shared.ErrMissingArgument)
	}

	r.logger.Info("searching films", "query", query)

	films, err := r.catalog.SearchFilms(ctx, query)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(films, pretty)
	}

	if err := r.writePlain("Results for %q:\n\n", query); err != nil {
		return err
	}
	return r.writePlain("%s", formatter.FilmsToText(films))
}

// FilmsShow prints a film with its cast.
func (r *Runner) FilmsShow(ctx context.Context, cmd *cli.Command) error {
	filmID := cmd.IntArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if filmID <= 0 {
		return fmt.Errorf("%w: a positive film id is required", shared.ErrInvalidArgument)
	}

	detail, err := r.catalog.FilmDetail(ctx, filmID)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(detail, pretty)
	}

	film := detail.Film
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n", film.Title, film.Description)
	fmt.Fprintf(&b, "Category: %s\nRating: %s\nYear: %d\nLength: %d min\n", film.Category, film.Rating, film.ReleaseYear, film.Length)

	if len(detail.Actors) > 0 {
		b.WriteString("\nCast:\n")
		for _, actor := range detail.Actors {
			fmt.Fprintf(&b, "  • %s\n", actor.Name)
		}
	}

	return r.writePlain("%s", b.String())
}

// FilmsTop prints the most rented films.
func (r *Runner) FilmsTop(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	markdown := cmd.Bool("markdown")

	films, err := r.catalog.TopRentedFilms(ctx)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(films, false)
	}
	if markdown {
		return r.writePlain("%s", formatter.FilmsToMarkdown("Top Rented Films", films))
	}

	var b strings.Builder
	b.WriteString("Top Rented Films\n\n")
	for i, film := range films {
		fmt.Fprintf(&b, "%d. %s (%d rentals)\n", i+1, film.Title, film.RentalCount)
	}
	return r.writePlain("%s", b.String())
}

// ActorsShow prints an actor with their most rented films.
func (r *Runner) ActorsShow(ctx context.Context, cmd *cli.Command) error {
	actorID := cmd.IntArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if actorID <= 0 {
		return fmt.Errorf("%w: a positive actor id is required", shared.ErrInvalidArgument)
	}

	detail, err := r.catalog.ActorDetail(ctx, actorID)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(detail, pretty)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", detail.Actor.Name)
	if len(detail.TopFilms) > 0 {
		b.WriteString("\nMost rented films:\n")
		for i, film := range detail.TopFilms {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, film.Title)
		}
	}
	return r.writePlain("%s", b.String())
}

// ActorsTop prints the most rented actors.
func (r *Runner) ActorsTop(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	actors, err := r.catalog.TopActors(ctx)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(actors, false)
	}

	var b strings.Builder
	b.WriteString("Most Rented Actors\n\n")
	for i, actor := range actors {
		fmt.Fprintf(&b, "%d. %s (%d rentals)\n", i+1, actor.Name, actor.TotalRentals)
	}
	return r.writePlain("%s", b.String())
}
