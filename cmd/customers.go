package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marisvale/renterm/internal/formatter"
	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/rentals"
	"github.com/marisvale/renterm/internal/shared"
	"github.com/urfave/cli/v3"
)

// CustomersList fetches and prints one page of the customer listing.
func (r *Runner) CustomersList(ctx context.Context, cmd *cli.Command) error {
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

	r.logger.Info("listing customers", "page", page, "pageSize", pageSize)

	customers, total, err := r.catalog.Customers(ctx, page, pageSize)
	if err != nil {
		return err
	}

	if output != "" {
		data, err := formatter.CustomersToCSV(customers)
		if err != nil {
			return err
		}
		if err := formatter.WriteToFile(output, data); err != nil {
			return err
		}
		return r.writePlain("✓ Wrote %d customers to %s\n", len(customers), output)
	}

	if useJSON {
		return r.writeJSON(customers, pretty)
	}

	var b strings.Builder
	for i, customer := range customers {
		fmt.Fprintf(&b, "%d. %s <%s>\n", i+1, customer.Name(), customer.Email)
	}
	if err := r.writePlain("%s", b.String()); err != nil {
		return err
	}

	pageCount := (total + pageSize - 1) / pageSize
	return r.writePlainln("Page %d of %d (%d customers total)", page, pageCount, total)
}

// CustomersSearch searches customers and prints the full result list.
func (r *Runner) CustomersSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: search query is required", shared.ErrMissingArgument)
	}

	customers, err := r.catalog.SearchCustomers(ctx, query)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(customers, pretty)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Results for %q:\n\n", query)
	for i, customer := range customers {
		fmt.Fprintf(&b, "%d. %s <%s>\n", i+1, customer.Name(), customer.Email)
	}
	return r.writePlain("%s", b.String())
}

// CustomersShow prints a customer and their rental history grouped by status.
func (r *Runner) CustomersShow(ctx context.Context, cmd *cli.Command) error {
	customerID := cmd.IntArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if customerID <= 0 {
		return fmt.Errorf("%w: a positive customer id is required", shared.ErrInvalidArgument)
	}

	detail, err := r.catalog.CustomerDetail(ctx, customerID)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(detail, pretty)
	}

	customer := detail.Customer
	var b strings.Builder
	fmt.Fprintf(&b, "%s <%s>\n", customer.Name(), customer.Email)
	if !customer.Active {
		b.WriteString("(inactive account)\n")
	}

	now := time.Now()
	grouped := rentals.Partition(detail.Rentals, now)

	writeGroup := func(title string, group []models.Rental) {
		if len(group) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		b.Write(formatter.RentalsToText(group, now))
	}

	writeGroup("Active", grouped.Active)
	writeGroup("Overdue", grouped.Overdue)
	writeGroup("Past", grouped.Past)

	return r.writePlain("%s", b.String())
}

// CustomersAdd creates a customer account.
func (r *Runner) CustomersAdd(ctx context.Context, cmd *cli.Command) error {
	form := models.CustomerForm{
		FirstName: cmd.String("first-name"),
		LastName:  cmd.String("last-name"),
		Email:     cmd.String("email"),
		Active:    true,
	}

	if err := rentals.ValidateCustomerForm(form); err != nil {
		return err
	}

	if err := r.catalog.AddCustomer(ctx, form); err != nil {
		return err
	}

	return r.writePlain("✓ Customer %s %s created\n", form.FirstName, form.LastName)
}

// CustomersUpdate updates a customer account.
func (r *Runner) CustomersUpdate(ctx context.Context, cmd *cli.Command) error {
	customerID := cmd.IntArg("id")
	if customerID <= 0 {
		return fmt.Errorf("%w: a positive customer id is required", shared.ErrInvalidArgument)
	}

	form := models.CustomerForm{
		FirstName: cmd.String("first-name"),
		LastName:  cmd.String("last-name"),
		Email:     cmd.String("email"),
		Active:    !cmd.Bool("inactive"),
	}

	if err := rentals.ValidateCustomerForm(form); err != nil {
		return err
	}

	if err := r.catalog.UpdateCustomer(ctx, customerID, form); err != nil {
		return err
	}

	return r.writePlain("✓ Customer %d updated\n", customerID)
}

// CustomersDelete deletes a customer account.
func (r *Runner) CustomersDelete(ctx context.Context, cmd *cli.Command) error {
	customerID := cmd.IntArg("id")
	if customerID <= 0 {
		return fmt.Errorf("%w: a positive customer id is required", shared.ErrInvalidArgument)
	}

	if err := r.catalog.DeleteCustomer(ctx, customerID); err != nil {
		return err
	}

	return r.writePlain("✓ Customer %d deleted\n", customerID)
}
