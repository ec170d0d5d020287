// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// filmsCommand handles film catalog operations
func filmsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "films",
		Aliases: []string{"f"},
		Usage:   "Film catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List films, one page at a time",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "page",
						Aliases: []string{"p"},
						Usage:   "Page to fetch",
						Value:   1,
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "Items per page",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write CSV to a file instead of printing",
					},
				},
				Action: r.FilmsList,
			},
			{
				Name:  "search",
				Usage: "Search films by title, description, actor or category",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.FilmsSearch,
			},
			{
				Name:  "show",
				Usage: "Show a film with its cast",
				Arguments: []cli.Argument{
					&cli.IntArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.FilmsShow,
			},
			{
				Name:  "top",
				Usage: "List the most rented films",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "markdown",
						Usage: "Output a Markdown listing",
					},
				},
				Action: r.FilmsTop,
			},
		},
	}
}

// actorsCommand handles actor operations
func actorsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "actors",
		Usage: "Actor operations",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show an actor with their most rented films",
				Arguments: []cli.Argument{
					&cli.IntArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ActorsShow,
			},
			{
				Name:  "top",
				Usage: "List the most rented actors",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ActorsTop,
			},
		},
	}
}

// customersCommand handles customer account operations
func customersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "customers",
		Aliases: []string{"c"},
		Usage:   "Customer account operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List customers, one page at a time",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "page",
						Aliases: []string{"p"},
						Usage:   "Page to fetch",
						Value:   1,
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "Items per page",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write CSV to a file instead of printing",
					},
				},
				Action: r.CustomersList,
			},
			{
				Name:  "search",
				Usage: "Search customers by name or email",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CustomersSearch,
			},
			{
				Name:  "show",
				Usage: "Show a customer with their rental history",
				Arguments: []cli.Argument{
					&cli.IntArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CustomersShow,
			},
			{
				Name:  "add",
				Usage: "Create a customer account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "first-name",
						Usage:    "Customer first name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "last-name",
						Usage:    "Customer last name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Customer email address",
						Required: true,
					},
				},
				Action: r.CustomersAdd,
			},
			{
				Name:  "update",
				Usage: "Update a customer account",
				Arguments: []cli.Argument{
					&cli.IntArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "first-name",
						Usage:    "Customer first name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "last-name",
						Usage:    "Customer last name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Customer email address",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "inactive",
						Usage: "Mark the account inactive",
					},
				},
				Action: r.CustomersUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a customer account",
				Arguments: []cli.Argument{
					&cli.IntArg{
						Name: "id",
					},
				},
				Action: r.CustomersDelete,
			},
		},
	}
}

// rentCommand submits a new rental
func rentCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "rent",
		Usage: "Rent a film",
		Arguments: []cli.Argument{
			&cli.IntArg{
				Name: "film-id",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "first-name",
				Usage: "Customer first name",
			},
			&cli.StringFlag{
				Name:  "last-name",
				Usage: "Customer last name",
			},
			&cli.StringFlag{
				Name:  "email",
				Usage: "Customer email address",
			},
		},
		Action: r.Rent,
	}
}

// returnCommand returns an outstanding rental
func returnCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "return",
		Usage: "Return an outstanding rental",
		Arguments: []cli.Argument{
			&cli.IntArg{
				Name: "rental-id",
			},
		},
		Action: r.Return,
	}
}

// historyCommand lists recent actions from the local journal
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recent rent and return actions issued from this client",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries to show",
				Value: 20,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.History,
	}
}

// setupCommand initializes the local journal database and config file
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize config file and local journal database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.SetupDatabase,
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Launch the interactive terminal UI",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-journal",
				Usage: "Skip the local action journal",
			},
		},
		Action: r.TUI,
	}
}
