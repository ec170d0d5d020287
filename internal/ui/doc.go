// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow over the rental catalog:
//  1. [LandingView] : Top rented films and most rented actors
//  2. [FilmListView] : Browse, page through and search films
//  3. [FilmDetailView] : Film metadata with cast, entry point for renting
//  4. [RentFormView] : Customer details for a new rental
//  5. [CustomerListView] : Browse, page through and search customers
//  6. [CustomerDetailView] : Customer rental history grouped by status
//  7. [ConfirmReturnView] : Confirm returning an outstanding rental
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Backend fetches run as [tea.Cmd] commands; each resolution carries the
// generation-stamped request it answers, so the list controllers can discard
// responses that arrive after a newer request was issued.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l for pages, /, enter,
// esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
