package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/marisvale/renterm/internal/history"
	"github.com/marisvale/renterm/internal/models"
	"github.com/marisvale/renterm/internal/notify"
	"github.com/marisvale/renterm/internal/rentals"
	"github.com/marisvale/renterm/internal/services"
	"github.com/marisvale/renterm/internal/views"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LandingView ViewState = iota
	FilmListView
	FilmDetailView
	RentFormView
	CustomerListView
	CustomerDetailView
	ConfirmReturnView
)

// notifyTickInterval paces re-renders for notification expiry.
const notifyTickInterval = 500 * time.Millisecond

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	catalog services.Catalog
	engine  *rentals.Engine
	queue   *notify.Queue
	journal *history.Journal
	logger  *log.Logger

	view   ViewState
	width  int
	height int

	films     *views.Controller[models.Film]
	customers *views.Controller[models.Customer]

	topFilms  []models.Film
	topActors []models.Actor

	filmList     list.Model
	customerList list.Model
	rentalList   list.Model

	searchInput textinput.Model
	searchOpen  bool

	formInputs []textinput.Model
	formFocus  int

	selectedFilm     *models.FilmDetail
	selectedCustomer *models.CustomerDetail
	pendingReturn    *models.Rental

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies. The journal
// may be nil, in which case actions are not recorded locally.
func NewModel(ctx context.Context, catalog services.Catalog, engine *rentals.Engine, queue *notify.Queue, journal *history.Journal, logger *log.Logger, pageSize int) *Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "

	inputs := make([]textinput.Model, 3)
	for i, placeholder := range []string{"First name", "Last name", "Email"} {
		input := textinput.New()
		input.Placeholder = placeholder
		inputs[i] = input
	}

	filmList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	filmList.Title = "Films"
	filmList.SetShowHelp(false)
	filmList.SetFilteringEnabled(false)

	customerList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	customerList.Title = "Customers"
	customerList.SetShowHelp(false)
	customerList.SetFilteringEnabled(false)

	rentalList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	rentalList.SetShowHelp(false)
	rentalList.SetFilteringEnabled(false)

	return &Model{
		ctx:          ctx,
		catalog:      catalog,
		engine:       engine,
		queue:        queue,
		journal:      journal,
		logger:       logger,
		view:         LandingView,
		films:        views.NewController[models.Film](pageSize),
		customers:    views.NewController[models.Customer](pageSize),
		filmList:     filmList,
		customerList: customerList,
		rentalList:   rentalList,
		searchInput:  search,
		formInputs:   inputs,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init fetches the landing view's top lists and starts the notification tick.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchLanding(), notifyTick())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filmList.SetSize(msg.Width-4, msg.Height-10)
		m.customerList.SetSize(msg.Width-4, msg.Height-10)
		m.rentalList.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case notifyTickMsg:
		return m, notifyTick()

	case landingMsg:
		if msg.err != nil {
			m.queue.Error(msg.err.Error())
			return m, nil
		}
		m.topFilms = msg.topFilms
		m.topActors = msg.topActors
		return m, nil

	case filmsPageMsg:
		if msg.err != nil {
			m.queue.Error(msg.err.Error())
			return m, nil
		}
		if m.films.ApplyPage(msg.req, msg.films, msg.total) {
			m.syncFilmList()
		}
		return m, nil

	case filmSearchMsg:
		if msg.err != nil {
			m.queue.Error(msg.err.Error())
			return m, nil
		}
		if m.films.ApplySearch(msg.req, msg.films) {
			m.syncFilmList()
		}
		return m, nil

	case customersPageMsg:
		if msg.err != nil {
			m.queue.Error(msg.err.Error())
			return m, nil
		}
		if m.customers.ApplyPage(msg.req, msg.customers, msg.total) {
			m.syncCustomerList()
		}
		return m, nil

	case customerSearchMsg:
		if msg.err != nil {
			m.queue.Error(msg.err.Error())
			return m, nil
		}
		if m.customers.ApplySearch(msg.req, msg.customers) {
			m.syncCustomerList()
		}
		return m, nil

	case filmDetailMsg:
		if msg.err != nil {
			m.queue.Error(msg.err.Error())
			return m, nil
		}
		m.selectedFilm = msg.detail
		m.view = FilmDetailView
		return m, nil

	case customerDetailMsg:
		if msg.err != nil {
			m.queue.Error(msg.err.Error())
			return m, nil
		}
		m.selectedCustomer = msg.detail
		m.syncRentalList()
		m.view = CustomerDetailView
		return m, nil

	case rentDoneMsg:
		if msg.err != nil {
			m.queue.Error(msg.err.Error())
			return m, nil
		}
		m.queue.Success(fmt.Sprintf("Rented %s", msg.filmTitle))
		m.view = FilmListView
		return m, nil

	case returnDoneMsg:
		if msg.err != nil {
			m.queue.Error(msg.err.Error())
			m.view = CustomerDetailView
			return m, nil
		}
		m.queue.Success("Rental returned")
		m.pendingReturn = nil
		return m, m.fetchCustomerDetail(msg.customerID)
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case LandingView:
		body = m.renderLanding()
	case FilmListView:
		body = m.renderFilmList()
	case FilmDetailView:
		body = m.renderFilmDetail()
	case RentFormView:
		body = m.renderRentForm()
	case CustomerListView:
		body = m.renderCustomerList()
	case CustomerDetailView:
		body = m.renderCustomerDetail()
	case ConfirmReturnView:
		body = m.renderConfirmReturn()
	}

	if bar := m.renderNotifications(); bar != "" {
		return fmt.Sprintf("%s\n\n%s", body, bar)
	}
	return body
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case LandingView:
		return m.handleLandingKeys(msg)
	case FilmListView:
		return m.handleFilmListKeys(msg)
	case FilmDetailView:
		return m.handleFilmDetailKeys(msg)
	case RentFormView:
		return m.handleRentFormKeys(msg)
	case CustomerListView:
		return m.handleCustomerListKeys(msg)
	case CustomerDetailView:
		return m.handleCustomerDetailKeys(msg)
	case ConfirmReturnView:
		return m.handleConfirmReturnKeys(msg)
	}
	return m, nil
}

func (m *Model) handleLandingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.films):
		m.view = FilmListView
		return m, m.loadFilmPage(1)
	case key.Matches(msg, m.keys.customers):
		m.view = CustomerListView
		return m, m.loadCustomerPage(1)
	}
	return m, nil
}

func (m *Model) handleFilmListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchOpen {
		switch msg.String() {
		case "esc":
			m.closeSearch()
			return m, nil
		case "enter":
			query := m.searchInput.Value()
			m.closeSearch()
			req, ok := m.films.StartSearch(query)
			if !ok {
				m.syncFilmList()
				return m, nil
			}
			return m, m.searchFilms(req)
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		if m.films.Searching() {
			m.films.ClearSearch()
			m.syncFilmList()
			return m, nil
		}
		m.view = LandingView
		return m, nil
	case key.Matches(msg, m.keys.search):
		m.openSearch()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.customers):
		m.view = CustomerListView
		return m, m.loadCustomerPage(1)
	case key.Matches(msg, m.keys.prevPage):
		if !m.films.Searching() {
			return m, m.loadFilmPage(m.films.Page() - 1)
		}
	case key.Matches(msg, m.keys.nextPage):
		if !m.films.Searching() {
			return m, m.loadFilmPage(m.films.Page() + 1)
		}
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.filmList.SelectedItem().(filmItem); ok {
			return m, m.fetchFilmDetail(item.film.FilmID)
		}
	}

	var cmd tea.Cmd
	m.filmList, cmd = m.filmList.Update(msg)
	return m, cmd
}

func (m *Model) handleFilmDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.selectedFilm = nil
		m.view = FilmListView
		return m, nil
	case key.Matches(msg, m.keys.rent):
		m.openRentForm()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) handleRentFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = FilmDetailView
		return m, nil
	case "tab", "shift+tab", "enter":
		if msg.String() == "enter" && m.formFocus == len(m.formInputs)-1 {
			return m, m.submitRent()
		}

		if msg.String() == "shift+tab" {
			m.formFocus--
		} else {
			m.formFocus++
		}
		if m.formFocus < 0 {
			m.formFocus = len(m.formInputs) - 1
		}
		if m.formFocus >= len(m.formInputs) {
			m.formFocus = 0
		}

		cmds := make([]tea.Cmd, 0, len(m.formInputs))
		for i := range m.formInputs {
			if i == m.formFocus {
				cmds = append(cmds, m.formInputs[i].Focus())
			} else {
				m.formInputs[i].Blur()
			}
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleCustomerListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchOpen {
		switch msg.String() {
		case "esc":
			m.closeSearch()
			return m, nil
		case "enter":
			query := m.searchInput.Value()
			m.closeSearch()
			req, ok := m.customers.StartSearch(query)
			if !ok {
				m.syncCustomerList()
				return m, nil
			}
			return m, m.searchCustomers(req)
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		if m.customers.Searching() {
			m.customers.ClearSearch()
			m.syncCustomerList()
			return m, nil
		}
		m.view = LandingView
		return m, nil
	case key.Matches(msg, m.keys.search):
		m.openSearch()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.films):
		m.view = FilmListView
		return m, m.loadFilmPage(1)
	case key.Matches(msg, m.keys.prevPage):
		if !m.customers.Searching() {
			return m, m.loadCustomerPage(m.customers.Page() - 1)
		}
	case key.Matches(msg, m.keys.nextPage):
		if !m.customers.Searching() {
			return m, m.loadCustomerPage(m.customers.Page() + 1)
		}
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.customerList.SelectedItem().(customerItem); ok {
			return m, m.fetchCustomerDetail(item.customer.CustomerID)
		}
	}

	var cmd tea.Cmd
	m.customerList, cmd = m.customerList.Update(msg)
	return m, cmd
}

func (m *Model) handleCustomerDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.selectedCustomer = nil
		m.view = CustomerListView
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.rentalList.SelectedItem().(rentalItem); ok {
			if item.rental.ReturnDate == nil {
				rental := item.rental
				m.pendingReturn = &rental
				m.view = ConfirmReturnView
				return m, nil
			}
			m.queue.Info("Rental already returned")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.rentalList, cmd = m.rentalList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmReturnKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.yes):
		return m, m.submitReturn()
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back):
		m.pendingReturn = nil
		m.view = CustomerDetailView
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case FilmListView:
		m.filmList, cmd = m.filmList.Update(msg)
	case CustomerListView:
		m.customerList, cmd = m.customerList.Update(msg)
	case CustomerDetailView:
		m.rentalList, cmd = m.rentalList.Update(msg)
	}
	return m, cmd
}

func (m *Model) openSearch() {
	m.searchOpen = true
	m.searchInput.SetValue("")
	m.searchInput.Focus()
}

func (m *Model) closeSearch() {
	m.searchOpen = false
	m.searchInput.Blur()
}

func (m *Model) openRentForm() {
	for i := range m.formInputs {
		m.formInputs[i].SetValue("")
		m.formInputs[i].Blur()
	}
	m.formFocus = 0
	m.formInputs[0].Focus()
	m.view = RentFormView
}

// syncFilmList rebuilds the film list from the controller's current sequence.
func (m *Model) syncFilmList() {
	films := m.films.CurrentItems()
	items := make([]list.Item, len(films))
	for i, film := range films {
		items[i] = filmItem{film: film}
	}
	m.filmList.SetItems(items)
	m.filmList.ResetSelected()

	if m.films.Searching() {
		m.filmList.Title = fmt.Sprintf("Films matching %q (%d)", m.films.Query(), len(films))
	} else {
		m.filmList.Title = fmt.Sprintf("Films — page %d/%d", m.films.Page(), m.films.PageCount())
	}
}

// syncCustomerList rebuilds the customer list from the controller's current sequence.
func (m *Model) syncCustomerList() {
	customers := m.customers.CurrentItems()
	items := make([]list.Item, len(customers))
	for i, customer := range customers {
		items[i] = customerItem{customer: customer}
	}
	m.customerList.SetItems(items)
	m.customerList.ResetSelected()

	if m.customers.Searching() {
		m.customerList.Title = fmt.Sprintf("Customers matching %q (%d)", m.customers.Query(), len(customers))
	} else {
		m.customerList.Title = fmt.Sprintf("Customers — page %d/%d", m.customers.Page(), m.customers.PageCount())
	}
}

// syncRentalList rebuilds the rental list grouped by status: outstanding
// rentals first (active, then overdue), then past rentals.
func (m *Model) syncRentalList() {
	if m.selectedCustomer == nil {
		return
	}

	now := time.Now()
	grouped := rentals.Partition(m.selectedCustomer.Rentals, now)

	var items []list.Item
	for _, group := range [][]models.Rental{grouped.Active, grouped.Overdue, grouped.Past} {
		for _, rental := range group {
			items = append(items, rentalItem{rental: rental, now: now})
		}
	}

	m.rentalList.SetItems(items)
	m.rentalList.ResetSelected()
	m.rentalList.Title = fmt.Sprintf("Rentals for %s", m.selectedCustomer.Customer.Name())
}

func (m *Model) fetchLanding() tea.Cmd {
	return func() tea.Msg {
		topFilms, err := m.catalog.TopRentedFilms(m.ctx)
		if err != nil {
			return landingMsg{err: err}
		}
		topActors, err := m.catalog.TopActors(m.ctx)
		return landingMsg{topFilms: topFilms, topActors: topActors, err: err}
	}
}

func (m *Model) loadFilmPage(page int) tea.Cmd {
	req := m.films.StartPageLoad(page)
	return func() tea.Msg {
		films, total, err := m.catalog.Films(m.ctx, req.Page, req.PageSize)
		return filmsPageMsg{req: req, films: films, total: total, err: err}
	}
}

func (m *Model) searchFilms(req views.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		films, err := m.catalog.SearchFilms(m.ctx, req.Query)
		return filmSearchMsg{req: req, films: films, err: err}
	}
}

func (m *Model) loadCustomerPage(page int) tea.Cmd {
	req := m.customers.StartPageLoad(page)
	return func() tea.Msg {
		customers, total, err := m.catalog.Customers(m.ctx, req.Page, req.PageSize)
		return customersPageMsg{req: req, customers: customers, total: total, err: err}
	}
}

func (m *Model) searchCustomers(req views.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		customers, err := m.catalog.SearchCustomers(m.ctx, req.Query)
		return customerSearchMsg{req: req, customers: customers, err: err}
	}
}

func (m *Model) fetchFilmDetail(filmID int) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.catalog.FilmDetail(m.ctx, filmID)
		return filmDetailMsg{detail: detail, err: err}
	}
}

func (m *Model) fetchCustomerDetail(customerID int) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.catalog.CustomerDetail(m.ctx, customerID)
		return customerDetailMsg{detail: detail, err: err}
	}
}

func (m *Model) submitRent() tea.Cmd {
	if m.selectedFilm == nil {
		return nil
	}

	film := m.selectedFilm.Film
	info := models.CustomerInfo{
		FirstName: m.formInputs[0].Value(),
		LastName:  m.formInputs[1].Value(),
		Email:     m.formInputs[2].Value(),
	}

	return func() tea.Msg {
		err := m.engine.Rent(m.ctx, film.FilmID, info)
		if m.journal != nil {
			if _, jerr := m.journal.RecordRent(m.ctx, film.FilmID, info.Email, err); jerr != nil {
				m.logger.Warn("failed to journal rent action", "error", jerr)
			}
		}
		return rentDoneMsg{filmTitle: film.Title, err: err}
	}
}

func (m *Model) submitReturn() tea.Cmd {
	if m.pendingReturn == nil || m.selectedCustomer == nil {
		return nil
	}

	rental := *m.pendingReturn
	customerID := m.selectedCustomer.Customer.CustomerID

	return func() tea.Msg {
		err := m.engine.Return(m.ctx, rental.RentalID)
		if m.journal != nil {
			if _, jerr := m.journal.RecordReturn(m.ctx, rental.RentalID, err); jerr != nil {
				m.logger.Warn("failed to journal return action", "error", jerr)
			}
		}
		return returnDoneMsg{rentalID: rental.RentalID, customerID: customerID, err: err}
	}
}

func notifyTick() tea.Cmd {
	return tea.Tick(notifyTickInterval, func(time.Time) tea.Msg {
		return notifyTickMsg{}
	})
}

func (m *Model) renderLanding() string {
	title := styles.title.Render("Rental Catalog")

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\nTop Rented Films\n")
	for i, film := range topN(m.topFilms, 5) {
		b.WriteString(fmt.Sprintf("  %d. %s (%d rentals)\n", i+1, film.Title, film.RentalCount))
	}

	b.WriteString("\nMost Rented Actors\n")
	for i, actor := range topNActors(m.topActors, 5) {
		b.WriteString(fmt.Sprintf("  %d. %s (%d rentals)\n", i+1, actor.Name, actor.TotalRentals))
	}

	helpKeys := []key.Binding{m.keys.films, m.keys.customers, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))

	return b.String()
}

func (m *Model) renderFilmList() string {
	var search string
	if m.searchOpen {
		search = "\n" + m.searchInput.View()
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.search, m.keys.prevPage, m.keys.nextPage, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s%s\n\n%s", m.filmList.View(), search, helpView)
}

func (m *Model) renderFilmDetail() string {
	if m.selectedFilm == nil {
		return styles.err.Render("No film selected")
	}

	film := m.selectedFilm.Film
	title := styles.title.Render(film.Title)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString(fmt.Sprintf("\n\n%s\n\n", film.Description))
	b.WriteString(fmt.Sprintf("Category: %s\nRating: %s\nYear: %d\nLength: %d min\n", film.Category, film.Rating, film.ReleaseYear, film.Length))

	if len(m.selectedFilm.Actors) > 0 {
		b.WriteString("\nCast\n")
		for _, actor := range m.selectedFilm.Actors {
			b.WriteString(fmt.Sprintf("  • %s\n", actor.Name))
		}
	}

	helpKeys := []key.Binding{m.keys.rent, m.keys.back, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))

	return b.String()
}

func (m *Model) renderRentForm() string {
	if m.selectedFilm == nil {
		return styles.err.Render("No film selected")
	}

	title := styles.title.Render(fmt.Sprintf("Rent '%s'", m.selectedFilm.Film.Title))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for i := range m.formInputs {
		b.WriteString(m.formInputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n" + styles.help.Render("tab to move between fields, enter on the last field to submit, esc to cancel"))

	return b.String()
}

func (m *Model) renderCustomerList() string {
	var search string
	if m.searchOpen {
		search = "\n" + m.searchInput.View()
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.search, m.keys.prevPage, m.keys.nextPage, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s%s\n\n%s", m.customerList.View(), search, helpView)
}

func (m *Model) renderCustomerDetail() string {
	if m.selectedCustomer == nil {
		return styles.err.Render("No customer selected")
	}

	customer := m.selectedCustomer.Customer
	header := fmt.Sprintf("%s\n%s", styles.title.Render(customer.Name()), styles.help.Render(customer.Email))

	returnKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "return rental"))
	helpKeys := []key.Binding{returnKey, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n\n%s\n\n%s", header, m.rentalList.View(), helpView)
}

func (m *Model) renderConfirmReturn() string {
	if m.pendingReturn == nil {
		return styles.err.Render("No rental selected")
	}

	title := styles.title.Render(fmt.Sprintf("Return '%s'?", m.pendingReturn.Title))
	info := fmt.Sprintf("\nRented: %s\nDue: %s\n",
		m.pendingReturn.RentalDate.Format("2006-01-02"),
		rentals.DueDate(*m.pendingReturn).Format("2006-01-02"))

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

// renderNotifications renders the active notifications, oldest first, colored
// by kind.
func (m *Model) renderNotifications() string {
	active := m.queue.Current()
	if len(active) == 0 {
		return ""
	}

	lines := make([]string, len(active))
	for i, n := range active {
		switch n.Kind {
		case notify.Success:
			lines[i] = styles.ok.Render("✓ " + n.Message)
		case notify.Error:
			lines[i] = styles.err.Render("✗ " + n.Message)
		case notify.Warning:
			lines[i] = styles.warn.Render("! " + n.Message)
		default:
			lines[i] = styles.help.Render("• " + n.Message)
		}
	}

	return strings.Join(lines, "\n")
}

func topN(films []models.Film, n int) []models.Film {
	if len(films) > n {
		return films[:n]
	}
	return films
}

func topNActors(actors []models.Actor, n int) []models.Actor {
	if len(actors) > n {
		return actors[:n]
	}
	return actors
}
