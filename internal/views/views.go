// Package views implements the list view state layer shared by the film and
// customer listings.
//
// A [Controller] merges a paginated base collection with an ad-hoc search
// result collection into the single sequence a list view should render. The
// two sources never mix: while a search overlay is present it is authoritative
// in full, otherwise the current page of the base result set is.
//
// The controller is a pure state machine. Fetches are issued by the caller:
// [Controller.StartPageLoad] and [Controller.StartSearch] hand out requests
// stamped with a generation counter, and the matching Apply methods accept
// resolutions. A resolution whose generation no longer matches the latest
// issued request for its slot is silently discarded, so a slow response can
// never overwrite a newer one. A failed fetch is simply never applied, which
// leaves the prior state untouched.
package views

import "strings"

// Item is any catalog record keyed by an integer id. Identity for list
// reconciliation is the id alone, never field content.
type Item interface {
	ItemID() int
}

// ResultSet is one page of a paginated backend listing.
type ResultSet[T Item] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int
}

// SearchOverlay is an unpaginated result list shown in place of the base
// listing while a non-empty query is active.
type SearchOverlay[T Item] struct {
	Query string
	Items []T
}

// viewMode tags which collection is authoritative.
type viewMode int

const (
	modePaged viewMode = iota
	modeSearched
)

// PageRequest is a stamped page fetch the caller resolves against the backend.
type PageRequest struct {
	Gen      uint64
	Page     int
	PageSize int
}

// SearchRequest is a stamped search fetch the caller resolves against the
// backend. Every request is a fresh round trip; results are never memoized.
type SearchRequest struct {
	Gen   uint64
	Query string
}

// Controller owns the view state for one listing.
type Controller[T Item] struct {
	pageSize  int
	base      ResultSet[T]
	overlay   SearchOverlay[T]
	mode      viewMode
	pageGen   uint64
	searchGen uint64
}

// NewController creates a controller for listings of the given page size.
func NewController[T Item](pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Controller[T]{
		pageSize: pageSize,
		base:     ResultSet[T]{Page: 1, PageSize: pageSize},
	}
}

// StartPageLoad issues a page fetch for the requested page, clamped into
// [1, PageCount]. The returned request must be passed back to [Controller.ApplyPage]
// with the backend's resolution.
func (c *Controller[T]) StartPageLoad(page int) PageRequest {
	page = c.clampPage(page)
	c.pageGen++
	return PageRequest{Gen: c.pageGen, Page: page, PageSize: c.pageSize}
}

// ApplyPage installs a resolved page fetch. The base result set is replaced
// wholesale. Returns false when the resolution is stale and was discarded.
func (c *Controller[T]) ApplyPage(req PageRequest, items []T, total int) bool {
	if req.Gen != c.pageGen {
		return false
	}

	if total < len(items) {
		total = len(items)
	}

	c.base = ResultSet[T]{
		Items:    items,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	}
	return true
}

// StartSearch issues a search fetch. A blank query clears any existing overlay
// and reports ok=false: the caller must not fetch.
func (c *Controller[T]) StartSearch(query string) (SearchRequest, bool) {
	if isBlank(query) {
		c.ClearSearch()
		return SearchRequest{}, false
	}

	c.searchGen++
	return SearchRequest{Gen: c.searchGen, Query: query}, true
}

// ApplySearch installs a resolved search fetch, making the overlay
// authoritative. Returns false when the resolution is stale and was discarded.
func (c *Controller[T]) ApplySearch(req SearchRequest, items []T) bool {
	if req.Gen != c.searchGen {
		return false
	}

	c.overlay = SearchOverlay[T]{Query: req.Query, Items: items}
	c.mode = modeSearched
	return true
}

// ClearSearch removes the overlay unconditionally. Any in-flight search
// resolution is invalidated rather than applied late.
func (c *Controller[T]) ClearSearch() {
	c.searchGen++
	c.overlay = SearchOverlay[T]{}
	c.mode = modePaged
}

// CurrentItems returns the sequence the view should render: the full overlay
// while searching, otherwise the current page. The returned slice is a copy.
func (c *Controller[T]) CurrentItems() []T {
	var src []T
	if c.mode == modeSearched {
		src = c.overlay.Items
	} else {
		src = c.base.Items
	}

	items := make([]T, len(src))
	copy(items, src)
	return items
}

// Searching reports whether a search overlay is currently authoritative.
func (c *Controller[T]) Searching() bool { return c.mode == modeSearched }

// Query returns the active search query, empty when no overlay is present.
func (c *Controller[T]) Query() string {
	if c.mode != modeSearched {
		return ""
	}
	return c.overlay.Query
}

// Page returns the current page of the base result set.
func (c *Controller[T]) Page() int { return c.base.Page }

// PageSize returns the configured page size.
func (c *Controller[T]) PageSize() int { return c.pageSize }

// Total returns the total item count the backend reported for the base listing.
func (c *Controller[T]) Total() int { return c.base.Total }

// PageCount returns ceil(total/pageSize), 0 when the listing is empty.
func (c *Controller[T]) PageCount() int {
	if c.base.Total == 0 {
		return 0
	}
	return (c.base.Total + c.pageSize - 1) / c.pageSize
}

func (c *Controller[T]) clampPage(page int) int {
	if page < 1 {
		return 1
	}
	count := c.PageCount()
	if count == 0 {
		return 1
	}
	if page > count {
		return count
	}
	return page
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
