// Package tableview owns search, filter, pagination and selection state for
// a list of entities. It is the single source of truth for the admin
// dashboard list endpoints, decoupled from data fetching and rendering.
package tableview

import "sort"

const DefaultItemsPerPage = 10

// windowRadius is how many page numbers are shown either side of the
// current page in the pagination window.
const windowRadius = 2

// FilterFunc narrows items down to those matching the search term and the
// per-column filter values. It must be pure: no side effects, deterministic
// for given inputs. A filter value of "All" or "" means no filter for that
// column; the function receives them verbatim.
type FilterFunc[T any] func(items []T, searchTerm string, filters map[string]string) []T

// Pagination is the bounded window of visible page numbers. It is only
// produced when there is more than one page.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Pages       []int `json:"pages"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
}

// Controller holds the view state for one list instance. It performs no
// I/O; filtering is fully re-derived on every read, which keeps the state
// transitions trivially correct for the list sizes this serves.
type Controller[T any] struct {
	items        []T
	id           func(T) string
	filter       FilterFunc[T]
	itemsPerPage int

	searchTerm  string
	filters     map[string]string
	currentPage int
	selected    map[string]struct{}
}

// New creates a controller over items. id extracts the unique identifier of
// an item; filter is the caller-supplied predicate. itemsPerPage values
// below 1 fall back to DefaultItemsPerPage.
func New[T any](items []T, id func(T) string, filter FilterFunc[T], itemsPerPage int) *Controller[T] {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	return &Controller[T]{
		items:        items,
		id:           id,
		filter:       filter,
		itemsPerPage: itemsPerPage,
		filters:      make(map[string]string),
		currentPage:  1,
		selected:     make(map[string]struct{}),
	}
}

// SetSearchTerm sets the free-text filter and resets to the first page.
func (c *Controller[T]) SetSearchTerm(value string) {
	c.searchTerm = value
	c.currentPage = 1
}

// SetFilter sets the filter value for a column and resets to the first page.
func (c *Controller[T]) SetFilter(key, value string) {
	c.filters[key] = value
	c.currentPage = 1
}

// ClearFilters resets the search term, all filter values and the page.
// The selection is left untouched.
func (c *Controller[T]) ClearFilters() {
	c.searchTerm = ""
	c.filters = make(map[string]string)
	c.currentPage = 1
}

// ToggleSelection flips membership of id in the selection set. Ids not
// present in the data are tolerated.
func (c *Controller[T]) ToggleSelection(id string) {
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
	} else {
		c.selected[id] = struct{}{}
	}
}

// ToggleSelectAll selects every id on the current page, or deselects
// exactly those ids if all of them are already selected. Selections
// belonging to other pages are never touched.
func (c *Controller[T]) ToggleSelectAll() {
	page := c.PaginatedData()
	if len(page) == 0 {
		return
	}

	if c.AreAllSelected() {
		for _, item := range page {
			delete(c.selected, c.id(item))
		}
		return
	}

	for _, item := range page {
		c.selected[c.id(item)] = struct{}{}
	}
}

// ClearSelection empties the selection set.
func (c *Controller[T]) ClearSelection() {
	c.selected = make(map[string]struct{})
}

// GoToPage clamps n into [1, TotalPages] and moves there.
func (c *Controller[T]) GoToPage(n int) {
	total := c.TotalPages()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	c.currentPage = n
}

func (c *Controller[T]) NextPage() {
	if c.currentPage < c.TotalPages() {
		c.currentPage++
	}
}

func (c *Controller[T]) PreviousPage() {
	if c.currentPage > 1 {
		c.currentPage--
	}
}

func (c *Controller[T]) SearchTerm() string {
	return c.searchTerm
}

// Filters returns a copy of the current filter values.
func (c *Controller[T]) Filters() map[string]string {
	out := make(map[string]string, len(c.filters))
	for k, v := range c.filters {
		out[k] = v
	}
	return out
}

func (c *Controller[T]) CurrentPage() int {
	return c.currentPage
}

// FilteredData re-derives the filtered view from the full item list.
func (c *Controller[T]) FilteredData() []T {
	if c.filter == nil {
		return c.items
	}
	return c.filter(c.items, c.searchTerm, c.Filters())
}

// TotalPages is at least 1 even when the filtered view is empty.
func (c *Controller[T]) TotalPages() int {
	filtered := len(c.FilteredData())
	total := (filtered + c.itemsPerPage - 1) / c.itemsPerPage
	if total < 1 {
		total = 1
	}
	return total
}

// PaginatedData slices the filtered view for the current page.
func (c *Controller[T]) PaginatedData() []T {
	filtered := c.FilteredData()
	start := (c.currentPage - 1) * c.itemsPerPage
	if start >= len(filtered) {
		return []T{}
	}
	end := start + c.itemsPerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// HasActiveFilters reports whether the search term is non-empty or any
// filter is set to something other than "All" or "".
func (c *Controller[T]) HasActiveFilters() bool {
	if c.searchTerm != "" {
		return true
	}
	for _, v := range c.filters {
		if v != "" && v != "All" {
			return true
		}
	}
	return false
}

// AreAllSelected reports whether the current page is non-empty and every
// id on it is selected.
func (c *Controller[T]) AreAllSelected() bool {
	page := c.PaginatedData()
	if len(page) == 0 {
		return false
	}
	for _, item := range page {
		if _, ok := c.selected[c.id(item)]; !ok {
			return false
		}
	}
	return true
}

func (c *Controller[T]) IsSelected(id string) bool {
	_, ok := c.selected[id]
	return ok
}

// SelectedIDs returns the selection as a sorted slice.
func (c *Controller[T]) SelectedIDs() []string {
	ids := make([]string, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Pagination returns the visible page-number window, or nil when
// everything fits on one page.
func (c *Controller[T]) Pagination() *Pagination {
	total := c.TotalPages()
	if total <= 1 {
		return nil
	}

	first := c.currentPage - windowRadius
	if first < 1 {
		first = 1
	}
	last := c.currentPage + windowRadius
	if last > total {
		last = total
	}

	pages := make([]int, 0, last-first+1)
	for p := first; p <= last; p++ {
		pages = append(pages, p)
	}

	return &Pagination{
		CurrentPage: c.currentPage,
		TotalPages:  total,
		Pages:       pages,
		HasPrev:     c.currentPage > 1,
		HasNext:     c.currentPage < total,
	}
}
