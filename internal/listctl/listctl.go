// Package listctl implements the paginated list-filter-mutate state machine
// shared by the user, category and task screens. One generic controller is
// instantiated per entity type instead of duplicating the flow three times.
//
// The controller is a pure state machine: network IO stays with the caller
// (the TUI runs it in tea commands, the CLI synchronously). A fetch is
// bracketed by BeginFetch/ApplyResult with a generation token, so a response
// that resolves after a newer fetch started is dropped instead of
// overwriting fresher state.
package listctl

import "strings"

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Query is the current list parameterization. Page is always 1-based; any
// 0-based adaptation belongs to the display layer.
type Query struct {
	Page       int
	PageSize   int
	SearchText string
	Filters    map[string]string
}

func (q Query) Filter(key string) string { return q.Filters[key] }

// Page is one fetched page. It is replaced wholesale on every successful
// fetch, never mutated in place.
type Page[T any] struct {
	Items      []T
	TotalCount int
}

type Controller[T any] struct {
	state  State
	query  Query
	result Page[T]
	err    error

	gen int

	confirmingDelete bool
	deleteID         string
	editing          bool
}

func New[T any](pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Controller[T]{
		state: StateIdle,
		query: Query{Page: 1, PageSize: pageSize},
	}
}

func (c *Controller[T]) State() State    { return c.state }
func (c *Controller[T]) Query() Query    { return c.query }
func (c *Controller[T]) Items() []T      { return c.result.Items }
func (c *Controller[T]) TotalCount() int { return c.result.TotalCount }
func (c *Controller[T]) Err() error      { return c.err }

// TotalPages derives the page count from the last result; at least 1 so the
// pager always has a current page to show.
func (c *Controller[T]) TotalPages() int {
	if c.result.TotalCount <= 0 || c.query.PageSize <= 0 {
		return 1
	}
	n := (c.result.TotalCount + c.query.PageSize - 1) / c.query.PageSize
	if n < 1 {
		n = 1
	}
	return n
}

// BeginFetch transitions to Loading and returns the generation token plus a
// query snapshot for the caller's IO closure.
func (c *Controller[T]) BeginFetch() (gen int, q Query) {
	c.gen++
	c.state = StateLoading
	return c.gen, c.query
}

// ApplyResult settles a fetch. Results for superseded generations are
// ignored (last-started fetch wins, not last-resolved). Reports whether the
// result was applied.
func (c *Controller[T]) ApplyResult(gen int, page Page[T], err error) bool {
	if gen != c.gen {
		return false
	}
	if err != nil {
		c.state = StateFailed
		c.err = err
		return true
	}
	c.state = StateLoaded
	c.err = nil
	c.result = page
	return true
}

// SetSearchText updates the free-text search and resets to page 1.
func (c *Controller[T]) SetSearchText(s string) {
	c.query.SearchText = strings.TrimSpace(s)
	c.query.Page = 1
}

// SetFilter sets (or with "" clears) a foreign-key filter and resets to
// page 1.
func (c *Controller[T]) SetFilter(key, value string) {
	if c.query.Filters == nil {
		c.query.Filters = map[string]string{}
	}
	if strings.TrimSpace(value) == "" {
		delete(c.query.Filters, key)
	} else {
		c.query.Filters[key] = value
	}
	c.query.Page = 1
}

// SetPageSize changes the page size and resets to page 1.
func (c *Controller[T]) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	c.query.PageSize = n
	c.query.Page = 1
}

// SetPage moves to a 1-based page, clamped to [1, TotalPages].
func (c *Controller[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if max := c.TotalPages(); n > max {
		n = max
	}
	c.query.Page = n
}

func (c *Controller[T]) NextPage() { c.SetPage(c.query.Page + 1) }
func (c *Controller[T]) PrevPage() { c.SetPage(c.query.Page - 1) }

// RequestDelete enters the ConfirmingDelete sub-state; no network call yet.
func (c *Controller[T]) RequestDelete(id string) {
	c.confirmingDelete = true
	c.deleteID = id
}

// CancelDelete leaves ConfirmingDelete without touching the list.
func (c *Controller[T]) CancelDelete() {
	c.confirmingDelete = false
	c.deleteID = ""
}

// CompleteDelete is called after the delete call settled (success or not).
// It always leaves ConfirmingDelete; the caller re-fetches the current page
// unconditionally afterwards.
func (c *Controller[T]) CompleteDelete() {
	c.confirmingDelete = false
	c.deleteID = ""
}

func (c *Controller[T]) ConfirmingDelete() bool { return c.confirmingDelete }
func (c *Controller[T]) DeleteID() string       { return c.deleteID }

// RequestEdit enters the Editing sub-state (the caller seeds its form Draft
// from the selected row).
func (c *Controller[T]) RequestEdit() { c.editing = true }

// CloseEdit leaves Editing; on save the caller re-fetches.
func (c *Controller[T]) CloseEdit()    { c.editing = false }
func (c *Controller[T]) Editing() bool { return c.editing }
