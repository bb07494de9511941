// Package listing implements the shared search/filter/sort/paginate
// pipeline used by every collection-bearing endpoint: the storefront
// catalog, the admin tables and the seller views. It is a pure function
// over an in-memory collection; degenerate inputs are clamped, never
// rejected.
package listing

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	// SortNone keeps the source collection's insertion order.
	SortNone      SortKey = ""
	SortNewest    SortKey = "newest"
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "popular"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// State holds the user-selected parameters for one list view. Zero values
// mean "filter not applied": empty search matches everything, empty status
// and zero category pass all items, nil MaxPrice disables the price cap.
type State struct {
	Search     string
	Status     string
	CategoryID int64
	MaxPrice   *float64
	Sort       SortKey
	Page       int
	PageSize   int
}

// NewState is the cleared filter state: no filters, first page, default
// page size, natural order. Resetting a view means starting from here.
func NewState() State {
	return State{Page: 1, PageSize: DefaultPageSize}
}

// View is the computed page of a collection. Rows is a subset of the
// source in sorted order, never longer than the page size. Page is the
// clamped page number actually served.
type View[T any] struct {
	Rows          []T
	TotalFiltered int
	TotalPages    int
	Page          int
}

// Config binds the pipeline to one entity type through field accessors.
// A nil accessor disables the corresponding stage, so an entity without a
// price simply ignores MaxPrice and the price sort keys.
type Config[T any] struct {
	SearchText func(T) []string
	Status     func(T) string
	CategoryID func(T) int64
	Price      func(T) float64
	Rating     func(T) float64
	CreatedAt  func(T) time.Time
	Name       func(T) string
}

// Compute runs the pipeline: search, categorical filters, price cap,
// stable sort, pagination. It never fails; an empty source or an
// out-of-range page yields a well-defined view.
func (c Config[T]) Compute(source []T, st State) View[T] {
	term := strings.ToLower(strings.TrimSpace(st.Search))

	rows := make([]T, 0, len(source))
	for _, item := range source {
		if term != "" && c.SearchText != nil && !c.matchesTerm(item, term) {
			continue
		}
		if st.Status != "" && c.Status != nil && c.Status(item) != st.Status {
			continue
		}
		if st.CategoryID > 0 && c.CategoryID != nil && c.CategoryID(item) != st.CategoryID {
			continue
		}
		if st.MaxPrice != nil && c.Price != nil && c.Price(item) > *st.MaxPrice {
			continue
		}
		rows = append(rows, item)
	}

	c.sortRows(rows, st.Sort)

	total := len(rows)
	size := st.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	page := st.Page
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return View[T]{
		Rows:          rows[start:end],
		TotalFiltered: total,
		TotalPages:    pages,
		Page:          page,
	}
}

func (c Config[T]) matchesTerm(item T, term string) bool {
	for _, field := range c.SearchText(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (c Config[T]) sortRows(rows []T, key SortKey) {
	switch key {
	case SortName:
		if c.Name == nil {
			return
		}
		col := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(rows, func(i, j int) bool {
			return col.CompareString(c.Name(rows[i]), c.Name(rows[j])) < 0
		})
	case SortPriceLow:
		if c.Price == nil {
			return
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return c.Price(rows[i]) < c.Price(rows[j])
		})
	case SortPriceHigh:
		if c.Price == nil {
			return
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return c.Price(rows[i]) > c.Price(rows[j])
		})
	case SortRating:
		if c.Rating == nil {
			return
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return c.Rating(rows[i]) > c.Rating(rows[j])
		})
	case SortNewest:
		if c.CreatedAt == nil {
			return
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return c.CreatedAt(rows[i]).After(c.CreatedAt(rows[j]))
		})
	}
}
