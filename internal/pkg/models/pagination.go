package models

// Pagination describes a requested page
type Pagination struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// Normalize clamps page/limit to sane bounds
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset returns the row offset for the page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is a paginated result set
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// EmptyPage returns a well-formed page with no items.
// Listing endpoints short-circuit to this for users with no
// group memberships rather than erroring.
func EmptyPage[T any](p Pagination) *Page[T] {
	return &Page[T]{Items: []T{}, Total: 0, Page: p.Page, Limit: p.Limit}
}
