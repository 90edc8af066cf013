package models

// Pagination carries page/limit parsed from the query string
type Pagination struct {
	Page  int
	Limit int
	Sort  string
}

// Offset returns the SQL offset for the current page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is a paginated result set with navigation flags
type Page struct {
	Items   interface{} `json:"items"`
	Total   int         `json:"total"`
	Pages   int         `json:"pages"`
	Current int         `json:"page"`
	HasNext bool        `json:"hasNext"`
	HasPrev bool        `json:"hasPrev"`
}

// NewPage builds a Page from a result slice and the total row count
func NewPage(items interface{}, total int, p Pagination) *Page {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return &Page{
		Items:   items,
		Total:   total,
		Pages:   pages,
		Current: p.Page,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
	}
}
