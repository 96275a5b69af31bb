// Package pagination slices ordered record sets into fixed-size pages.
package pagination

import "strconv"

// Page describes one slice of an ordered record set. Numbers are 1-based.
type Page struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_previous"`
}

// New computes page metadata for the requested page number given the fixed
// page size and the total item count. Out-of-range requests clamp to the
// nearest valid page instead of failing; an empty set still has one page.
func New(requested, size int, totalItems int64) Page {
	if size <= 0 {
		size = 1
	}

	totalPages := int((totalItems + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}

// Offset returns the record offset of the page's first item.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of items on the page.
func (p Page) Limit() int {
	return p.Size
}

// ParsePage parses a raw page query value. Absent or invalid values default
// to the first page.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
