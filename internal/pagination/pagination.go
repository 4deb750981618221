// Package pagination implements fixed-size page-number pagination for post
// listings. Page selection is forgiving: anything unparseable maps to page 1
// and anything past the end maps to the last valid page.
package pagination

import "strconv"

// PerPage is the fixed page size for every feed context.
const PerPage = 10

// Page describes one window of a listing.
type Page struct {
	Number   int   `json:"number"`
	NumPages int   `json:"num_pages"`
	Total    int64 `json:"total"`
	HasNext  bool  `json:"has_next"`
	HasPrev  bool  `json:"has_prev"`
}

// ParsePage interprets the raw `page` query value. Missing, non-numeric, or
// non-positive values select page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Window clamps the requested page against the total element count and
// returns the SQL offset together with the resolved page metadata. An empty
// listing still yields a single valid (empty) page 1.
func Window(total int64, requested int) (offset int, page Page) {
	numPages := int((total + PerPage - 1) / PerPage)
	if numPages < 1 {
		numPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	return (number - 1) * PerPage, Page{
		Number:   number,
		NumPages: numPages,
		Total:    total,
		HasNext:  number < numPages,
		HasPrev:  number > 1,
	}
}
