// Package paging computes limit/offset windows for paginated listings.
//
// Every catalog listing shares the same contract: count the filtered
// collection, derive the number of pages, clamp the requested page into
// range and fetch LIMIT PageSize OFFSET Offset ordered by primary key
// ascending, so repeated calls stay stable while the set is mutated.
package paging

const (
	// DefaultPageSize is the window used by all catalog listings.
	DefaultPageSize = 20
	// MaxPageSize caps client-supplied page sizes.
	MaxPageSize = 100
)

// Page describes one resolved listing window.
type Page struct {
	// Page is the effective (clamped) page number, always >= 1.
	Page int
	// TotalPages is 0 for an empty collection, otherwise ceil(total/size).
	TotalPages int
	// Offset is the row offset to pass to the query.
	Offset int
	// PageSize is the window size the offset was computed with.
	PageSize int
}

// Paginate resolves a requested page against a collection of totalCount
// rows. The requested page is clamped to [1, TotalPages]; an empty
// collection resolves to {Page: 1, TotalPages: 0, Offset: 0}.
func Paginate(totalCount int64, requestedPage, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	if totalCount <= 0 {
		return Page{Page: 1, TotalPages: 0, Offset: 0, PageSize: pageSize}
	}

	totalPages := int((totalCount-1)/int64(pageSize)) + 1

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Page{
		Page:       page,
		TotalPages: totalPages,
		Offset:     (page - 1) * pageSize,
		PageSize:   pageSize,
	}
}
