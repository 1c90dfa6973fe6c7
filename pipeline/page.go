package pipeline

// DefaultPageSize matches the dashboard tables.
const DefaultPageSize = 15

// PageInfo is the pagination metadata returned alongside every list response.
type PageInfo struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPageInfo derives pagination metadata for a filtered set of count records.
// The requested page is clamped into [1, totalPages] so a filter change that
// shrinks the result set never strands the caller on an empty page.
func NewPageInfo(count, page, pageSize int) PageInfo {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := TotalPages(count, pageSize)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	return PageInfo{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: count,
		TotalPages: total,
		HasNext:    page < total,
		HasPrev:    page > 1,
	}
}

// TotalPages is ceil(count/pageSize) with a floor of 1, so an empty result
// still reads "page 1 of 1".
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Paginate returns the records visible on a 1-based page. A page beyond the
// end of the list yields an empty slice, never an error: callers clamp via
// PageInfo but the window itself stays defensive.
func Paginate[T any](list []T, page, pageSize int) []T {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(list) {
		return []T{}
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
