package domain

// PageInfo describes one page of a paginated listing.
type PageInfo struct {
	TotalItems   int32
	TotalPages   int32
	CurrentPage  int32
	PerPage      int32
	NextPage     *int32
	PreviousPage *int32
}

// NewPageInfo computes page boundaries for a total item count. NextPage and
// PreviousPage are nil at the respective edges.
func NewPageInfo(total, page, limit int32) PageInfo {
	if limit < 1 {
		limit = 1
	}
	totalPages := (total + limit - 1) / limit
	info := PageInfo{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PerPage:     limit,
	}
	if page < totalPages {
		next := page + 1
		info.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		info.PreviousPage = &prev
	}
	return info
}
