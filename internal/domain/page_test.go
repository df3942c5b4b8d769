package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name       string
		total      int32
		page       int32
		limit      int32
		totalPages int32
		next       *int32
		previous   *int32
	}{
		{name: "first of several", total: 25, page: 1, limit: 10, totalPages: 3, next: int32p(2), previous: nil},
		{name: "middle page", total: 25, page: 2, limit: 10, totalPages: 3, next: int32p(3), previous: int32p(1)},
		{name: "last page", total: 25, page: 3, limit: 10, totalPages: 3, next: nil, previous: int32p(2)},
		{name: "single page", total: 5, page: 1, limit: 10, totalPages: 1, next: nil, previous: nil},
		{name: "empty", total: 0, page: 1, limit: 10, totalPages: 0, next: nil, previous: nil},
		{name: "exact multiple", total: 20, page: 2, limit: 10, totalPages: 2, next: nil, previous: int32p(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.total, tt.page, tt.limit)
			require.Equal(t, tt.total, info.TotalItems)
			require.Equal(t, tt.totalPages, info.TotalPages)
			require.Equal(t, tt.page, info.CurrentPage)
			require.Equal(t, tt.limit, info.PerPage)
			require.Equal(t, tt.next, info.NextPage)
			require.Equal(t, tt.previous, info.PreviousPage)
		})
	}
}

func TestNewPageInfo_ClampsLimit(t *testing.T) {
	info := NewPageInfo(3, 1, 0)
	require.Equal(t, int32(1), info.PerPage)
	require.Equal(t, int32(3), info.TotalPages)
}

func int32p(v int32) *int32 { return &v }
