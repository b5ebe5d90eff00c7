package query

import (
	"fmt"

	"github.com/goto/backoffice/pkg/apierror"
)

// Pagination is the metadata returned alongside every page.
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Page is the paginated envelope shared by the in-memory and remote paths.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination computes page metadata for total items. page is clamped up to 1.
func NewPagination(total, page, limit int) (Pagination, error) {
	if limit < 1 {
		return Pagination{}, apierror.Invalid(fmt.Sprintf("limit must be at least 1, got %d", limit), nil)
	}
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

// Offset is the index of the page's first item. Pages past the last one
// start at Total so the product of page and limit is never formed.
func (p Pagination) Offset() int {
	if p.Page > p.TotalPages {
		return p.Total
	}
	return (p.Page - 1) * p.Limit
}

// Paginate slices one page out of items. An out of range page yields empty data.
// items is never modified and the returned data does not alias it.
func Paginate[T any](items []T, page, limit int) (Page[T], error) {
	pg, err := NewPagination(len(items), page, limit)
	if err != nil {
		return Page[T]{}, err
	}

	start := pg.Offset()
	end := len(items)
	if end-start > limit {
		end = start + limit
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{Data: data, Pagination: pg}, nil
}
