package repository

import (
	"fmt"

	"github.com/zoobzio/filterql"
)

// Request is one search: scope, filters and the requested window.
type Request struct {
	TenantID       int64
	SelectedIDs    []int64
	Logic          string
	Filters        []filterql.FilterCondition
	IncludeDeleted bool
	// Start and End bound the requested window. End-Start is the page size
	// and Start/size the zero-based page index.
	Start int
	End   int
}

// PageRequest is a zero-based page index and a page size.
type PageRequest struct {
	Index int
	Size  int
}

// Offset returns the number of rows skipped.
func (p PageRequest) Offset() int {
	return p.Index * p.Size
}

// Page is one page of results and the total number of matches.
type Page[T any] struct {
	Items      []T   `json:"content"`
	TotalCount int64 `json:"totalCount"`
	Index      int   `json:"pageIndex"`
	Size       int   `json:"pageSize"`
}

// PageRequest converts the window. maxSize of 0 means no limit.
func (r Request) PageRequest(maxSize int) (PageRequest, error) {
	if r.Start < 0 {
		return PageRequest{}, fmt.Errorf("%w: start %d is negative", filterql.ErrInvalidPagination, r.Start)
	}
	if r.End <= r.Start {
		return PageRequest{}, fmt.Errorf("%w: end %d must be greater than start %d", filterql.ErrInvalidPagination, r.End, r.Start)
	}
	size := r.End - r.Start
	if maxSize > 0 && size > maxSize {
		return PageRequest{}, fmt.Errorf("%w: page size %d exceeds %d", filterql.ErrInvalidPagination, size, maxSize)
	}
	return PageRequest{Index: r.Start / size, Size: size}, nil
}
