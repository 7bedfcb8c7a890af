package repository

import (
	"fmt"

	"github.com/zoobzio/filterql"
)

// Validate checks the logic operator, the window, then every filter's
// column and operator. Nothing is executed.
func (r *Repository[T]) Validate(req Request) (PageRequest, error) {
	if _, err := filterql.ParseLogicOperator(req.Logic); err != nil {
		return PageRequest{}, err
	}

	page, err := req.PageRequest(r.maxPageSize)
	if err != nil {
		return PageRequest{}, err
	}

	for _, f := range req.Filters {
		if _, ok := r.entity.Columns.Field(f.Column); !ok {
			return PageRequest{}, fmt.Errorf("%w: %q", filterql.ErrInvalidColumn, f.Column)
		}
		kind := r.entity.Columns.Classify(f.Column)
		if !filterql.Supports(kind, f.Operator) {
			return PageRequest{}, fmt.Errorf("%w: %q is not valid for %s column %q",
				filterql.ErrInvalidOperator, f.Operator, kind, f.Column)
		}
	}
	return page, nil
}
