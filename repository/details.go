package repository

import (
	"context"
	"fmt"

	"github.com/zoobzio/filterql"
)

// Source is what a detail loader needs to query.
type Source struct {
	Renderer filterql.Renderer
	Executor Executor
}

// Loader fills child collections into a page of parents.
type Loader[T any] interface {
	Load(ctx context.Context, src Source, tenantID int64, parents []T) error
}

// HasMany loads the C children of T parents with one query per page.
type HasMany[T any, C any] struct {
	// Name identifies the relation in errors.
	Name string
	// Table is the aliased child table.
	Table filterql.Table
	// ForeignKey references the parent's id.
	ForeignKey filterql.Field
	// PrimaryKey orders children within a parent.
	PrimaryKey filterql.Field
	// Tenant, when set, scopes the children to the request's tenant.
	Tenant *filterql.Field
	// SoftDelete, when set, hides deleted children.
	SoftDelete *filterql.Field
	// Select lists the child columns in scan order.
	Select []filterql.Field
	// Scan reads one child and the parent id it belongs to.
	Scan func(Row) (C, int64, error)
	// ParentID returns a parent's id.
	ParentID func(T) int64
	// Attach stores the children on their parent. Parents without
	// children receive an empty slice.
	Attach func(parent *T, children []C)
}

// Load implements Loader.
func (h HasMany[T, C]) Load(ctx context.Context, src Source, tenantID int64, parents []T) error {
	if len(parents) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(parents))
	seen := make(map[int64]bool, len(parents))
	for _, p := range parents {
		id := h.ParentID(p)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	params := filterql.NewParams()
	terms := []filterql.ConditionItem{filterql.C(h.ForeignKey, filterql.IN, filterql.P(ParamParentIDs))}
	params.Set(ParamParentIDs, ids)
	if h.Tenant != nil {
		terms = append(terms, filterql.C(*h.Tenant, filterql.EQ, filterql.P(ParamTenantID)))
		params.Set(ParamTenantID, tenantID)
	}
	if h.SoftDelete != nil {
		terms = append(terms, filterql.C(*h.SoftDelete, filterql.EQ, filterql.P(ParamIsDeleted)))
		params.Set(ParamIsDeleted, false)
	}

	query, err := filterql.Select(h.Table).
		Fields(h.Select...).
		Where(filterql.Predicate(filterql.AND, terms...)).
		OrderBy(h.PrimaryKey, filterql.ASC).
		Render(src.Renderer)
	if err != nil {
		return fmt.Errorf("render %s: %w", h.Name, err)
	}

	groups := make(map[int64][]C, len(ids))
	err = src.Executor.Query(ctx, query.SQL, params, func(row Row) error {
		child, parentID, err := h.Scan(row)
		if err != nil {
			return err
		}
		groups[parentID] = append(groups[parentID], child)
		return nil
	})
	if err != nil {
		return fmt.Errorf("load %s: %w", h.Name, err)
	}

	for i := range parents {
		children := groups[h.ParentID(parents[i])]
		if children == nil {
			children = []C{}
		}
		h.Attach(&parents[i], children)
	}
	return nil
}

// FindPaginatedWithDetails runs FindPaginated, then each loader against the
// page. Loaders are skipped when the page is empty.
func (r *Repository[T]) FindPaginatedWithDetails(ctx context.Context, req Request, loaders ...Loader[T]) (*Page[T], error) {
	page, err := r.FindPaginated(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return page, nil
	}

	src := Source{Renderer: r.renderer, Executor: r.exec}
	for _, l := range loaders {
		if err := l.Load(ctx, src, req.TenantID, page.Items); err != nil {
			r.logger.Error("detail load failed", "error", err)
			return nil, err
		}
	}
	return page, nil
}
