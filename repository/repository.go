// Package repository runs paginated filter searches for one entity: it
// validates a Request, builds a row query and a count query that share
// their source and predicates, and executes both.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/zoobzio/filterql"
)

// Scope parameter names.
const (
	ParamTenantID    = "tenantId"
	ParamSelectedIDs = "selectedIds"
	ParamIsDeleted   = "isDeleted"
	ParamParentIDs   = "parentIds"
)

// ErrInvalidConfig is returned by New for unusable entities.
var ErrInvalidConfig = errors.New("invalid repository config")

// Repository searches one entity.
type Repository[T any] struct {
	entity      Entity
	compiler    *filterql.Compiler
	renderer    filterql.Renderer
	exec        Executor
	scan        func(Row) (T, error)
	logger      *slog.Logger
	maxPageSize int
}

// New creates a repository. scan reads one row in Entity.Select order
// followed by the fetch joins' Select fields.
func New[T any](entity Entity, renderer filterql.Renderer, exec Executor, scan func(Row) (T, error), cfg Config) (*Repository[T], error) {
	if err := entity.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if renderer == nil || exec == nil || scan == nil {
		return nil, fmt.Errorf("%w: renderer, executor and scanner are required", ErrInvalidConfig)
	}
	if cfg.MaxPageSize < 0 {
		return nil, fmt.Errorf("%w: max page size %d is negative", ErrInvalidConfig, cfg.MaxPageSize)
	}
	return &Repository[T]{
		entity:      entity,
		compiler:    filterql.NewCompiler(entity.Columns, renderer),
		renderer:    renderer,
		exec:        exec,
		scan:        scan,
		logger:      cfg.logger().With("entity", entity.Name),
		maxPageSize: cfg.MaxPageSize,
	}, nil
}

// Entity returns the entity configuration.
func (r *Repository[T]) Entity() Entity {
	return r.entity
}

// Statement is rendered SQL with the parameters it references.
type Statement struct {
	SQL    string
	Params *filterql.Params
}

// Plan is the pair of statements for one Request.
type Plan struct {
	Rows  Statement
	Count Statement
	Page  PageRequest
}

// Build validates the request and renders its row and count statements.
func (r *Repository[T]) Build(req Request) (*Plan, error) {
	page, err := r.Validate(req)
	if err != nil {
		return nil, err
	}

	compiled, err := r.compiler.Compile(req.Filters, req.Logic)
	if err != nil {
		return nil, err
	}
	degraded := compiled.Degraded()
	for _, i := range degraded {
		f := req.Filters[i]
		r.logger.Warn("filter ignored", "column", f.Column, "operator", f.Operator, "value", f.Value)
	}
	logic, err := filterql.ParseLogicOperator(req.Logic)
	if err != nil {
		return nil, err
	}

	where, params := r.where(req, compiled)
	rowJoins, countJoins := r.plannedJoins(req.Filters, degraded, logic)

	rows := filterql.Select(r.entity.Table).Fields(r.selected()...)
	for _, j := range rowJoins {
		rows.JoinAs(j.Type, j.Table, j.On)
	}
	rows.Where(where).
		OrderBy(r.entity.PrimaryKey, filterql.DESC).
		Limit(page.Size).
		Offset(page.Offset())
	if anyToMany(rowJoins) {
		rows.Distinct()
	}

	count := filterql.Count(r.entity.Table)
	for _, j := range countJoins {
		count.JoinAs(j.Type, j.Table, j.On)
	}
	count.Where(where)
	if anyToMany(countJoins) {
		count.CountDistinct(r.entity.PrimaryKey)
	}

	rowSQL, err := rows.Render(r.renderer)
	if err != nil {
		return nil, fmt.Errorf("render %s rows: %w", r.entity.Name, err)
	}
	countSQL, err := count.Render(r.renderer)
	if err != nil {
		return nil, fmt.Errorf("render %s count: %w", r.entity.Name, err)
	}

	return &Plan{
		Rows:  Statement{SQL: rowSQL.SQL, Params: params.Subset(rowSQL.RequiredParams)},
		Count: Statement{SQL: countSQL.SQL, Params: params.Subset(countSQL.RequiredParams)},
		Page:  page,
	}, nil
}

// where combines the compiled filters with the scope predicates.
func (r *Repository[T]) where(req Request, compiled *filterql.QueryResult) (filterql.ConditionItem, *filterql.Params) {
	params := compiled.Params()
	var terms []filterql.ConditionItem

	if compiled.HasConditions() {
		terms = append(terms, compiled.Condition())
	}

	terms = append(terms, filterql.C(r.entity.Tenant, filterql.EQ, filterql.P(ParamTenantID)))
	params.Set(ParamTenantID, req.TenantID)

	if len(req.SelectedIDs) > 0 {
		terms = append(terms, filterql.C(r.entity.PrimaryKey, filterql.IN, filterql.P(ParamSelectedIDs)))
		ids := make([]int64, len(req.SelectedIDs))
		copy(ids, req.SelectedIDs)
		params.Set(ParamSelectedIDs, ids)
	}

	if r.entity.SoftDelete != nil && !req.IncludeDeleted {
		terms = append(terms, filterql.C(*r.entity.SoftDelete, filterql.EQ, filterql.P(ParamIsDeleted)))
		params.Set(ParamIsDeleted, false)
	}

	return filterql.Predicate(filterql.AND, terms...), params
}

// plannedJoins decides which joins each statement needs. Fetch joins are
// always in the row query and only in the count query when a filter
// references their alias. Conditional joins follow their triggers and are
// INNER only under AND when every triggering filter rejects rows without a
// joined match; otherwise they are LEFT so the predicate alone decides.
func (r *Repository[T]) plannedJoins(filters []filterql.FilterCondition, degraded []int, logic filterql.LogicOperator) (rows, count []Join) {
	unusable := make(map[int]bool, len(degraded))
	for _, i := range degraded {
		unusable[i] = true
	}

	aliases := make(map[string]bool)
	used := make(map[string][]int)
	for i, f := range filters {
		if field, ok := r.entity.Columns.Field(f.Column); ok {
			aliases[field.Table] = true
		}
		used[f.Column] = append(used[f.Column], i)
	}

	for _, j := range r.entity.Fetch {
		j.Type = j.joinType(filterql.LeftJoin)
		rows = append(rows, j)
		if aliases[j.Table.Ref()] {
			count = append(count, j)
		}
	}

	for _, cj := range r.entity.Conditional {
		var triggered []int
		for _, col := range cj.Triggers {
			triggered = append(triggered, used[col]...)
		}
		if len(triggered) == 0 {
			continue
		}

		j := cj.Join
		j.Type = j.joinType(filterql.InnerJoin)
		if logic == filterql.OR {
			j.Type = filterql.LeftJoin
		}
		for _, i := range triggered {
			if !r.requiresMatch(cj, filters[i], unusable[i]) {
				j.Type = filterql.LeftJoin
				break
			}
		}
		rows = append(rows, j)
		count = append(count, j)
	}
	return rows, count
}

// requiresMatch reports whether f can only hold when the joined row exists.
func (r *Repository[T]) requiresMatch(cj ConditionalJoin, f filterql.FilterCondition, degraded bool) bool {
	if degraded || f.Operator == filterql.OpIsEmpty {
		return false
	}
	if cj.Numeric && r.entity.Columns.Classify(f.Column) == filterql.NumberColumn {
		return isInteger(f.Value)
	}
	return true
}

func anyToMany(joins []Join) bool {
	for _, j := range joins {
		if j.ToMany {
			return true
		}
	}
	return false
}

func isInteger(v any) bool {
	switch x := v.(type) {
	case int, int32, int64:
		return true
	case float64:
		return x == float64(int64(x))
	case string:
		_, err := strconv.ParseInt(x, 10, 64)
		return err == nil
	default:
		return false
	}
}

func (r *Repository[T]) selected() []filterql.Field {
	out := make([]filterql.Field, 0, len(r.entity.Select))
	out = append(out, r.entity.Select...)
	for _, j := range r.entity.Fetch {
		out = append(out, j.Select...)
	}
	return out
}

// FindPaginated runs the count query then the row query.
func (r *Repository[T]) FindPaginated(ctx context.Context, req Request) (*Page[T], error) {
	plan, err := r.Build(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	total, err := r.exec.Count(ctx, plan.Count.SQL, plan.Count.Params)
	if err != nil {
		r.logger.Error("count failed", "sql", plan.Count.SQL, "error", err)
		return nil, fmt.Errorf("count %s: %w", r.entity.Name, err)
	}
	r.logger.Debug("count", "sql", plan.Count.SQL, "params", plan.Count.Params.Len(), "elapsed", time.Since(start))

	start = time.Now()
	items := make([]T, 0, plan.Page.Size)
	err = r.exec.Query(ctx, plan.Rows.SQL, plan.Rows.Params, func(row Row) error {
		item, err := r.scan(row)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		r.logger.Error("query failed", "sql", plan.Rows.SQL, "error", err)
		return nil, fmt.Errorf("query %s: %w", r.entity.Name, err)
	}
	r.logger.Debug("rows", "sql", plan.Rows.SQL, "params", plan.Rows.Params.Len(), "rows", len(items), "elapsed", time.Since(start))

	return &Page[T]{
		Items:      items,
		TotalCount: total,
		Index:      plan.Page.Index,
		Size:       plan.Page.Size,
	}, nil
}
