package filterql

import "github.com/zoobzio/filterql/internal/types"

// QueryResult is a compiled filter list: the predicate text, its bound
// parameters and the condition tree it was rendered from.
type QueryResult struct {
	predicate string
	params    *types.Params
	condition types.ConditionItem
	degraded  []int
}

func emptyResult() *QueryResult {
	return &QueryResult{params: types.NewParams()}
}

// Predicate returns the rendered predicate with :name placeholders.
func (r *QueryResult) Predicate() string {
	return r.predicate
}

// Params returns a copy of the bound parameters in first-bind order.
func (r *QueryResult) Params() *Params {
	return r.params.Clone()
}

// Condition returns the condition tree, or nil when there are no conditions.
func (r *QueryResult) Condition() ConditionItem {
	return r.condition
}

// HasConditions reports whether the predicate is non-empty.
func (r *QueryResult) HasConditions() bool {
	return r.predicate != ""
}

// Degraded returns the indexes of filters that compiled to 1=1.
func (r *QueryResult) Degraded() []int {
	out := make([]int, len(r.degraded))
	copy(out, r.degraded)
	return out
}
