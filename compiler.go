package filterql

import (
	"fmt"
	"strconv"

	"github.com/zoobzio/filterql/internal/types"
)

// Compiler turns filter lists into parameterized predicates. It keeps no
// state between calls and is safe for concurrent use.
type Compiler struct {
	classifier Classifier
	renderer   Renderer
}

// NewCompiler creates a compiler for one entity's columns and a dialect.
func NewCompiler(classifier Classifier, renderer Renderer) *Compiler {
	return &Compiler{classifier: classifier, renderer: renderer}
}

// Classifier returns the column classifier.
func (c *Compiler) Classifier() Classifier {
	return c.classifier
}

// Compile builds one term per filter, in order, and joins them with logic.
//
// Filter i binds parameter param{i}; operators that expand into several
// sub-clauses bind param{i}_{j}. A filter that cannot be used (unknown
// column or operator, missing or malformed value) compiles to 1=1 and binds
// nothing. Only an invalid logic operator is an error.
func (c *Compiler) Compile(filters []FilterCondition, logic string) (*QueryResult, error) {
	if len(filters) == 0 {
		return emptyResult(), nil
	}

	op, err := ParseLogicOperator(logic)
	if err != nil {
		return nil, err
	}

	params := types.NewParams()
	terms := make([]types.ConditionItem, 0, len(filters))
	var degraded []int

	for i, f := range filters {
		item, ok := c.term(i, f, params)
		if !ok {
			item = types.Tautology{}
			degraded = append(degraded, i)
		}
		terms = append(terms, item)
	}

	condition := types.Predicate{Logic: op, Terms: terms}
	rendered, err := c.renderer.RenderCondition(condition)
	if err != nil {
		return nil, fmt.Errorf("render filters: %w", err)
	}

	return &QueryResult{
		predicate: rendered.SQL,
		params:    params,
		condition: condition,
		degraded:  degraded,
	}, nil
}

func (c *Compiler) term(i int, f FilterCondition, params *types.Params) (types.ConditionItem, bool) {
	field, ok := c.classifier.Field(f.Column)
	if !ok {
		return nil, false
	}

	b := binder{field: field, index: i, params: params}
	switch c.classifier.Classify(f.Column) {
	case NumberColumn:
		return numberTerm(b, f.Operator, f.Value)
	case DateColumn:
		return dateTerm(b, f.Operator, f.Value)
	case BooleanColumn:
		return booleanTerm(b, f.Operator, f.Value)
	default:
		return stringTerm(b, f.Operator, f.Value)
	}
}

// binder names and binds the parameters of one filter.
type binder struct {
	field  types.Field
	index  int
	params *types.Params
}

func (b binder) bind(value any) types.Param {
	p := types.Param{Name: "param" + strconv.Itoa(b.index)}
	b.params.Set(p.Name, value)
	return p
}

func (b binder) bindSub(j int, value any) types.Param {
	p := types.Param{Name: "param" + strconv.Itoa(b.index) + "_" + strconv.Itoa(j)}
	b.params.Set(p.Name, value)
	return p
}
