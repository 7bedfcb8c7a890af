package benchmarks

import (
	"context"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

type nopExecutor struct{}

func (nopExecutor) Count(context.Context, string, *filterql.Params) (int64, error) {
	return 0, nil
}

func (nopExecutor) Query(context.Context, string, *filterql.Params, func(repository.Row) error) error {
	return nil
}
