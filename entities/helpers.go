package entities

import "github.com/zoobzio/filterql"

func fields(s *filterql.Schema, t filterql.Table, columns ...string) []filterql.Field {
	out := make([]filterql.Field, len(columns))
	for i, c := range columns {
		out[i] = s.F(t, c)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
