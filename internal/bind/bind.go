// Package bind converts named-parameter SQL into the positional form a
// driver executes, expanding list parameters into one placeholder per element.
package bind

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/zoobzio/filterql/internal/render"
	"github.com/zoobzio/filterql/internal/types"
)

// Named rewrites every :name placeholder in sql to the positional style and
// returns the arguments in placeholder order. Text inside quotes is left alone.
func Named(sql string, params *types.Params, caps render.Capabilities) (string, []any, error) {
	var out strings.Builder
	out.Grow(len(sql))
	args := make([]any, 0, params.Len())

	var quote byte
	for i := 0; i < len(sql); i++ {
		ch := sql[i]

		if quote != 0 {
			out.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
			continue
		}

		switch ch {
		case '\'', '"', '`':
			quote = ch
			out.WriteByte(ch)
			continue
		case '[':
			quote = ']'
			out.WriteByte(ch)
			continue
		case ':':
		default:
			out.WriteByte(ch)
			continue
		}

		// PostgreSQL casts (::type) are not parameters.
		if i+1 < len(sql) && sql[i+1] == ':' {
			out.WriteString("::")
			i++
			continue
		}
		if i+1 >= len(sql) || !isIdentStart(sql[i+1]) {
			out.WriteByte(ch)
			continue
		}

		end := i + 1
		for end < len(sql) && isIdentPart(sql[end]) {
			end++
		}
		name := sql[i+1 : end]
		i = end - 1

		value, ok := params.Get(name)
		if !ok {
			return "", nil, fmt.Errorf("missing parameter %q", name)
		}

		values, isList := expand(value)
		if !isList {
			values = []any{value}
		} else if len(values) == 0 {
			return "", nil, fmt.Errorf("parameter %q is an empty list", name)
		}

		for j, v := range values {
			if j > 0 {
				out.WriteString(", ")
			}
			args = append(args, v)
			out.WriteString(placeholder(caps.Placeholder, len(args)))
		}
	}

	if caps.MaxParams > 0 && len(args) > caps.MaxParams {
		return "", nil, fmt.Errorf("statement binds %d parameters, limit is %d", len(args), caps.MaxParams)
	}

	return out.String(), args, nil
}

func placeholder(style render.PlaceholderStyle, n int) string {
	switch style {
	case render.PlaceholderDollar:
		return "$" + strconv.Itoa(n)
	case render.PlaceholderAtP:
		return "@p" + strconv.Itoa(n)
	default:
		return "?"
	}
}

// expand flattens slice values. Byte slices are scalar.
func expand(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil, []byte, string:
		return nil, false
	case []any:
		return v, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
