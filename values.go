package filterql

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// valueString renders a filter value as text. Nil reports false.
func valueString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		// JSON numbers arrive as float64; integral ones print without a point.
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return fmt.Sprint(x), true
	}
}

// splitTokens splits on ';' and ',', trims and drops blanks.
func splitTokens(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// cleanList lower-cases tokens and removes repeats, keeping first occurrence.
func cleanList(s string) []any {
	seen := make(map[string]bool)
	var out []any
	for _, tok := range splitTokens(s) {
		tok = strings.ToLower(tok)
		if seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// parseNumber parses an int64 when s has no decimal point, else a float64.
func parseNumber(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, false
	}
	return n, true
}

// numberList parses every token, skipping the ones that are not numbers.
func numberList(s string) []any {
	var out []any
	for _, tok := range splitTokens(s) {
		if n, ok := parseNumber(tok); ok {
			out = append(out, n)
		}
	}
	return out
}

// parseDay reads the calendar date in s, ignoring any time part after 'T'
// or a space. The result is midnight UTC.
func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// parseBool accepts a bool or the case-insensitive strings "true" and "false".
func parseBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}
