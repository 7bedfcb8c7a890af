package render

import (
	"fmt"
	"strings"
)

// Dialect supplies the syntax that differs between SQL backends.
type Dialect interface {
	// Name identifies the dialect in errors.
	Name() string
	// QuoteIdentifier quotes a table or column name.
	QuoteIdentifier(name string) string
	// TruncateDate wraps a rendered expression so it compares at day granularity.
	TruncateDate(expr string) string
	// Capabilities reports the dialect's feature set.
	Capabilities() Capabilities
}

// QuoteDouble quotes an identifier with double quotes, doubling embedded quotes.
func QuoteDouble(name string) string {
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}

// QuoteBacktick quotes an identifier with backticks, doubling embedded backticks.
func QuoteBacktick(name string) string {
	escaped := strings.ReplaceAll(name, "`", "``")
	return "`" + escaped + "`"
}

// QuoteBracket quotes an identifier with square brackets, doubling embedded closing brackets.
func QuoteBracket(name string) string {
	escaped := strings.ReplaceAll(name, "]", "]]")
	return "[" + escaped + "]"
}

// CastDate truncates via CAST(expr AS DATE).
func CastDate(expr string) string {
	return fmt.Sprintf("CAST(%s AS DATE)", expr)
}

// DateFunc truncates via DATE(expr).
func DateFunc(expr string) string {
	return fmt.Sprintf("DATE(%s)", expr)
}
