package filterql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/filterql/internal/types"
)

// TryF creates a validated field reference, returning an error if invalid.
// Use Schema.F to also check the column exists.
func TryF(name string) (types.Field, error) {
	if !isValidSQLIdentifier(name) {
		return types.Field{}, fmt.Errorf("invalid field: %q is not a valid identifier", name)
	}
	return types.Field{Name: name}, nil
}

// F creates a validated field reference.
func F(name string) types.Field {
	f, err := TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// isValidTableAlias checks if a string is a valid single-letter table alias.
func isValidTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}

// Only allows alphanumeric characters and underscores, must start with letter or underscore.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Character rules already exclude quotes, comments and whitespace;
	// this catches names that only look like identifiers.
	lower := strings.ToLower(s)
	for _, keyword := range []string{"select", "union", "drop", "delete", "insert", "update"} {
		if lower == keyword {
			return false
		}
	}

	return true
}
