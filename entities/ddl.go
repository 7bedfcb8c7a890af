package entities

import (
	"fmt"
	"strings"
)

// columnTypes maps dbml types to each dialect's column type.
var columnTypes = map[string]map[string]string{
	"sqlite": {
		"bigint": "INTEGER", "varchar": "TEXT", "text": "TEXT",
		"double": "REAL", "boolean": "BOOLEAN", "timestamp": "TIMESTAMP",
	},
	"postgres": {
		"bigint": "BIGINT", "varchar": "VARCHAR(255)", "text": "TEXT",
		"double": "DOUBLE PRECISION", "boolean": "BOOLEAN", "timestamp": "TIMESTAMP",
	},
	"mysql": {
		"bigint": "BIGINT", "varchar": "VARCHAR(255)", "text": "TEXT",
		"double": "DOUBLE", "boolean": "BOOLEAN", "timestamp": "DATETIME",
	},
	"mssql": {
		"bigint": "BIGINT", "varchar": "NVARCHAR(255)", "text": "NVARCHAR(MAX)",
		"double": "FLOAT", "boolean": "BIT", "timestamp": "DATETIME2",
	},
	"duckdb": {
		"bigint": "BIGINT", "varchar": "VARCHAR", "text": "VARCHAR",
		"double": "DOUBLE", "boolean": "BOOLEAN", "timestamp": "TIMESTAMP",
	},
}

// DDL returns one CREATE TABLE statement per table for the dialect.
// Every table's id column is its primary key.
func DDL(dialect string) ([]string, error) {
	typeMap, ok := columnTypes[dialect]
	if !ok {
		return nil, fmt.Errorf("no DDL for dialect %q", dialect)
	}

	out := make([]string, 0, len(tables))
	for _, t := range tables {
		defs := make([]string, 0, len(t.columns))
		for _, c := range t.columns {
			def := c.name + " " + typeMap[c.kind]
			switch {
			case c.name == "id":
				def += " PRIMARY KEY"
			case !c.nullable:
				def += " NOT NULL"
			}
			defs = append(defs, def)
		}
		out = append(out, fmt.Sprintf("CREATE TABLE %s (%s)", t.name, strings.Join(defs, ", ")))
	}
	return out, nil
}
