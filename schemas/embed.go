// Package schemas provides the embedded SQL schema of dictionary snapshots.
package schemas

import (
	_ "embed"
	"strings"
)

// Snapshot is the DDL of a SQLite dictionary snapshot.
//
//go:embed snapshot.sql
var Snapshot string

// Statements splits Snapshot into individual statements.
func Statements() []string {
	var statements []string
	for _, statement := range strings.Split(Snapshot, ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}
	return statements
}
