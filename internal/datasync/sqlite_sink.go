package datasync

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordbook/internal/database"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// Kinds of rows in entry_values.
const (
	valueKindExample = "example"
	valueKindSynonym = "synonym"
	valueKindAntonym = "antonym"
	valueKindTag     = "tag"
)

// SQLiteSink replaces the contents of a SQLite snapshot with the dictionary.
type SQLiteSink struct {
	db *sqlx.DB
}

// NewSQLiteSink creates a new SQLiteSink on a database whose schema is already applied.
func NewSQLiteSink(db *sqlx.DB) *SQLiteSink {
	return &SQLiteSink{db: db}
}

// OpenSQLiteSink opens the snapshot at path and creates its tables when needed.
func OpenSQLiteSink(ctx context.Context, path string) (*SQLiteSink, error) {
	if err := createParentDir(path); err != nil {
		return nil, err
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.ApplySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.ApplySchema() > %w", err)
	}
	return NewSQLiteSink(db), nil
}

// Close closes the underlying database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

// WriteAll deletes every stored row and inserts the dictionary in one transaction.
func (s *SQLiteSink) WriteAll(ctx context.Context, dict *dictionary.Dictionary) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM entry_values"); err != nil {
			return fmt.Errorf("delete entry values: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
			return fmt.Errorf("delete entries: %w", err)
		}

		position := 0
		for word, entry := range dict.All() {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO entries (position, word, meaning, category) VALUES (?, ?, ?, ?)",
				position, word, entry.Meaning, entry.Category,
			); err != nil {
				return fmt.Errorf("insert entry %q: %w", word, err)
			}
			position++

			for _, values := range []struct {
				kind   string
				values []string
			}{
				{kind: valueKindExample, values: entry.Examples},
				{kind: valueKindSynonym, values: entry.Synonyms},
				{kind: valueKindAntonym, values: entry.Antonyms},
				{kind: valueKindTag, values: entry.Tags},
			} {
				for i, value := range values.values {
					if _, err := tx.ExecContext(ctx,
						"INSERT INTO entry_values (word, kind, position, value) VALUES (?, ?, ?, ?)",
						word, values.kind, i, value,
					); err != nil {
						return fmt.Errorf("insert %s of %q: %w", values.kind, word, err)
					}
				}
			}
		}
		return nil
	})
}
