package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// MigrateLegacyExamples rewrites a dictionary file whose entries still use a single
// "example" string into the "examples" list format. Canonical files are left untouched.
func MigrateLegacyExamples(repository *dictionary.JSONFileRepository, console *Console) error {
	data, err := repository.ReadRaw()
	if errors.Is(err, fs.ErrNotExist) {
		console.Printf("Nothing to migrate: %s does not exist\n", repository.Path())
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", repository.Path(), err)
	}

	dict, converted, err := dictionary.MigrateLegacyDocument(data)
	if err != nil {
		return &dictionary.MalformedStoreError{Path: repository.Path(), Err: err}
	}
	if converted == 0 {
		console.Println("No legacy entries found.")
		return nil
	}

	if err := repository.Save(dict); err != nil {
		return fmt.Errorf("failed to write %s: %w", repository.Path(), err)
	}
	console.Success("Migrated %d entries in %s", converted, repository.Path())
	return nil
}
