package dictionary

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("word not found")
	ErrDuplicateWord = errors.New("word already exists")
	ErrDeclined      = errors.New("confirmation declined")
	// ErrLegacyFormat marks a document that still uses the single "example" string.
	ErrLegacyFormat = errors.New("legacy single-example format")
)

// MalformedStoreError is returned when the persisted document cannot be parsed.
type MalformedStoreError struct {
	Path string
	Err  error
}

func (e *MalformedStoreError) Error() string {
	if errors.Is(e.Err, ErrLegacyFormat) {
		return fmt.Sprintf("dictionary file %s cannot be loaded: %v. Run `wordbook migrate legacy-examples` to convert it", e.Path, e.Err)
	}
	return fmt.Sprintf("dictionary file %s is malformed: %v", e.Path, e.Err)
}

func (e *MalformedStoreError) Unwrap() error {
	return e.Err
}
