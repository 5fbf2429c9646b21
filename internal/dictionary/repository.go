package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary

// Repository loads and saves the whole dictionary.
type Repository interface {
	Load() (*Dictionary, error)
	Save(dict *Dictionary) error
}

// JSONFileRepository stores the dictionary as one JSON document.
type JSONFileRepository struct {
	path string
}

var _ Repository = (*JSONFileRepository)(nil)

// NewJSONFileRepository creates a JSONFileRepository for path.
func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

// Path returns the location of the document.
func (r *JSONFileRepository) Path() string {
	return r.path
}

// Load reads the whole document. A missing file is an empty dictionary.
func (r *JSONFileRepository) Load() (*Dictionary, error) {
	data, err := r.read()
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("dictionary file does not exist yet", "path", r.path)
		return NewDictionary(), nil
	}
	if err != nil {
		return nil, err
	}

	dict, _, err := decodeDocument(data, false)
	if err != nil {
		return nil, &MalformedStoreError{Path: r.path, Err: err}
	}
	slog.Debug("loaded dictionary", "path", r.path, "entries", dict.Len())
	return dict, nil
}

// ReadRaw returns the document bytes without parsing them.
func (r *JSONFileRepository) ReadRaw() ([]byte, error) {
	return r.read()
}

// Save overwrites the document with the whole dictionary.
func (r *JSONFileRepository) Save(dict *Dictionary) (err error) {
	data, err := encodeDocument(dict)
	if err != nil {
		return fmt.Errorf("encodeDocument > %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	file, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", r.path, err)
	}
	defer func() {
		// Some filesystems only report a failed write on close.
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("file.Close > %w", closeErr)
		}
	}()
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	slog.Debug("saved dictionary", "path", r.path, "entries", dict.Len())
	return nil
}

func (r *JSONFileRepository) read() ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", r.path, err)
	}
	return data, nil
}
