package datasync

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// yamlRecord is one word of a YAML snapshot. The sequence keeps insertion order.
type yamlRecord struct {
	Word             string `yaml:"word"`
	dictionary.Entry `yaml:",inline"`
}

// YAMLSink writes the dictionary to a YAML file.
type YAMLSink struct {
	path string
}

// NewYAMLSink creates a new YAMLSink.
func NewYAMLSink(path string) *YAMLSink {
	return &YAMLSink{path: path}
}

// WriteAll writes every entry as a sequence of records.
func (s *YAMLSink) WriteAll(_ context.Context, dict *dictionary.Dictionary) error {
	records := make([]yamlRecord, 0, dict.Len())
	for word, entry := range dict.All() {
		records = append(records, yamlRecord{Word: word, Entry: entry})
	}

	if err := createParentDir(s.path); err != nil {
		return err
	}
	if err := writeYAML(s.path, records); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

func readYAML(r io.Reader) ([]yamlRecord, error) {
	var records []yamlRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
		return nil, err
	}
	return records, nil
}

func createParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
