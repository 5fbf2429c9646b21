// Package datasync exports the dictionary to snapshot files and imports entries back from them.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// Sink receives a whole dictionary.
type Sink interface {
	WriteAll(ctx context.Context, dict *dictionary.Dictionary) error
}

var (
	_ Sink = (*YAMLSink)(nil)
	_ Sink = (*MarkdownSink)(nil)
	_ Sink = (*PDFSink)(nil)
	_ Sink = (*SQLiteSink)(nil)
)

// ExportOptions controls where and how a snapshot is written.
type ExportOptions struct {
	Format           Format
	Output           string
	MarkdownTemplate string
}

// Export writes dict in the requested format.
func Export(ctx context.Context, dict *dictionary.Dictionary, opts ExportOptions) error {
	if opts.Output == "" {
		return errors.New("output path is required")
	}

	var sink Sink
	switch opts.Format {
	case FormatYAML:
		sink = NewYAMLSink(opts.Output)
	case FormatMarkdown:
		sink = NewMarkdownSink(opts.Output, opts.MarkdownTemplate)
	case FormatPDF:
		sink = NewPDFSink(opts.Output, opts.MarkdownTemplate)
	case FormatSQLite:
		sqliteSink, err := OpenSQLiteSink(ctx, opts.Output)
		if err != nil {
			return err
		}
		defer func() { _ = sqliteSink.Close() }()
		sink = sqliteSink
	default:
		return fmt.Errorf("unsupported export format: %q", opts.Format)
	}

	if err := sink.WriteAll(ctx, dict); err != nil {
		return fmt.Errorf("export %s > %w", opts.Format, err)
	}
	slog.Debug("dictionary exported", "format", opts.Format, "output", opts.Output, "entries", dict.Len())
	return nil
}

// ImportResult tracks counts of an import.
type ImportResult struct {
	New     int
	Skipped int
}

// Importer adds entries from a snapshot file to a dictionary.
type Importer struct {
	repository dictionary.Repository
	writer     io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repository dictionary.Repository, writer io.Writer) *Importer {
	return &Importer{
		repository: repository,
		writer:     writer,
	}
}

// Import reads path in the given format and adds every word that dict does not hold yet.
// Existing words are skipped. The dictionary is saved once when anything was added.
func (imp *Importer) Import(dict *dictionary.Dictionary, format Format, path string) (*ImportResult, error) {
	if format != FormatYAML {
		return nil, fmt.Errorf("unsupported import format: %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := readYAML(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	var result ImportResult
	for _, record := range records {
		word := dictionary.NormalizeText(strings.TrimSpace(record.Word))
		if word == "" {
			fmt.Fprintf(imp.writer, "  [SKIP]  record without a word\n")
			result.Skipped++
			continue
		}

		err := dict.Add(word, normalizeEntry(record.Entry))
		if errors.Is(err, dictionary.ErrDuplicateWord) {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q already exists\n", word)
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("dict.Add(%s) > %w", word, err)
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %q\n", word)
		result.New++
	}

	if result.New > 0 {
		if err := imp.repository.Save(dict); err != nil {
			return nil, fmt.Errorf("repository.Save() > %w", err)
		}
	}
	return &result, nil
}

func normalizeEntry(entry dictionary.Entry) dictionary.Entry {
	return dictionary.Entry{
		Meaning:  dictionary.NormalizeText(strings.TrimSpace(entry.Meaning)),
		Examples: cleanList(entry.Examples),
		Synonyms: cleanList(entry.Synonyms),
		Antonyms: cleanList(entry.Antonyms),
		Category: dictionary.NormalizeText(strings.TrimSpace(entry.Category)),
		Tags:     cleanList(entry.Tags),
	}
}

func cleanList(values []string) []string {
	cleaned := []string{}
	for _, value := range values {
		if value = dictionary.NormalizeText(strings.TrimSpace(value)); value != "" {
			cleaned = append(cleaned, value)
		}
	}
	return cleaned
}
