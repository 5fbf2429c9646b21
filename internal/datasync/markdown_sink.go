package datasync

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/at-ishikawa/wordbook/internal/assets"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/pdf"
)

// DocumentTitle is the heading of rendered snapshots.
const DocumentTitle = "Personal Dictionary"

// MarkdownSink renders the dictionary into a Markdown file.
type MarkdownSink struct {
	path         string
	templatePath string
}

// NewMarkdownSink creates a new MarkdownSink. An empty templatePath uses the embedded template.
func NewMarkdownSink(path, templatePath string) *MarkdownSink {
	return &MarkdownSink{path: path, templatePath: templatePath}
}

// WriteAll renders every entry.
func (s *MarkdownSink) WriteAll(_ context.Context, dict *dictionary.Dictionary) error {
	var buf bytes.Buffer
	if err := renderMarkdown(&buf, s.templatePath, dict); err != nil {
		return err
	}

	if err := createParentDir(s.path); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}

// PDFSink renders the Markdown snapshot into a PDF file.
type PDFSink struct {
	path         string
	templatePath string
}

// NewPDFSink creates a new PDFSink.
func NewPDFSink(path, templatePath string) *PDFSink {
	return &PDFSink{path: path, templatePath: templatePath}
}

// WriteAll renders every entry.
func (s *PDFSink) WriteAll(_ context.Context, dict *dictionary.Dictionary) error {
	var buf bytes.Buffer
	if err := renderMarkdown(&buf, s.templatePath, dict); err != nil {
		return err
	}

	pdfPath, err := pdf.WriteMarkdownAsPDF(buf.Bytes(), s.path)
	if err != nil {
		return fmt.Errorf("pdf.WriteMarkdownAsPDF() > %w", err)
	}
	slog.Debug("pdf written", "path", pdfPath)
	return nil
}

func renderMarkdown(buf *bytes.Buffer, templatePath string, dict *dictionary.Dictionary) error {
	data := assets.NewDictionaryTemplate(DocumentTitle, dict)
	if err := assets.WriteDictionary(buf, templatePath, data); err != nil {
		return fmt.Errorf("assets.WriteDictionary() > %w", err)
	}
	return nil
}
