package datasync

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Format names a snapshot file format.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
	FormatSQLite   Format = "sqlite"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatYAML, FormatMarkdown, FormatPDF, FormatSQLite}
)

// Set implements pflag.Value.
func (f *Format) Set(v string) error {
	for _, format := range allFormats {
		if v == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format %q, valid values are %v", v, allFormats)
}

// String implements pflag.Value.
func (f *Format) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "Format"
}

// AllFormats returns every supported format.
func AllFormats() []Format {
	return append([]Format(nil), allFormats...)
}
