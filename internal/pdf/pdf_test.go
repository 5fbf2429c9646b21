package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkdownAsPDF(t *testing.T) {
	tests := []struct {
		name       string
		pdfPath    func(t *testing.T) string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name: "invalid extension",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "wordbook.md")
			},
			wantErr:    true,
			wantErrMsg: "output file must have .pdf extension",
		},
		{
			name: "successful conversion",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "wordbook.pdf")
			},
		},
		{
			name: "missing parent directory is created",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "exports", "wordbook.pdf")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markdown := []byte("# Vocabulary\n\n## run\n\n**Meaning:** to move fast\n")

			got, err := WriteMarkdownAsPDF(markdown, tt.pdfPath(t))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(got))
			info, err := os.Stat(got)
			require.NoError(t, err, "PDF file should be created")
			assert.Positive(t, info.Size())
		})
	}
}
