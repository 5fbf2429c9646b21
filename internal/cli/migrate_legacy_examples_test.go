package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLegacyExamples(t *testing.T) {
	tests := []struct {
		name         string
		content      *string
		wantOutput   string
		wantErr      bool
		wantExamples map[string][]string
	}{
		{
			name:       "missing file",
			wantOutput: "Nothing to migrate",
		},
		{
			name: "legacy entries are converted",
			content: ptr(`{
    "run": {"meaning": "to move fast", "example": "I run every day", "synonyms": [], "antonyms": [], "category": "verbs", "tags": []},
    "walk": {"meaning": "to move slowly", "example": "", "synonyms": [], "antonyms": [], "category": "verbs", "tags": []}
}`),
			wantOutput: "Migrated 2 entries",
			wantExamples: map[string][]string{
				"run":  {"I run every day"},
				"walk": {},
			},
		},
		{
			name:       "canonical file is left alone",
			content:    ptr(`{"run": {"meaning": "to move fast", "examples": ["I run"], "synonyms": [], "antonyms": [], "category": "", "tags": []}}`),
			wantOutput: "No legacy entries found.",
			wantExamples: map[string][]string{
				"run": {"I run"},
			},
		},
		{
			name:    "broken file",
			content: ptr(`{"run": `),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dictionary.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}
			repository := dictionary.NewJSONFileRepository(path)

			var out bytes.Buffer
			err := MigrateLegacyExamples(repository, NewConsole(strings.NewReader(""), &out))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.wantOutput)

			if tt.wantExamples == nil {
				return
			}
			dict, err := repository.Load()
			require.NoError(t, err)
			for word, examples := range tt.wantExamples {
				entry, ok := dict.Get(word)
				require.True(t, ok, word)
				assert.Equal(t, examples, entry.Examples, word)
			}
		})
	}
}

func TestValidateDictionary(t *testing.T) {
	tests := []struct {
		name       string
		entries    map[string]dictionary.Entry
		wantErr    bool
		wantOutput []string
	}{
		{
			name:       "valid dictionary",
			entries:    map[string]dictionary.Entry{"run": runEntry()},
			wantOutput: []string{"All 1 entries are valid."},
		},
		{
			name: "problems are listed",
			entries: map[string]dictionary.Entry{
				"run": {Meaning: "", Tags: []string{" padded "}},
			},
			wantErr: true,
			wantOutput: []string{
				"run: meaning is a required field",
				"run: tags[0] must not have surrounding whitespace",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dictionary.json")
			repository := dictionary.NewJSONFileRepository(path)
			dict := dictionary.NewDictionary()
			for word, entry := range tt.entries {
				require.NoError(t, dict.Add(word, entry))
			}
			require.NoError(t, repository.Save(dict))

			var out bytes.Buffer
			err := ValidateDictionary(repository, NewConsole(strings.NewReader(""), &out))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
