// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// DictionaryFileName is the dictionary file created by SetupTestConfig.
const DictionaryFileName = "dictionary.json"

// WordEntry is one fixture word.
type WordEntry struct {
	Word  string
	Entry dictionary.Entry
}

// SetupTestConfig creates a minimal config file whose dictionary lives in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`dictionary:
  file: %s
suggestions:
  limit: 3
  cutoff: 0.6
`, filepath.Join(tmpDir, DictionaryFileName))

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DictionaryPath returns the dictionary file used by SetupTestConfig.
func DictionaryPath(tmpDir string) string {
	return filepath.Join(tmpDir, DictionaryFileName)
}

// WriteDictionary saves entries to path in the given order.
func WriteDictionary(t *testing.T, path string, entries ...WordEntry) {
	t.Helper()

	dict := dictionary.NewDictionary()
	for _, e := range entries {
		require.NoError(t, dict.Add(e.Word, e.Entry))
	}
	require.NoError(t, dictionary.NewJSONFileRepository(path).Save(dict))
}

// ReadDictionary loads the dictionary stored at path.
func ReadDictionary(t *testing.T, path string) *dictionary.Dictionary {
	t.Helper()

	dict, err := dictionary.NewJSONFileRepository(path).Load()
	require.NoError(t, err)
	return dict
}

// RunEntry returns a fully populated entry for the word "run".
func RunEntry() dictionary.Entry {
	return dictionary.Entry{
		Meaning:  "to move fast",
		Examples: []string{"I run every day"},
		Synonyms: []string{"jog", "sprint"},
		Antonyms: []string{},
		Category: "verbs",
		Tags:     []string{"fitness"},
	}
}
