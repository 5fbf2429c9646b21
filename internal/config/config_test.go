package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			File: "dictionary.json",
		},
		Suggestions: SuggestionsConfig{
			Limit:  3,
			Cutoff: 0.6,
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		dictionaryFile    string
		wantErr           bool
		want              func(tempDir string) *Config
		wantErrorContains []string
	}{
		{
			name: "no config file uses defaults",
			want: func(string) *Config {
				return defaultConfig()
			},
		},
		{
			name: "valid config file with custom values",
			configContent: `dictionary:
  file: words/my-dictionary.json
suggestions:
  limit: 5
  cutoff: 0.75
`,
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Dictionary.File = "words/my-dictionary.json"
				cfg.Suggestions.Limit = 5
				cfg.Suggestions.Cutoff = 0.75
				return cfg
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `suggestions:
  limit: 1
`,
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Suggestions.Limit = 1
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `dictionary:
  file: explicit.json
`,
			useExplicitPath: true,
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Dictionary.File = "explicit.json"
				return cfg
			},
		},
		{
			name: "dictionary file override wins over the config file",
			configContent: `dictionary:
  file: from-config.json
`,
			useExplicitPath: true,
			dictionaryFile:  "from-flag.json",
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Dictionary.File = "from-flag.json"
				return cfg
			},
		},
		{
			name: "existing markdown template",
			configContent: `export:
  markdown_template: template.md.go.tmpl
`,
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Export.MarkdownTemplate = "template.md.go.tmpl"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `dictionary:
  file: dictionary.json
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "out of range suggestion settings",
			configContent: `suggestions:
  limit: 0
  cutoff: 1.5
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"suggestions.limit must be 1 or greater",
				"suggestions.cutoff must be 1 or less",
			},
		},
		{
			name: "missing markdown template",
			configContent: `export:
  markdown_template: missing.tmpl
`,
			wantErr: true,
			wantErrorContains: []string{
				"export.markdown_template must be an existing and readable file",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Chdir(tempDir)
			require.NoError(t, os.WriteFile(filepath.Join(tempDir, "template.md.go.tmpl"), []byte("# {{ .Title }}\n"), 0644))

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "custom.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else if tt.configContent != "" {
				require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte(tt.configContent), 0644))
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			loader.SetDictionaryFile(tt.dictionaryFile)

			got, err := loader.Load()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want(tempDir), got)
		})
	}
}
