package assets

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

const dictionaryTemplateName = "dictionary.md.go.tmpl"

//go:embed templates/dictionary.md.go.tmpl
var fallbackDictionaryTemplate string

// DictionaryTemplate is the data passed to the dictionary markdown template
type DictionaryTemplate struct {
	Title   string
	Entries []DictionaryEntry
}

// DictionaryEntry is one word for template rendering
type DictionaryEntry struct {
	Word     string
	Meaning  string
	Examples []string
	Synonyms []string
	Antonyms []string
	Category string
	Tags     []string
}

// NewDictionaryTemplate builds the template data in dictionary order
func NewDictionaryTemplate(title string, dict *dictionary.Dictionary) DictionaryTemplate {
	data := DictionaryTemplate{
		Title:   title,
		Entries: make([]DictionaryEntry, 0, dict.Len()),
	}
	for word, entry := range dict.All() {
		data.Entries = append(data.Entries, DictionaryEntry{
			Word:     word,
			Meaning:  entry.Meaning,
			Examples: entry.Examples,
			Synonyms: entry.Synonyms,
			Antonyms: entry.Antonyms,
			Category: entry.CategoryOrDefault(),
			Tags:     entry.Tags,
		})
	}
	return data
}

// WriteDictionary renders templateData as markdown. An empty templatePath uses the embedded template.
func WriteDictionary(output io.Writer, templatePath string, templateData DictionaryTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, dictionaryTemplateName, fallbackDictionaryTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
