package cli

import (
	"strings"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

const noneLabel = "None"

// DisplayEntry prints every field of one entry
func (c *Console) DisplayEntry(word string, entry dictionary.Entry) {
	_, _ = c.bold.Fprintf(c.stdoutWriter, "Word: %s\n", word)
	c.Printf("Meaning: %s\n", c.italic.Sprint(entry.Meaning))
	if len(entry.Examples) == 0 {
		c.Printf("Examples: %s\n", noneLabel)
	} else {
		c.Println("Examples:")
		for i, example := range entry.Examples {
			c.Printf("  %d. %s\n", i+1, example)
		}
	}
	c.Printf("Synonyms: %s\n", joinOrNone(entry.Synonyms))
	c.Printf("Antonyms: %s\n", joinOrNone(entry.Antonyms))
	c.Printf("Category: %s\n", entry.CategoryOrDefault())
	c.Printf("Tags: %s\n", joinOrNone(entry.Tags))
}

// DisplayMiss prints close matches, or a plain not-found message when there are none
func (c *Console) DisplayMiss(suggestions []string) {
	if len(suggestions) == 0 {
		c.Failure("Word not found.")
		return
	}
	_, _ = c.hint.Fprintf(c.stdoutWriter, "Word not found. Did you mean: %s?\n", strings.Join(suggestions, ", "))
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return noneLabel
	}
	return strings.Join(values, ", ")
}
