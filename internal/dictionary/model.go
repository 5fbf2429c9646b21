package dictionary

import (
	"iter"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UncategorizedCategory is shown for entries without a category.
const UncategorizedCategory = "Uncategorized"

// Entry is the record stored for one word.
type Entry struct {
	Meaning  string   `json:"meaning" yaml:"meaning" validate:"required"`
	Examples []string `json:"examples" yaml:"examples" validate:"dive,required,trimmed"`
	Synonyms []string `json:"synonyms" yaml:"synonyms" validate:"dive,required,trimmed"`
	Antonyms []string `json:"antonyms" yaml:"antonyms" validate:"dive,required,trimmed"`
	Category string   `json:"category" yaml:"category" validate:"trimmed"`
	Tags     []string `json:"tags" yaml:"tags" validate:"dive,required,trimmed"`
}

// CategoryOrDefault returns the category, or UncategorizedCategory when it is empty.
func (e Entry) CategoryOrDefault() string {
	if strings.TrimSpace(e.Category) == "" {
		return UncategorizedCategory
	}
	return e.Category
}

// Clone returns a deep copy so callers cannot mutate the stored slices.
func (e Entry) Clone() Entry {
	return Entry{
		Meaning:  e.Meaning,
		Examples: cloneList(e.Examples),
		Synonyms: cloneList(e.Synonyms),
		Antonyms: cloneList(e.Antonyms),
		Category: e.Category,
		Tags:     cloneList(e.Tags),
	}
}

func cloneList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}

// NormalizeText replaces invalid UTF-8 with U+FFFD and converts s to NFC, so a word
// typed at the console and the same word read from the document compare equal.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.ToValidUTF8(s, "\uFFFD"))
}

// SplitList splits comma-separated input and drops empty items after trimming.
func SplitList(input string) []string {
	values := []string{}
	for _, value := range strings.Split(input, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

// Dictionary maps words to entries and remembers insertion order.
type Dictionary struct {
	entries map[string]Entry
	words   []string
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: make(map[string]Entry),
	}
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Has reports whether word is present.
func (d *Dictionary) Has(word string) bool {
	_, ok := d.entries[word]
	return ok
}

// Get returns a copy of the entry for word.
func (d *Dictionary) Get(word string) (Entry, bool) {
	entry, ok := d.entries[word]
	if !ok {
		return Entry{}, false
	}
	return entry.Clone(), true
}

// Add inserts a new word. It returns ErrDuplicateWord if the word is already present.
func (d *Dictionary) Add(word string, entry Entry) error {
	if d.Has(word) {
		return ErrDuplicateWord
	}
	d.entries[word] = entry.Clone()
	d.words = append(d.words, word)
	return nil
}

// Update replaces the entry of an existing word, keeping its position.
func (d *Dictionary) Update(word string, entry Entry) error {
	if !d.Has(word) {
		return ErrNotFound
	}
	d.entries[word] = entry.Clone()
	return nil
}

// Delete removes word.
func (d *Dictionary) Delete(word string) error {
	if !d.Has(word) {
		return ErrNotFound
	}
	delete(d.entries, word)
	d.words = slices.DeleteFunc(d.words, func(w string) bool {
		return w == word
	})
	return nil
}

// Words returns the words in insertion order.
func (d *Dictionary) Words() []string {
	return slices.Clone(d.words)
}

// All iterates over the entries in insertion order.
func (d *Dictionary) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		for _, word := range d.words {
			if !yield(word, d.entries[word].Clone()) {
				return
			}
		}
	}
}
