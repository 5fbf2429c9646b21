package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/statistics"
)

// State is the dictionary a session works on and the repository it is saved to.
// It is created once per process and passed to every operation.
type State struct {
	Dictionary *dictionary.Dictionary
	Repository dictionary.Repository
}

// LoadState reads the whole dictionary from repository
func LoadState(repository dictionary.Repository) (*State, error) {
	dict, err := repository.Load()
	if err != nil {
		return nil, fmt.Errorf("repository.Load > %w", err)
	}
	return &State{
		Dictionary: dict,
		Repository: repository,
	}, nil
}

func (s *State) save() error {
	if err := s.Repository.Save(s.Dictionary); err != nil {
		return fmt.Errorf("repository.Save > %w", err)
	}
	return nil
}

// Operations implements the menu commands. Words that are missing or duplicated
// and declined confirmations are reported to the user and never returned as errors.
type Operations struct {
	console        *Console
	suggestOptions dictionary.SuggestOptions
}

// NewOperations creates Operations that talk to the user through console
func NewOperations(console *Console, suggestOptions dictionary.SuggestOptions) *Operations {
	return &Operations{
		console:        console,
		suggestOptions: suggestOptions,
	}
}

// Search asks for a word and shows it, or close matches when it is missing
func (o *Operations) Search(state *State) error {
	word, err := o.console.Prompt("Enter word to search")
	if err != nil {
		return err
	}
	o.Lookup(state, word)
	return nil
}

// Lookup shows word and reports whether it exists
func (o *Operations) Lookup(state *State, word string) bool {
	entry, ok := state.Dictionary.Get(word)
	if !ok {
		o.console.DisplayMiss(state.Dictionary.Suggest(word, o.suggestOptions))
		return false
	}
	o.console.Println()
	o.console.DisplayEntry(word, entry)
	o.console.Println()
	return true
}

func (o *Operations) Add(state *State) error {
	word, err := o.console.Prompt("Enter new word")
	if err != nil {
		return err
	}
	if word == "" {
		o.console.Failure("Word cannot be empty.")
		return nil
	}
	if state.Dictionary.Has(word) {
		o.console.Failure("Word '%s' already exists.", word)
		return nil
	}

	var entry dictionary.Entry
	if entry.Meaning, err = o.console.Prompt("Enter meaning"); err != nil {
		return err
	}

	o.console.Println("Enter examples (press Enter on an empty line to finish):")
	entry.Examples = []string{}
	for {
		example, err := o.console.Prompt(fmt.Sprintf("Example %d", len(entry.Examples)+1))
		if err != nil {
			return err
		}
		if example == "" {
			break
		}
		entry.Examples = append(entry.Examples, example)
	}

	if entry.Synonyms, err = o.promptList("Enter synonyms (comma-separated)"); err != nil {
		return err
	}
	if entry.Antonyms, err = o.promptList("Enter antonyms (comma-separated)"); err != nil {
		return err
	}
	if entry.Category, err = o.console.Prompt("Enter category"); err != nil {
		return err
	}
	if entry.Tags, err = o.promptList("Enter tags (comma-separated)"); err != nil {
		return err
	}

	if err := state.Dictionary.Add(word, entry); err != nil {
		return fmt.Errorf("Dictionary.Add(%s) > %w", word, err)
	}
	if err := state.save(); err != nil {
		return err
	}
	slog.Debug("added word", "word", word)
	o.console.Success("Word '%s' added successfully!", word)
	return nil
}

// Edit updates an existing word. An empty answer keeps the current value and
// examples are only ever appended. The entry is saved even when nothing changed.
func (o *Operations) Edit(state *State) error {
	word, err := o.console.Prompt("Enter word to edit")
	if err != nil {
		return err
	}
	entry, ok := state.Dictionary.Get(word)
	if !ok {
		o.console.Failure("Word not found.")
		return nil
	}

	o.console.Println("Press Enter to keep the current value.")
	meaning, err := o.console.Prompt(fmt.Sprintf("Meaning [%s]", entry.Meaning))
	if err != nil {
		return err
	}
	if meaning != "" {
		entry.Meaning = meaning
	}

	examples, err := o.console.Prompt("Add more examples (comma-separated)")
	if err != nil {
		return err
	}
	entry.Examples = append(entry.Examples, dictionary.SplitList(examples)...)

	if entry.Synonyms, err = o.promptReplacementList("Synonyms", entry.Synonyms); err != nil {
		return err
	}
	if entry.Antonyms, err = o.promptReplacementList("Antonyms", entry.Antonyms); err != nil {
		return err
	}

	category, err := o.console.Prompt(fmt.Sprintf("Category [%s]", entry.Category))
	if err != nil {
		return err
	}
	if category != "" {
		entry.Category = category
	}

	if entry.Tags, err = o.promptReplacementList("Tags", entry.Tags); err != nil {
		return err
	}

	if err := state.Dictionary.Update(word, entry); err != nil {
		return fmt.Errorf("Dictionary.Update(%s) > %w", word, err)
	}
	if err := state.save(); err != nil {
		return err
	}
	slog.Debug("edited word", "word", word)
	o.console.Success("Word '%s' updated successfully!", word)
	return nil
}

// Delete removes a word after the user answers "y"; any other answer leaves it untouched
func (o *Operations) Delete(state *State) error {
	word, err := o.console.Prompt("Enter word to delete")
	if err != nil {
		return err
	}
	if !state.Dictionary.Has(word) {
		o.console.Failure("Word not found.")
		return nil
	}

	answer, err := o.console.Prompt(fmt.Sprintf("Are you sure you want to delete '%s'? (y/n)", word))
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		slog.Debug("delete was not confirmed", "word", word, "error", dictionary.ErrDeclined)
		return nil
	}

	if err := state.Dictionary.Delete(word); err != nil {
		return fmt.Errorf("Dictionary.Delete(%s) > %w", word, err)
	}
	if err := state.save(); err != nil {
		return err
	}
	o.console.Success("Word '%s' deleted.", word)
	return nil
}

func (o *Operations) ListAll(state *State) error {
	if state.Dictionary.Len() == 0 {
		o.console.Println("Dictionary is empty.")
		return nil
	}
	for word, entry := range state.Dictionary.All() {
		o.console.Println()
		o.console.DisplayEntry(word, entry)
	}
	o.console.Println()
	return nil
}

func (o *Operations) Statistics(state *State) error {
	result := statistics.CalculateStatistics(state.Dictionary)
	o.console.Printf("Total words: %d\n", result.Total)
	if result.Total == 0 {
		return nil
	}
	o.console.Println("Words by category:")
	for _, category := range result.Categories {
		o.console.Printf("  %s: %d\n", category.Category, category.Count)
	}
	return nil
}

func (o *Operations) promptList(label string) ([]string, error) {
	input, err := o.console.Prompt(label)
	if err != nil {
		return nil, err
	}
	return dictionary.SplitList(input), nil
}

// promptReplacementList shows the current values and replaces them only on a non-empty answer
func (o *Operations) promptReplacementList(label string, current []string) ([]string, error) {
	input, err := o.console.Prompt(fmt.Sprintf("%s [%s]", label, strings.Join(current, ", ")))
	if err != nil {
		return nil, err
	}
	if input == "" {
		return current, nil
	}
	return dictionary.SplitList(input), nil
}
