package cli

import (
	"fmt"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// ValidateDictionary prints every invariant the stored entries break
func ValidateDictionary(repository dictionary.Repository, console *Console) error {
	dict, err := repository.Load()
	if err != nil {
		return fmt.Errorf("repository.Load > %w", err)
	}

	validator, err := dictionary.NewValidator()
	if err != nil {
		return fmt.Errorf("dictionary.NewValidator > %w", err)
	}
	problems := validator.Validate(dict)
	if len(problems) == 0 {
		console.Success("All %d entries are valid.", dict.Len())
		return nil
	}

	for _, problem := range problems {
		console.Failure("%s", problem)
	}
	return fmt.Errorf("found %d problems in %d entries", len(problems), dict.Len())
}
