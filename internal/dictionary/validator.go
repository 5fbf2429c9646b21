package dictionary

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Problem describes one invariant an entry breaks.
type Problem struct {
	Word    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Word, p.Message)
}

// Validator checks entries against the dictionary invariants.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator creates a Validator with English messages.
func NewValidator() (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("trimmed", isTrimmed); err != nil {
		return nil, fmt.Errorf("failed to register trimmed validation: %w", err)
	}
	if err := validate.RegisterTranslation("trimmed", trans, func(ut ut.Translator) error {
		return ut.Add("trimmed", "{0} must not have surrounding whitespace", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("trimmed", fe.Field())
		return t
	}); err != nil {
		return nil, fmt.Errorf("failed to register trimmed translation: %w", err)
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

// Validate returns every problem found in dict, in word order.
func (v *Validator) Validate(dict *Dictionary) []Problem {
	var problems []Problem
	for word, entry := range dict.All() {
		if strings.TrimSpace(word) == "" {
			problems = append(problems, Problem{Word: word, Message: "word must not be empty"})
		} else if strings.TrimSpace(word) != word {
			problems = append(problems, Problem{Word: word, Message: "word must not have surrounding whitespace"})
		}

		if err := v.validate.Struct(entry); err != nil {
			validationErrors, ok := err.(validator.ValidationErrors)
			if !ok {
				problems = append(problems, Problem{Word: word, Message: err.Error()})
				continue
			}
			for _, e := range validationErrors {
				problems = append(problems, Problem{Word: word, Message: e.Translate(v.translator)})
			}
		}
	}
	return problems
}

func isTrimmed(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.TrimSpace(value) == value
}
