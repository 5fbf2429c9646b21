package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Dictionary  DictionaryConfig  `mapstructure:"dictionary"`
	Suggestions SuggestionsConfig `mapstructure:"suggestions"`
	Export      ExportConfig      `mapstructure:"export"`
}

type DictionaryConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type SuggestionsConfig struct {
	Limit  int     `mapstructure:"limit" validate:"gte=1,lte=20"`
	Cutoff float64 `mapstructure:"cutoff" validate:"gte=0,lte=1"`
}

type ExportConfig struct {
	MarkdownTemplate string `mapstructure:"markdown_template" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordbook")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// SetDictionaryFile overrides dictionary.file, e.g. from the --file flag.
func (loader *ConfigLoader) SetDictionaryFile(path string) {
	if path != "" {
		loader.viper.Set("dictionary.file", path)
	}
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionary.file", "dictionary.json")
	v.SetDefault("suggestions.limit", 3)
	v.SetDefault("suggestions.cutoff", 0.6)
	// Template is optional - if not specified, the embedded template is used
	v.SetDefault("export.markdown_template", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
