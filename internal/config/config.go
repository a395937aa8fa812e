// Package config loads and validates evaluation run files.
//
// A run file is YAML:
//
//	data:
//	  path: testdata/weather.csv
//	target: play
//	strategy:
//	  kind: kfold
//	  folds: 10
//	  seed: 1
//	classifier:
//	  name: knn
//	  k: 3
//	workers: 4
//
// Unset fields take the values of Default. When data.query is set the table
// is read from PostgreSQL using the connection string in data.dsn, or in the
// environment variable named by data.dsn_env (DATABASE_URL by default).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/crossval/internal/split"
)

// Config is a complete run description.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Target     string           `yaml:"target" validate:"required"`
	Strategy   StrategyConfig   `yaml:"strategy"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Workers    int              `yaml:"workers" validate:"gte=0,lte=256"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DataConfig selects the table source.
type DataConfig struct {
	Path    string   `yaml:"path" validate:"required_without=Query"`
	Query   string   `yaml:"query" validate:"required_without=Path"`
	DSN     string   `yaml:"dsn"`
	DSNEnv  string   `yaml:"dsn_env"`
	Nominal []string `yaml:"nominal"`
}

// StrategyConfig selects and parameterizes the split strategy.
type StrategyConfig struct {
	Kind          string  `yaml:"kind" validate:"oneof=kfold loo subsample bootstrap stratified"`
	Folds         int     `yaml:"folds" validate:"required_if=Kind kfold,required_if=Kind stratified,gte=0"`
	Repeats       int     `yaml:"repeats" validate:"required_if=Kind subsample,required_if=Kind bootstrap,gte=0"`
	TrainFraction float64 `yaml:"train_fraction" validate:"gte=0,lt=1"`
	Seed          int64   `yaml:"seed"`
}

// ClassifierConfig selects the classifier.
type ClassifierConfig struct {
	Name string `yaml:"name" validate:"oneof=zeror knn naivebayes"`
	K    int    `yaml:"k" validate:"gte=0"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Default returns a configuration for 10-fold cross-validation with ZeroR.
func Default() Config {
	return Config{
		Data: DataConfig{DSNEnv: "DATABASE_URL"},
		Strategy: StrategyConfig{
			Kind:          "kfold",
			Folds:         10,
			Repeats:       10,
			TrainFraction: 0.66,
			Seed:          1,
		},
		Classifier: ClassifierConfig{Name: "zeror", K: 1},
		Workers:    1,
		Logging:    LoggingConfig{Level: "info", Format: "text"},
	}
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields []string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Fields, "; ")
}

// Unwrap returns the validator error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return &ValidationError{Fields: fields, Err: err}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses the run file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// SplitStrategy builds the configured strategy.
func (c *Config) SplitStrategy() (split.Strategy, error) {
	return split.New(c.Strategy.Kind, split.Params{
		Folds:         c.Strategy.Folds,
		Repeats:       c.Strategy.Repeats,
		TrainFraction: c.Strategy.TrainFraction,
		Target:        c.Target,
	})
}

// ConnString returns the PostgreSQL connection string for query sources.
func (c *Config) ConnString() (string, error) {
	if c.Data.DSN != "" {
		return c.Data.DSN, nil
	}
	env := c.Data.DSNEnv
	if env == "" {
		env = "DATABASE_URL"
	}
	if dsn := os.Getenv(env); dsn != "" {
		return dsn, nil
	}
	return "", fmt.Errorf("no database connection string: set data.dsn or %s", env)
}
