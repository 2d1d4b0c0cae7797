package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqorder/sop"
)

// Config is the run configuration. It can be loaded from YAML and is
// overridden by command-line arguments and flags.
type Config struct {
	// Instance is the path of the instance file.
	Instance string `yaml:"instance" validate:"required"`

	// TimeLimit is the search budget in seconds; 0 means unlimited.
	TimeLimit float64 `yaml:"time_limit" validate:"gte=0"`

	// Strategy selects the children expansion: total or partial.
	Strategy string `yaml:"strategy" validate:"oneof=total partial"`

	// NoDominance disables prefix-equivalence pruning.
	NoDominance bool `yaml:"no_dominance"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the configuration used when neither a file nor flags set a value.
func DefaultConfig() Config {
	return Config{
		Strategy: sop.Partial.String(),
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. The strategy name is
// matched case-insensitively, as on the command line.
func LoadConfig(path string) (Config, error) {
	var cfg = DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Strategy = strings.ToLower(strings.TrimSpace(cfg.Strategy))

	return cfg, nil
}

// Budget converts TimeLimit to a duration.
func (c Config) Budget() time.Duration {
	return time.Duration(c.TimeLimit * float64(time.Second))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration. An unknown strategy is reported as
// sop.ErrUnknownStrategy with a pointer to the help text.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.StructField() == "Strategy" {
			return fmt.Errorf("%w %q; see 'sopsolve --help' for accepted values", sop.ErrUnknownStrategy, c.Strategy)
		}
	}
	fe := verrs[0]

	return fmt.Errorf("invalid config: %s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
}
