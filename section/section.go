package section

import (
	"errors"
	"fmt"
	"log/slog"

	conf "github.com/0xalexb/hjarta-conf"
	yamlhandler "github.com/0xalexb/hjarta-conf/handler/yaml"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ErrNotFound is returned when the requested key is absent and the section is required.
var ErrNotFound = yamlhandler.ErrPathNotFound

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

type options struct {
	defaults  any
	useEnv    bool
	envPrefix string
	optional  bool
	logger    *slog.Logger
}

// Option configures Provider.
type Option func(*options)

// WithDefaults fills zero-valued fields of the decoded section from defaults,
// which must be a value of, or pointer to, the target type.
func WithDefaults(defaults any) Option {
	return func(o *options) {
		o.defaults = defaults
	}
}

// WithEnv overrides fields tagged with `env` from environment variables whose
// names start with prefix. An empty prefix uses the tag names as they are.
func WithEnv(prefix string) Option {
	return func(o *options) {
		o.useEnv = true
		o.envPrefix = prefix
	}
}

// Optional treats a missing key as an empty section instead of an error.
func Optional() Option {
	return func(o *options) {
		o.optional = true
	}
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Provider returns a function that decodes the section under key into target,
// applies defaults and environment overrides, and validates the result.
func Provider[T any](target *T, key string, opts ...Option) func(*conf.Config) (*T, error) {
	var o options

	for _, apply := range opts {
		apply(&o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return func(cfg *conf.Config) (*T, error) {
		err := yamlhandler.DecodeTree(cfg.Root(), target, key)
		if err != nil {
			if !o.optional || !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("decoding section %q: %w", key, err)
			}

			o.logger.Debug("optional configuration section missing", slog.String("key", key))
		}

		if o.defaults != nil {
			err = mergo.Merge(target, o.defaults)
			if err != nil {
				return nil, fmt.Errorf("merging defaults for %q: %w", key, err)
			}
		}

		if o.useEnv {
			err = env.ParseWithOptions(target, env.Options{Prefix: o.envPrefix})
			if err != nil {
				return nil, fmt.Errorf("reading environment for %q: %w", key, err)
			}
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				o.logger.Info("defaults applied", slog.String("key", key))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err = targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating section %q: %w", key, err)
			}
		}

		return target, nil
	}
}

// Decode is Provider for a fresh value of T.
func Decode[T any](cfg *conf.Config, key string, opts ...Option) (*T, error) {
	return Provider(new(T), key, opts...)(cfg)
}
