// SPDX-License-Identifier: MIT

// Package settings loads the runtime configuration of a graphblas process:
// logging, the default parallelism hint for operator families and the
// worker bound of the reference engine.
//
// Sources, lowest precedence first: built-in defaults, an optional config
// file (toml, yaml or json, chosen by extension), and GRAPHBLAS_*
// environment variables (GRAPHBLAS_LOG_LEVEL, GRAPHBLAS_LOG_FORMAT,
// GRAPHBLAS_PARALLELISM, GRAPHBLAS_WORKERS).
package settings

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/graphblas/engine/memengine"
	"github.com/katalvlaran/graphblas/sparse"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "GRAPHBLAS"

// Configuration keys.
const (
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyParallelism = "parallelism"
	KeyWorkers     = "workers"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidSettings reports a configuration value outside its domain.
var ErrInvalidSettings = errors.New("settings: invalid value")

// Settings is the effective configuration.
type Settings struct {
	LogLevel    string `mapstructure:"log_level" toml:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat   string `mapstructure:"log_format" toml:"log_format" yaml:"log_format" json:"log_format"`
	Parallelism string `mapstructure:"parallelism" toml:"parallelism" yaml:"parallelism" json:"parallelism"`
	Workers     int    `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, FormatConsole)
	v.SetDefault(KeyParallelism, sparse.DefaultParallelism.String())
	v.SetDefault(KeyWorkers, memengine.DefaultWorkers)
}

// Load reads defaults, the file at path (skipped when path is empty) and
// the environment, then validates the result.
func Load(path string) (*Settings, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// NewViper prepares a viper instance with defaults, the environment and the
// file at path (skipped when empty). Callers may bind flags on it before
// LoadWithViper; bound flags take precedence over everything else.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "settings: read %s", path)
		}
	}
	return v, nil
}

// LoadWithViper decodes and validates an already prepared viper instance.
func LoadWithViper(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "settings: unmarshal")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every field.
func (s Settings) Validate() error {
	if _, err := s.level(); err != nil {
		return err
	}
	if s.LogFormat != FormatConsole && s.LogFormat != FormatJSON {
		return errors.Wrapf(ErrInvalidSettings, "%s %q", KeyLogFormat, s.LogFormat)
	}
	if _, err := s.parallelism(); err != nil {
		return err
	}
	if s.Workers < 0 {
		return errors.Wrapf(ErrInvalidSettings, "%s %d is negative", KeyWorkers, s.Workers)
	}
	return nil
}

func (s Settings) level() (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return l, errors.Wrapf(ErrInvalidSettings, "%s %q", KeyLogLevel, s.LogLevel)
	}
	return l, nil
}

func (s Settings) parallelism() (sparse.Parallelism, error) {
	for _, p := range []sparse.Parallelism{sparse.ParallelismDefault, sparse.ParallelismSequential} {
		if strings.EqualFold(s.Parallelism, p.String()) {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidSettings, "%s %q", KeyParallelism, s.Parallelism)
}

// Logger builds the configured zap logger: JSON for machines, the
// development console encoder for humans.
func (s Settings) Logger() (*zap.Logger, error) {
	level, err := s.level()
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	if s.LogFormat == FormatJSON {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "settings: build logger")
	}
	return l, nil
}

// EngineOptions configures the reference engine. A nil logger logs nothing.
func (s Settings) EngineOptions(logger *zap.Logger) []memengine.Option {
	logger = orNop(logger)
	return []memengine.Option{
		memengine.WithLogger(logger.Named("memengine")),
		memengine.WithWorkers(s.Workers),
	}
}

// ContextOptions configures a sparse.Context: its logger and the
// parallelism hint every family inherits.
func (s Settings) ContextOptions(logger *zap.Logger) ([]sparse.ContextOption, error) {
	p, err := s.parallelism()
	if err != nil {
		return nil, err
	}
	logger = orNop(logger)
	return []sparse.ContextOption{
		sparse.WithLogger(logger.Named("sparse")),
		sparse.WithDefaultOptions(sparse.WithParallelism(p)),
	}, nil
}

// NewContext builds the logger, a reference engine and a Context from s.
// The caller owns the returned logger and should Sync it on exit.
func (s Settings) NewContext() (*sparse.Context, *zap.Logger, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := s.Logger()
	if err != nil {
		return nil, nil, err
	}
	opts, err := s.ContextOptions(logger)
	if err != nil {
		return nil, nil, err
	}
	ctx, err := sparse.NewContext(memengine.New(s.EngineOptions(logger)...), opts...)
	if err != nil {
		return nil, nil, err
	}
	return ctx, logger, nil
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
