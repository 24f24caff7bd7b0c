package zap

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const callerSkipFrames = 1

// Environment controls the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
	EnvironmentTest        Environment = "test"
)

// Config contains the logger initialization inputs.
type Config struct {
	Environment Environment
	// Level overrides the environment default when set ("debug", "info", ...).
	Level string
	// Name is attached to every entry as the logger name.
	Name string
}

func (c Config) validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentDevelopment, EnvironmentLocal, EnvironmentTest:
		return nil
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
}

// New creates a structured logger from cfg.
func New(cfg Config) (*Logger, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid zap config: %w", err)
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	baseConfig := buildConfigByEnvironment(cfg.Environment)
	baseConfig.Level = level
	baseConfig.DisableStacktrace = true

	built, err := baseConfig.Build(zap.AddCallerSkip(callerSkipFrames))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.Name != "" {
		built = built.Named(cfg.Name)
	}

	return &Logger{logger: built, atomicLevel: level}, nil
}

// FromCore wraps an existing core, typically an observer core in tests.
func FromCore(core zapcore.Core) *Logger {
	return &Logger{logger: zap.New(core), atomicLevel: zap.NewAtomicLevelAt(zapcore.DebugLevel)}
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(cfg.Level); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
		}

		return zap.NewAtomicLevelAt(parsed), nil
	}

	switch cfg.Environment {
	case EnvironmentDevelopment, EnvironmentLocal, EnvironmentTest:
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	default:
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
}

func buildConfigByEnvironment(environment Environment) zap.Config {
	var cfg zap.Config

	switch environment {
	case EnvironmentDevelopment, EnvironmentLocal, EnvironmentTest:
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}

	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
