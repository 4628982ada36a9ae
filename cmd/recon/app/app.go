// Package app provides the application context and dependency management
// for the recon CLI. It centralizes configuration, logging, and the
// reconciliation engine behind a single App type so commands stay thin.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/recon/pkg/engine"
	"github.com/agentstation/recon/pkg/errors"
)

// App represents the recon application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Engine instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	engine engine.Engine
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("", "failed to load application configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Engine returns the reconciliation engine, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Engine() engine.Engine {
	a.mu.RLock()
	if a.engine != nil {
		eng := a.engine
		a.mu.RUnlock()
		return eng
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.engine == nil {
		a.engine = engine.NewSkeleton()
	}
	return a.engine
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithEngine sets a custom engine implementation (useful for testing).
func WithEngine(eng engine.Engine) Option {
	return func(a *App) error {
		a.engine = eng
		return nil
	}
}
