package config

import (
	"errors"
	"fmt"

	"github.com/raoulx24/logkeep/internal/bootstrap"
	"github.com/raoulx24/logkeep/internal/logging"
)

// Validate checks the fields Builder relies on.
func (c *Config) Validate() error {
	var errs []error

	if c.App.Name == "" {
		errs = append(errs, errors.New("app.name is required"))
	}
	if c.App.Qualifier == "" {
		errs = append(errs, errors.New("app.qualifier is required"))
	}
	if c.App.Organization == "" {
		errs = append(errs, errors.New("app.organization is required"))
	}
	if c.Logging.MaxFiles < 1 {
		errs = append(errs, fmt.Errorf("logging.maxFiles must be at least 1, got %d", c.Logging.MaxFiles))
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	for module, level := range c.Logging.Modules {
		if _, err := logging.ParseLevel(level); err != nil {
			errs = append(errs, fmt.Errorf("logging.modules.%s: %w", module, err))
		}
	}

	return errors.Join(errs...)
}

// Builder converts the configuration into a logging builder.
func (c *Config) Builder() (bootstrap.Builder, error) {
	if err := c.Validate(); err != nil {
		return bootstrap.Builder{}, err
	}

	global, _ := logging.ParseLevel(c.Logging.Level)

	b := bootstrap.NewBuilder().
		AppName(c.App.Name).
		Qualifier(c.App.Qualifier).
		Organization(c.App.Organization).
		GlobalLevel(global).
		Directory(c.Logging.Directory).
		MaxFiles(c.Logging.MaxFiles).
		KeepForeign(c.Logging.KeepForeign)

	for module, name := range c.Logging.Modules {
		level, _ := logging.ParseLevel(name)
		b = b.LevelFor(module, level)
	}

	return b, nil
}
