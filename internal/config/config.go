package config

type Config struct {
	App     AppConfig     `yaml:"app"`
	Logging LoggingConfig `yaml:"logging"`
}

// AppConfig identifies the application; together the fields locate the
// platform cache directory.
type AppConfig struct {
	Name         string `yaml:"name"`
	Qualifier    string `yaml:"qualifier"`
	Organization string `yaml:"organization"`
}

type LoggingConfig struct {
	Level       string            `yaml:"level"`       // "debug", "info", etc.
	Modules     map[string]string `yaml:"modules"`     // module -> level
	Directory   string            `yaml:"directory"`   // empty = cache dir + /logs
	MaxFiles    int               `yaml:"maxFiles"`    // retention limit, >= 1
	KeepForeign bool              `yaml:"keepForeign"` // leave unparseable entries alone
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:         "logkeep",
			Qualifier:    "io",
			Organization: "raoulx24",
		},
		Logging: LoggingConfig{
			Level:    "debug",
			MaxFiles: 5,
		},
	}
}
