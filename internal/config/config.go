// Package config loads dexseed settings from defaults, an optional
// dexseed.yaml, DEXSEED_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	stderrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/dexseed/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexseed/internal/document"
	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/errors"
)

// Keys shared by the config file, env vars and flags
const (
	KeyAPIBaseURL        = "api_base_url"
	KeySpriteURLTemplate = "sprite_url_template"
	KeyStartID           = "start_id"
	KeyEndID             = "end_id"
	KeyOutput            = "output"
	KeyFormat            = "format"
	KeyHTTPTimeout       = "http_timeout"
	KeyUserAgent         = "user_agent"
	KeyVersionGroups     = "version_groups"
	KeyRedisAddr         = "redis_addr"
	KeyLogLevel          = "log_level"
)

const (
	// EnvPrefix is prepended to every key for environment lookups
	EnvPrefix = "DEXSEED"

	// DefaultConfigName is looked up as dexseed.yaml in the working directory
	DefaultConfigName = "dexseed"

	DefaultStartID     = 1
	DefaultEndID       = 650
	DefaultOutput      = "pokemon_gen1-5.yaml"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultLogLevel    = "info"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds every setting the CLI needs
type Config struct {
	APIBaseURL        string        `mapstructure:"api_base_url"`
	SpriteURLTemplate string        `mapstructure:"sprite_url_template"`
	StartID           int           `mapstructure:"start_id"`
	EndID             int           `mapstructure:"end_id"`
	Output            string        `mapstructure:"output"`
	Format            string        `mapstructure:"format"`
	HTTPTimeout       time.Duration `mapstructure:"http_timeout"`
	UserAgent         string        `mapstructure:"user_agent"`
	VersionGroups     []string      `mapstructure:"version_groups"`
	RedisAddr         string        `mapstructure:"redis_addr"`
	LogLevel          string        `mapstructure:"log_level"`
}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIBaseURL, pokeapi.DefaultBaseURL)
	v.SetDefault(KeySpriteURLTemplate, dex.DefaultSpriteURLTemplate)
	v.SetDefault(KeyStartID, DefaultStartID)
	v.SetDefault(KeyEndID, DefaultEndID)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyFormat, "")
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	v.SetDefault(KeyUserAgent, pokeapi.DefaultUserAgent)
	v.SetDefault(KeyVersionGroups, dex.DefaultVersionGroups)
	v.SetDefault(KeyRedisAddr, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// LoadInput defines where settings come from
type LoadInput struct {
	// ConfigFile is an explicit config path. When empty dexseed.yaml is
	// searched for in SearchPaths and a missing file is not an error.
	ConfigFile  string
	SearchPaths []string

	// Flags are bound by name, so flag names must match the keys with
	// dashes in place of underscores
	Flags *pflag.FlagSet
}

// Load resolves the configuration and validates it
func Load(input *LoadInput) (*Config, error) {
	if input == nil {
		input = &LoadInput{}
	}

	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, input); err != nil {
		return nil, err
	}

	if input.Flags != nil {
		if err := bindFlags(v, input.Flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, input *LoadInput) error {
	if input.ConfigFile != "" {
		v.SetConfigFile(input.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", input.ConfigFile).
				WithMeta("path", input.ConfigFile)
		}
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
		return nil
	}

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType("yaml")
	paths := input.SearchPaths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}
	slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = errors.Wrapf(err, "failed to bind flag %s", f.Name)
		}
	})
	return bindErr
}

// Validate checks ranges and enums and fills in the output format from the
// output extension when none was given
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired(KeyAPIBaseURL, c.APIBaseURL, vb)
	errors.ValidateRequired(KeyOutput, c.Output, vb)

	if c.StartID < 1 {
		vb.Field(KeyStartID, "must be at least 1")
	}
	if c.EndID <= c.StartID {
		vb.Fieldf(KeyEndID, "must be greater than %s (%d)", KeyStartID, c.StartID)
	}
	if c.HTTPTimeout <= 0 {
		vb.Field(KeyHTTPTimeout, "must be positive")
	}
	if c.SpriteURLTemplate != "" && !strings.Contains(c.SpriteURLTemplate, "{id}") {
		vb.Field(KeySpriteURLTemplate, "must contain {id}")
	}

	if c.Format == "" {
		c.Format = document.FormatForPath(c.Output)
	}
	c.Format = strings.ToLower(c.Format)
	errors.ValidateEnum(KeyFormat, c.Format, document.Formats, vb)

	c.LogLevel = strings.ToLower(c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	errors.ValidateEnum(KeyLogLevel, c.LogLevel, logLevels, vb)

	return vb.Build()
}

// SlogLevel maps LogLevel onto a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RedisEnabled reports whether a record store is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
