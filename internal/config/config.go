package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Match  MatchConfig  `yaml:"match" mapstructure:"match"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error dpanic panic fatal"`
	Format string `yaml:"format" mapstructure:"format" validate:"oneof=json console"`
}

// MatchConfig holds the fuzzy matching cutoffs.
type MatchConfig struct {
	ProductCutoff   float64 `yaml:"product_cutoff" mapstructure:"product_cutoff" validate:"gte=0,lte=1"`
	ParameterCutoff float64 `yaml:"parameter_cutoff" mapstructure:"parameter_cutoff" validate:"gte=0,lte=1"`
}

// ServerConfig configures the upload server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
	MaxUploadMB    int      `yaml:"max_upload_mb" mapstructure:"max_upload_mb" validate:"gt=0"`
	RateLimit      float64  `yaml:"rate_limit" mapstructure:"rate_limit" validate:"gte=0"`
	RateBurst      int      `yaml:"rate_burst" mapstructure:"rate_burst" validate:"gte=0"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// ReportConfig configures where the CLI writes reports.
type ReportConfig struct {
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir" validate:"required"`
	Format    string `yaml:"format" mapstructure:"format" validate:"oneof=table json yaml"`
}

// Load reads configuration from .env, config.yaml and the environment, in
// increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrap(err, "config: load .env")
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("VESSELQA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("match.product_cutoff", 0.4)
	v.SetDefault("match.parameter_cutoff", 0.6)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_upload_mb", 32)
	v.SetDefault("server.rate_limit", 2.0)
	v.SetDefault("server.rate_burst", 5)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("report.output_dir", ".")
	v.SetDefault("report.format", "table")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return eris.Wrap(err, "config: validate")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
