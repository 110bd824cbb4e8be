package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Permits   PermitsConfig   `yaml:"permits" mapstructure:"permits"`
	Directory DirectoryConfig `yaml:"directory" mapstructure:"directory"`
	Match     MatchConfig     `yaml:"match" mapstructure:"match"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// PermitsConfig configures permit CSV ingestion.
type PermitsConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`
	Category string `yaml:"category" mapstructure:"category"`
}

// DirectoryConfig configures license-directory extraction.
type DirectoryConfig struct {
	Path          string `yaml:"path" mapstructure:"path"`
	Marker        string `yaml:"marker" mapstructure:"marker"`
	StatusToken   string `yaml:"status_token" mapstructure:"status_token"`
	PDFProvider   string `yaml:"pdf_provider" mapstructure:"pdf_provider"`
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
}

// MatchConfig configures fuzzy license matching.
type MatchConfig struct {
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
	Workers   int     `yaml:"workers" mapstructure:"workers"`
}

// StoreConfig configures the prior-contact database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ExportConfig configures output locations.
type ExportConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from config.yaml and PERMITLEADS_* environment
// variables, with defaults for everything but input paths.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PERMITLEADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("permits.category", "")
	v.SetDefault("directory.marker", "L101")
	v.SetDefault("directory.status_token", "APPROVED")
	v.SetDefault("directory.pdf_provider", "local")
	v.SetDefault("directory.pdftotext_path", "pdftotext")
	v.SetDefault("match.threshold", 0.85)
	v.SetDefault("match.workers", 8)
	v.SetDefault("store.path", "contacts.db")
	v.SetDefault("export.dir", "output")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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

	return &cfg, nil
}

// InitLogger builds the global zap logger from log config.
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
