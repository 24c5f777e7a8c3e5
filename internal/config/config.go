// Package config loads application configuration from file and environment.
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
	Hunter    HunterConfig    `yaml:"hunter" mapstructure:"hunter"`
	Validator ValidatorConfig `yaml:"validator" mapstructure:"validator"`
	Scorer    ScorerConfig    `yaml:"scorer" mapstructure:"scorer"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// HunterConfig holds the remote verification capability settings.
// An empty key puts the whole run in local-only mode.
type HunterConfig struct {
	APIKey      string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxAttempts int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	MaxRPS      float64 `yaml:"max_rps" mapstructure:"max_rps"`
	GuessEmails bool    `yaml:"guess_emails" mapstructure:"guess_emails"`
}

// ValidatorConfig configures local validation.
type ValidatorConfig struct {
	DNSTimeoutSecs    int    `yaml:"dns_timeout_secs" mapstructure:"dns_timeout_secs"`
	CacheTTLMins      int    `yaml:"cache_ttl_mins" mapstructure:"cache_ttl_mins"`
	SMTPProbe         bool   `yaml:"smtp_probe" mapstructure:"smtp_probe"`
	SMTPTimeoutSecs   int    `yaml:"smtp_timeout_secs" mapstructure:"smtp_timeout_secs"`
	DisposableDomains string `yaml:"disposable_domains" mapstructure:"disposable_domains"` // optional YAML file
}

// ScorerConfig configures quality scoring.
type ScorerConfig struct {
	WeightsFile string `yaml:"weights_file" mapstructure:"weights_file"` // optional YAML weight table
}

// BatchConfig configures batch execution.
type BatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// ExportConfig configures the export collaborator.
type ExportConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// ServerConfig configures the webhook server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from config.yaml (optional) and the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ACQUIREIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("hunter.api_key", "")
	v.SetDefault("hunter.base_url", "https://api.hunter.io/v2")
	v.SetDefault("hunter.timeout_secs", 10)
	v.SetDefault("hunter.max_attempts", 2)
	v.SetDefault("hunter.max_rps", 1.0)
	v.SetDefault("hunter.guess_emails", false)
	v.SetDefault("validator.dns_timeout_secs", 3)
	v.SetDefault("validator.cache_ttl_mins", 10)
	v.SetDefault("validator.smtp_probe", false)
	v.SetDefault("validator.smtp_timeout_secs", 5)
	v.SetDefault("validator.disposable_domains", "")
	v.SetDefault("scorer.weights_file", "")
	v.SetDefault("batch.max_concurrent", 5)
	v.SetDefault("export.format", "generic")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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
