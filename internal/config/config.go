package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	AI       AIConfig       `mapstructure:"ai"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Session  SessionConfig  `mapstructure:"session"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Mode               string        `mapstructure:"mode"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size"` // MiB; bounds audio uploads
}

// LogConfig configures the logging system.
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	FilePath  string `mapstructure:"file_path"`
	AddSource bool   `mapstructure:"add_source"`
}

// AIConfig configures the translation provider (any OpenAI-compatible API;
// Groq by default).
type AIConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	APIKey             string        `mapstructure:"api_key"`
	ChatModel          string        `mapstructure:"chat_model"`
	TranscriptionModel string        `mapstructure:"transcription_model"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// DatabaseConfig configures the sqlite conversation log.
type DatabaseConfig struct {
	Path         string `mapstructure:"path"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// StorageConfig configures audio blob storage.
type StorageConfig struct {
	AudioDir string `mapstructure:"audio_dir"`
}

// SessionConfig configures the consultation defaults.
type SessionConfig struct {
	DefaultPatientLanguage string `mapstructure:"default_patient_language"`
}

// Load reads the configuration file and applies NEO_* env overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("NEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server mode: %s, must be 'debug' or 'release'", c.Server.Mode)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	if c.AI.BaseURL == "" {
		return fmt.Errorf("ai.base_url is required")
	}
	if c.AI.APIKey == "" {
		return fmt.Errorf("ai.api_key is required")
	}
	if c.AI.ChatModel == "" {
		return fmt.Errorf("ai.chat_model is required")
	}
	if c.AI.TranscriptionModel == "" {
		return fmt.Errorf("ai.transcription_model is required")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Storage.AudioDir == "" {
		return fmt.Errorf("storage.audio_dir is required")
	}

	if !entity.IsPatientLanguage(c.Session.DefaultPatientLanguage) {
		return fmt.Errorf("invalid session.default_patient_language: %s", c.Session.DefaultPatientLanguage)
	}

	return nil
}

// GetServerAddr returns the host:port the server listens on.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetReadTimeout returns the HTTP read timeout.
func (c *Config) GetReadTimeout() time.Duration {
	return c.Server.ReadTimeout
}

// GetWriteTimeout returns the HTTP write timeout.
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Server.WriteTimeout
}
