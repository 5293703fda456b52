package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Источники каталога номеров
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Хранилища подтверждений
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// ErrInvalidConfig возвращается при невалидной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	Catalog    CatalogConfig    `toml:"catalog"`
	Storage    StorageConfig    `toml:"storage"`
	Simulation SimulationConfig `toml:"simulation"`
	Sessions   SessionsConfig   `toml:"sessions"`
	Booking    BookingConfig    `toml:"booking"`
	Mailer     MailerConfig     `toml:"mailer"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type CatalogConfig struct {
	// Source file | postgres
	Source string `toml:"source"`
	File   string `toml:"file"`
}

type StorageConfig struct {
	// Confirmations memory | postgres
	Confirmations string `toml:"confirmations"`
}

// SimulationConfig имитируемые задержки в миллисекундах
type SimulationConfig struct {
	SearchDelayMs  int `toml:"search_delay_ms"`
	SubmitDelayMs  int `toml:"submit_delay_ms"`
	ConfirmDelayMs int `toml:"confirm_delay_ms"`
}

func (s SimulationConfig) SearchDelay() time.Duration {
	return time.Duration(s.SearchDelayMs) * time.Millisecond
}

func (s SimulationConfig) SubmitDelay() time.Duration {
	return time.Duration(s.SubmitDelayMs) * time.Millisecond
}

func (s SimulationConfig) ConfirmDelay() time.Duration {
	return time.Duration(s.ConfirmDelayMs) * time.Millisecond
}

// SessionsConfig время жизни и период очистки в секундах
type SessionsConfig struct {
	TTL             int `toml:"ttl"`
	CleanupInterval int `toml:"cleanup_interval"`
}

type BookingConfig struct {
	ConfirmationPrefix string `toml:"confirmation_prefix"`
}

type MailerConfig struct {
	Enabled   bool   `toml:"enabled"`
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	User      string `toml:"user"`
	Password  string `toml:"password"`
	FromName  string `toml:"from_name"`
	FromEmail string `toml:"from_email"`
	Timeout   int    `toml:"timeout"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "hotel-booking",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Catalog: CatalogConfig{
			Source: CatalogSourceFile,
			File:   "rooms.json",
		},
		Storage: StorageConfig{
			Confirmations: StorageMemory,
		},
		Simulation: SimulationConfig{
			SearchDelayMs:  1000,
			SubmitDelayMs:  1500,
			ConfirmDelayMs: 2000,
		},
		Sessions: SessionsConfig{
			TTL:             1800,
			CleanupInterval: 60,
		},
		Booking: BookingConfig{
			ConfirmationPrefix: "LUX",
		},
		Mailer: MailerConfig{
			Port:    587,
			Timeout: 10,
		},
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Catalog.Source {
	case CatalogSourceFile:
		if c.Catalog.File == "" {
			return fmt.Errorf("%w: catalog.file is required for source %q", ErrInvalidConfig, c.Catalog.Source)
		}
	case CatalogSourcePostgres:
	default:
		return fmt.Errorf("%w: catalog.source=%q, expected %q or %q",
			ErrInvalidConfig, c.Catalog.Source, CatalogSourceFile, CatalogSourcePostgres)
	}

	switch c.Storage.Confirmations {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: storage.confirmations=%q, expected %q or %q",
			ErrInvalidConfig, c.Storage.Confirmations, StorageMemory, StoragePostgres)
	}

	if c.NeedsDatabase() && c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required when postgres is used", ErrInvalidConfig)
	}

	if c.Simulation.SearchDelayMs < 0 || c.Simulation.SubmitDelayMs < 0 || c.Simulation.ConfirmDelayMs < 0 {
		return fmt.Errorf("%w: simulation delays must not be negative", ErrInvalidConfig)
	}

	if c.Sessions.TTL <= 0 || c.Sessions.CleanupInterval <= 0 {
		return fmt.Errorf("%w: sessions.ttl and sessions.cleanup_interval must be positive", ErrInvalidConfig)
	}

	if c.Booking.ConfirmationPrefix == "" {
		return fmt.Errorf("%w: booking.confirmation_prefix is required", ErrInvalidConfig)
	}

	if c.Mailer.Enabled && (c.Mailer.Host == "" || c.Mailer.FromEmail == "") {
		return fmt.Errorf("%w: mailer.host and mailer.from_email are required when mailer is enabled", ErrInvalidConfig)
	}

	return nil
}

// NeedsDatabase возвращает true, если какой-либо компонент хранится в PostgreSQL
func (c *Config) NeedsDatabase() bool {
	return c.Catalog.Source == CatalogSourcePostgres || c.Storage.Confirmations == StoragePostgres
}
