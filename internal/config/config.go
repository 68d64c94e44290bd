package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidConfig возвращается, если значения конфигурации противоречивы
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	SMTP     SMTPConfig     `toml:"smtp"`
	Booking  BookingConfig  `toml:"booking"`
	Media    MediaConfig    `toml:"media"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
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

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	TLS      string `toml:"tls"`     // "starttls" (по умолчанию) или "implicit" для порта 465
	Timeout  int    `toml:"timeout"` // секунды на отправку одного письма
}

// BookingConfig правила расписания и лояльности
type BookingConfig struct {
	Timezone               string `toml:"timezone"`
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
	HorizonDays            int    `toml:"horizon_days"`
	DefaultDurationMinutes int    `toml:"default_duration_minutes"`
	DiscountIncrement      string `toml:"discount_increment"`
	DiscountCap            string `toml:"discount_cap"`
}

// Location часовой пояс студии, в котором считаются "сегодня" и "сейчас"
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Increment шаг начисления скидки
func (c BookingConfig) Increment() decimal.Decimal {
	return decimal.RequireFromString(c.DiscountIncrement)
}

// Cap максимальная скидка
func (c BookingConfig) Cap() decimal.Decimal {
	return decimal.RequireFromString(c.DiscountCap)
}

type MediaConfig struct {
	Dir              string `toml:"dir"`
	URLPrefix        string `toml:"url_prefix"`
	PublicBaseURL    string `toml:"public_base_url"`
	MaxUploadSizeMB  int64  `toml:"max_upload_size_mb"`  // на один файл
	MaxRequestSizeMB int64  `toml:"max_request_size_mb"` // на весь multipart-запрос
}

// Load читает config.toml, подгружает .env (если есть) и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения, которые используются, если секция или поле не заданы
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "studio-booking",
		},
		SMTP: SMTPConfig{
			Port:    587,
			TLS:     "starttls",
			Timeout: 30,
		},
		Booking: BookingConfig{
			Timezone:               "UTC",
			SlotGranularityMinutes: 15,
			HorizonDays:            90,
			DefaultDurationMinutes: 60,
			DiscountIncrement:      "0.50",
			DiscountCap:            "10.00",
		},
		Media: MediaConfig{
			Dir:              "./media",
			URLPrefix:        "/media/",
			PublicBaseURL:    "http://localhost:8080",
			MaxUploadSizeMB:  512,
			MaxRequestSizeMB: 2048,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("MEDIA_PUBLIC_BASE_URL"); v != "" {
		c.Media.PublicBaseURL = v
	}
}

// Validate отклоняет значения, с которыми сервис не сможет корректно работать
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is empty", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}

	b := c.Booking
	if b.SlotGranularityMinutes <= 0 || 60%b.SlotGranularityMinutes != 0 {
		return fmt.Errorf("%w: booking.slot_granularity_minutes must divide an hour, got %d",
			ErrInvalidConfig, b.SlotGranularityMinutes)
	}
	if b.HorizonDays < 0 {
		return fmt.Errorf("%w: booking.horizon_days=%d", ErrInvalidConfig, b.HorizonDays)
	}
	if b.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("%w: booking.default_duration_minutes=%d", ErrInvalidConfig, b.DefaultDurationMinutes)
	}

	inc, err := decimal.NewFromString(b.DiscountIncrement)
	if err != nil || inc.IsNegative() {
		return fmt.Errorf("%w: booking.discount_increment=%q", ErrInvalidConfig, b.DiscountIncrement)
	}
	cp, err := decimal.NewFromString(b.DiscountCap)
	if err != nil || cp.IsNegative() || cp.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: booking.discount_cap=%q", ErrInvalidConfig, b.DiscountCap)
	}

	if tls := strings.ToLower(c.SMTP.TLS); tls != "" && tls != "starttls" && tls != "implicit" {
		return fmt.Errorf("%w: smtp.tls=%q", ErrInvalidConfig, c.SMTP.TLS)
	}

	if c.Media.Dir == "" {
		return fmt.Errorf("%w: media.dir is empty", ErrInvalidConfig)
	}
	if c.Media.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("%w: media.max_upload_size_mb=%d", ErrInvalidConfig, c.Media.MaxUploadSizeMB)
	}
	if c.Media.MaxRequestSizeMB < c.Media.MaxUploadSizeMB {
		return fmt.Errorf("%w: media.max_request_size_mb=%d is less than max_upload_size_mb=%d",
			ErrInvalidConfig, c.Media.MaxRequestSizeMB, c.Media.MaxUploadSizeMB)
	}

	return nil
}
