// Package config загрузка конфигурации сервиса из TOML файла
// с переопределением секретов из переменных окружения (.env).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	App       AppConfig       `toml:"app"`
	Slots     SlotsConfig     `toml:"slots"`
	TimeZones TimeZonesConfig `toml:"timezones"`
	Mail      MailConfig      `toml:"mail"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки PostgreSQL.
// Пустой Host означает, что база не сконфигурирована: сервис стартует
// в режиме "только память" и все брони живут до перезапуска процесса.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// Configured возвращает true, если база данных задана
func (d DatabaseConfig) Configured() bool {
	return d.Host != ""
}

// DSN собирает строку подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AppConfig прикладные настройки
type AppConfig struct {
	// BaseURL публичный адрес приложения, используется в ссылках отмены
	BaseURL string `toml:"base_url"`
	// AdminCode код доступа к административным операциям
	AdminCode string `toml:"admin_code"`
	// EventRoomsEnabled включает каталог залов мероприятия
	EventRoomsEnabled bool `toml:"event_rooms_enabled"`
	// RateLimitPerMinute лимит запросов на запись с одного IP
	RateLimitPerMinute int `toml:"rate_limit_per_minute"`
}

// SlotsConfig сетка слотов рабочего дня
type SlotsConfig struct {
	StartTime       string `toml:"start_time"` // "HH:MM"
	EndTime         string `toml:"end_time"`   // "HH:MM", последний слот сетки
	IntervalMinutes int    `toml:"interval_minutes"`
}

// TimeZonesConfig управляющие часовые пояса
type TimeZonesConfig struct {
	Default string `toml:"default"`
	Event   string `toml:"event"`
}

// MailConfig настройки почтового шлюза подтверждений.
// Пустой APIKey отключает отправку писем.
type MailConfig struct {
	APIURL  string `toml:"api_url"`
	APIKey  string `toml:"api_key"`
	From    string `toml:"from"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла. Перед чтением подхватывается
// .env (если есть), после чтения секреты переопределяются из окружения.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
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
			ServiceName: "salas-service",
			Path:        "/metrics",
		},
		App: AppConfig{
			BaseURL:            "http://localhost:8080",
			RateLimitPerMinute: 30,
		},
		Slots: SlotsConfig{
			StartTime:       "07:00",
			EndTime:         "20:00",
			IntervalMinutes: 30,
		},
		TimeZones: TimeZonesConfig{
			Default: "America/Caracas",
			Event:   "Europe/Madrid",
		},
		Mail: MailConfig{
			APIURL:  "https://api.resend.com/emails",
			Timeout: 10,
		},
	}
}

// applyEnv переопределяет секреты и адреса из переменных окружения
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Database.Port = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.DBName = v
	}
	if v := os.Getenv("ADMIN_CODE"); v != "" {
		c.App.AdminCode = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		c.App.BaseURL = v
	}
	if v := os.Getenv("MAIL_API_KEY"); v != "" {
		c.Mail.APIKey = v
	}
	if v := os.Getenv("MAIL_FROM"); v != "" {
		c.Mail.From = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Slots.IntervalMinutes <= 0 {
		return fmt.Errorf("config: invalid slots interval %d", c.Slots.IntervalMinutes)
	}
	if c.Slots.StartTime >= c.Slots.EndTime {
		return fmt.Errorf("config: slots start %q must precede end %q", c.Slots.StartTime, c.Slots.EndTime)
	}
	if c.Database.Configured() && c.Database.DBName == "" {
		return fmt.Errorf("config: database host set but dbname empty")
	}
	return nil
}
