package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"

	TransportLog   = "log"
	TransportEmail = "email"
	TransportAMQP  = "amqp"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrReadEnv       = errors.New("config: failed to read environment")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Meeting  MeetingConfig  `toml:"meeting"`
	Notify   NotifyConfig   `toml:"notify"`
	Mailer   MailerConfig   `toml:"mailer"`
	AMQP     AMQPConfig     `toml:"amqp"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file" env:"LOG_FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища бронирований
type StorageConfig struct {
	Driver   string `toml:"driver" env:"STORAGE_DRIVER"`
	FilePath string `toml:"file_path" env:"BOOKINGS_FILE"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
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
	OfferedTimes []string `toml:"offered_times"`
	HorizonDays  int      `toml:"horizon_days"`
	Timezone     string   `toml:"timezone" env:"STUDIO_TIMEZONE"`
}

type MeetingConfig struct {
	BaseURL    string `toml:"base_url"`
	RoomPrefix string `toml:"room_prefix"`
	Subject    string `toml:"subject"`
	StudioName string `toml:"studio_name" env:"STUDIO_NAME"`
}

// NotifyConfig настройки отправки уведомлений
type NotifyConfig struct {
	Transport   string `toml:"transport" env:"NOTIFY_TRANSPORT"`
	Workers     int    `toml:"workers"`
	QueueSize   int    `toml:"queue_size"`
	From        string `toml:"from" env:"FROM_EMAIL"`
	StudioEmail string `toml:"studio_email" env:"CONTACT_EMAIL"`
	SiteURL     string `toml:"site_url" env:"SITE_URL"`
	SendTimeout int    `toml:"send_timeout"`
}

type MailerConfig struct {
	BaseURL string `toml:"base_url" env:"MAILER_URL"`
	APIKey  string `toml:"api_key" env:"MAILER_API_KEY"`
	Timeout int    `toml:"timeout"`
}

type AMQPConfig struct {
	URL      string `toml:"url" env:"AMQP_URL"`
	Exchange string `toml:"exchange" env:"AMQP_EXCHANGE"`
}

// Load загружает конфигурацию: TOML файл (если есть), затем переменные окружения.
// Незаданные значения заполняются значениями по умолчанию.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadEnv, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	setDefault(&c.Logs.Level, "info")

	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "studio-booking")

	setDefault(&c.Storage.Driver, StorageDriverFile)
	setDefault(&c.Storage.FilePath, "data/bookings.json")

	setDefault(&c.Database.Host, "localhost")
	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 10)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	if len(c.Catalog.OfferedTimes) == 0 {
		c.Catalog.OfferedTimes = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
	}
	setDefault(&c.Catalog.HorizonDays, 28)
	setDefault(&c.Catalog.Timezone, "Local")

	setDefault(&c.Notify.Transport, TransportLog)
	setDefault(&c.Notify.Workers, 2)
	setDefault(&c.Notify.QueueSize, 100)
	setDefault(&c.Notify.From, "noreply@meetonchai.com")
	setDefault(&c.Notify.StudioEmail, "hello@meetonchai.com")
	setDefault(&c.Notify.SiteURL, "http://localhost:3000")
	setDefault(&c.Notify.SendTimeout, 10)

	setDefault(&c.Mailer.BaseURL, "https://api.resend.com")
	setDefault(&c.Mailer.Timeout, 10)

	setDefault(&c.AMQP.Exchange, "studio.bookings")
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}

	switch c.Storage.Driver {
	case StorageDriverFile:
		if c.Storage.FilePath == "" {
			problems = append(problems, "storage.file_path is required for the file driver")
		}
	case StorageDriverPostgres:
		if c.Database.DBName == "" {
			problems = append(problems, "database.dbname is required for the postgres driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("storage.driver must be %q or %q, got %q",
			StorageDriverFile, StorageDriverPostgres, c.Storage.Driver))
	}

	switch c.Notify.Transport {
	case TransportLog:
	case TransportEmail:
		if c.Mailer.APIKey == "" {
			problems = append(problems, "mailer.api_key is required for the email transport")
		}
	case TransportAMQP:
		if c.AMQP.URL == "" {
			problems = append(problems, "amqp.url is required for the amqp transport")
		}
	default:
		problems = append(problems, fmt.Sprintf("notify.transport must be one of log, email, amqp, got %q",
			c.Notify.Transport))
	}

	if c.Notify.Workers <= 0 {
		problems = append(problems, "notify.workers must be positive")
	}
	if c.Catalog.HorizonDays <= 0 {
		problems = append(problems, "catalog.horizon_days must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
