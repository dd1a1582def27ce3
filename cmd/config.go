package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides; "__" separates nested keys,
// e.g. WAREHOUSE_DB__PASSWORD or WAREHOUSE_EXPORT__SINK.
const EnvPrefix = "WAREHOUSE_"

// Export sinks.
const (
	SinkFile     = "file"
	SinkRabbitMQ = "rabbitmq"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		Env      string `koanf:"env"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		TimeZone string `koanf:"time_zone"`
	} `koanf:"app"`

	Log struct {
		File       string `koanf:"file"`
		MaxSizeMB  int    `koanf:"max_size_mb"`
		MaxBackups int    `koanf:"max_backups"`
		MaxAgeDays int    `koanf:"max_age_days"`
	} `koanf:"log"`

	DB struct {
		Host            string        `koanf:"host"`
		Port            string        `koanf:"port"`
		User            string        `koanf:"user"`
		Password        string        `koanf:"password"`
		Name            string        `koanf:"name"`
		SslMode         string        `koanf:"sslmode"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	} `koanf:"db"`

	Redis struct {
		Addr      string        `koanf:"addr"`
		Password  string        `koanf:"password"`
		DB        int           `koanf:"db"`
		ReportTTL time.Duration `koanf:"report_ttl"`
	} `koanf:"redis"`

	Orders struct {
		CleanupCron   string        `koanf:"cleanup_cron"`
		IdleThreshold time.Duration `koanf:"idle_threshold"`
	} `koanf:"orders"`

	Reports struct {
		TopN int `koanf:"top_n"`
	} `koanf:"reports"`

	Export struct {
		Sink         string        `koanf:"sink"`
		Dir          string        `koanf:"dir"`
		DispatchCron string        `koanf:"dispatch_cron"`
		BatchSize    int           `koanf:"batch_size"`
		MaxAttempts  int           `koanf:"max_attempts"`
		BaseDelay    time.Duration `koanf:"base_delay"`
		MaxDelay     time.Duration `koanf:"max_delay"`
	} `koanf:"export"`

	RabbitMQ struct {
		URL      string `koanf:"url"`
		Exchange string `koanf:"exchange"`
	} `koanf:"rabbitmq"`
}

// LoadConfig reads .env into the process environment when present, then
// layers dir/base.yaml, the optional dir/<env>.yaml and WAREHOUSE_
// environment variables.
func LoadConfig(dir, envName string) (Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(file.Provider(filepath.Join(dir, "base.yaml")), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	if envName != "" {
		// Missing environment files are fine for local runs.
		_ = k.Load(file.Provider(filepath.Join(dir, envName+".yaml")), yaml.Parser())
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	required := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s required", name))
		}
	}
	positive := func(name string, d time.Duration) {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}

	required("app.http_addr", c.App.HTTPAddr)
	required("db.host", c.DB.Host)
	required("db.port", c.DB.Port)
	required("db.user", c.DB.User)
	required("db.name", c.DB.Name)
	required("orders.cleanup_cron", c.Orders.CleanupCron)
	required("export.dispatch_cron", c.Export.DispatchCron)
	positive("orders.idle_threshold", c.Orders.IdleThreshold)
	positive("export.base_delay", c.Export.BaseDelay)
	positive("export.max_delay", c.Export.MaxDelay)

	if c.App.TimeZone != "" {
		if _, err := time.LoadLocation(c.App.TimeZone); err != nil {
			errs = append(errs, fmt.Errorf("app.time_zone: %w", err))
		}
	}
	if c.Redis.Addr != "" {
		positive("redis.report_ttl", c.Redis.ReportTTL)
	}
	if c.Export.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("export.batch_size must be positive, got %d", c.Export.BatchSize))
	}
	if c.Export.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("export.max_attempts must not be negative, got %d", c.Export.MaxAttempts))
	}

	switch c.Export.Sink {
	case SinkFile:
		required("export.dir", c.Export.Dir)
	case SinkRabbitMQ:
		required("rabbitmq.url", c.RabbitMQ.URL)
		required("rabbitmq.exchange", c.RabbitMQ.Exchange)
	default:
		errs = append(errs, fmt.Errorf("export.sink must be %q or %q, got %q", SinkFile, SinkRabbitMQ, c.Export.Sink))
	}

	return errors.Join(errs...)
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SslMode)
}

// Location is the time zone calendar days are computed in; UTC by default.
func (c Config) Location() *time.Location {
	if c.App.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.App.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
