package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config exposes application configuration grouped by concern. Values come
// from config.yaml (searched in . and ./config) with environment variables
// taking precedence (CLUBHUB_SERVER_PORT overrides server.port).
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Session  SessionConfig
	Logger   LoggerConfig
}

func NewConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("CLUBHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		App:      AppConfig{v},
		Server:   ServerConfig{v},
		Postgres: PostgresConfig{v},
		Redis:    RedisConfig{v},
		SMTP:     SMTPConfig{v},
		Session:  SessionConfig{v},
		Logger:   LoggerConfig{v},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "clubhub")
	v.SetDefault("app.base_url", "http://localhost:8080")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db", "clubhub")
	v.SetDefault("postgres.ssl_mode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.sessions_db", 0)

	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "noreply@clubhub.local")

	v.SetDefault("session.ttl", 7*24*time.Hour)
	v.SetDefault("session.cookie_secure", false)

	v.SetDefault("logger.debug", false)
	v.SetDefault("logger.log_to_file", false)
	v.SetDefault("logger.logs_dir", "logs")

	v.SetDefault("jobs.reminder_cron", "0 * * * *")
	v.SetDefault("jobs.reconcile_cron", "30 3 * * *")
	v.SetDefault("jobs.reminder_window", time.Hour)
}

type AppConfig struct{ v *viper.Viper }

func (c AppConfig) Name() string    { return c.v.GetString("app.name") }
func (c AppConfig) BaseURL() string { return c.v.GetString("app.base_url") }

func (c AppConfig) ReminderCron() string          { return c.v.GetString("jobs.reminder_cron") }
func (c AppConfig) ReconcileCron() string         { return c.v.GetString("jobs.reconcile_cron") }
func (c AppConfig) ReminderWindow() time.Duration { return c.v.GetDuration("jobs.reminder_window") }

type ServerConfig struct{ v *viper.Viper }

func (c ServerConfig) Host() string { return c.v.GetString("server.host") }
func (c ServerConfig) Port() int    { return c.v.GetInt("server.port") }

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host(), c.Port())
}

func (c ServerConfig) ReadTimeout() time.Duration     { return c.v.GetDuration("server.read_timeout") }
func (c ServerConfig) WriteTimeout() time.Duration    { return c.v.GetDuration("server.write_timeout") }
func (c ServerConfig) ShutdownTimeout() time.Duration { return c.v.GetDuration("server.shutdown_timeout") }

type PostgresConfig struct{ v *viper.Viper }

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.v.GetString("postgres.host"),
		c.v.GetInt("postgres.port"),
		c.v.GetString("postgres.user"),
		c.v.GetString("postgres.password"),
		c.v.GetString("postgres.db"),
		c.v.GetString("postgres.ssl_mode"),
	)
}

type RedisConfig struct{ v *viper.Viper }

func (c RedisConfig) Host() string     { return c.v.GetString("redis.host") }
func (c RedisConfig) Port() string     { return c.v.GetString("redis.port") }
func (c RedisConfig) Password() string { return c.v.GetString("redis.password") }
func (c RedisConfig) SessionsDB() int  { return c.v.GetInt("redis.sessions_db") }

type SMTPConfig struct{ v *viper.Viper }

func (c SMTPConfig) Host() string     { return c.v.GetString("smtp.host") }
func (c SMTPConfig) Port() int        { return c.v.GetInt("smtp.port") }
func (c SMTPConfig) Username() string { return c.v.GetString("smtp.username") }
func (c SMTPConfig) Password() string { return c.v.GetString("smtp.password") }
func (c SMTPConfig) From() string     { return c.v.GetString("smtp.from") }

type SessionConfig struct{ v *viper.Viper }

func (c SessionConfig) TTL() time.Duration { return c.v.GetDuration("session.ttl") }
func (c SessionConfig) CookieSecure() bool { return c.v.GetBool("session.cookie_secure") }

type LoggerConfig struct{ v *viper.Viper }

func (c LoggerConfig) Debug() bool     { return c.v.GetBool("logger.debug") }
func (c LoggerConfig) LogToFile() bool { return c.v.GetBool("logger.log_to_file") }
func (c LoggerConfig) LogsDir() string { return c.v.GetString("logger.logs_dir") }
