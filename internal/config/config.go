package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/todo-tracker/internal/db"
)

// Config holds all application configuration.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	Todos    TodosConfig
	Auth     AuthConfig
}

type HTTPConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Driver       string // pgx or sqlite3
	URL          string
	EnsureSchema bool
}

// RedisConfig enables the activity feed when Addr is set.
type RedisConfig struct {
	Addr string
}

type LogConfig struct {
	Level  string
	Format string // text, logfmt or json
}

// TodosConfig controls the /get page window.
type TodosConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type AuthConfig struct {
	BcryptCost int
}

// Load reads defaults, an optional config file and environment variables, in that
// order of precedence from lowest to highest. Environment keys use "_" for ".".
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("TODO_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr: v.GetString("http.addr"),
		},
		Database: DatabaseConfig{
			Driver:       v.GetString("database.driver"),
			URL:          v.GetString("database.url"),
			EnsureSchema: v.GetBool("database.ensure_schema"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("redis.addr"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Todos: TodosConfig{
			DefaultPageSize: v.GetInt("todos.default_page_size"),
			MaxPageSize:     v.GetInt("todos.max_page_size"),
		},
		Auth: AuthConfig{
			BcryptCost: v.GetInt("auth.bcrypt_cost"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("database.driver", db.DriverPostgres)
	v.SetDefault("database.url", "")
	v.SetDefault("database.ensure_schema", true)
	v.SetDefault("redis.addr", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("todos.default_page_size", 50)
	v.SetDefault("todos.max_page_size", 100)
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)
}

// Validate checks settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL is not set")
	}
	if c.Database.Driver != db.DriverPostgres && c.Database.Driver != db.DriverSQLite {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Todos.DefaultPageSize <= 0 || c.Todos.DefaultPageSize > c.Todos.MaxPageSize {
		return fmt.Errorf("invalid page sizes: default %d, max %d", c.Todos.DefaultPageSize, c.Todos.MaxPageSize)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range", c.Auth.BcryptCost)
	}
	return nil
}

// String returns a representation of the config safe for logs (the database url is masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{HTTP: %s, DB: %s *** (masked) ***, Redis: %q, Log: %s/%s}",
		c.HTTP.Addr, c.Database.Driver, c.Redis.Addr, c.Log.Level, c.Log.Format)
}
