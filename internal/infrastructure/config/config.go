package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=4000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	// AdminEmail designates the administrator account. The customer signing
	// up with this email receives the admin role, and an existing row with
	// this email is promoted at startup.
	AdminEmail string `env:"ADMIN_EMAIL"`

	DB    DBConfig
	Redis RedisConfig
}

// DBConfig carries the MySQL connection settings. Fallbacks match a local
// development database.
type DBConfig struct {
	Host     string `env:"DB_HOST, default=localhost"`
	User     string `env:"DB_USER, default=root"`
	Password string `env:"DB_PASS"`
	Name     string `env:"DB_NAME, default=mydatabase"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DSN renders the MySQL data source name. parseTime is required so DATETIME
// columns scan into time.Time.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", c.User, c.Password, c.Host, c.Name)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
