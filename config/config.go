package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Auth  AuthConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	TimeZone      string
	RunMigrations bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// AuthConfig holds the rules used to decide whether an account may use the system
type AuthConfig struct {
	// ActiveEstadoCodes are the Estado abbreviations that count as "active", compared upper-cased
	ActiveEstadoCodes []string
	// DefaultRole is shown for accounts without a linked Rol
	DefaultRole string
}

// IsDevelopment reports whether the app runs with development defaults
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_TIMEZONE", "America/Lima")
	viper.SetDefault("DB_RUN_MIGRATIONS", true)
	viper.SetDefault("AUTH_ACTIVE_ESTADOS", "ACT,A")
	viper.SetDefault("AUTH_DEFAULT_ROLE", "usuario")

	if err := viper.ReadInConfig(); err != nil {
		// Running inside a container usually means no .env file, only real env vars
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			TimeZone:      viper.GetString("DB_TIMEZONE"),
			RunMigrations: viper.GetBool("DB_RUN_MIGRATIONS"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Auth: AuthConfig{
			ActiveEstadoCodes: ParseCodes(viper.GetString("AUTH_ACTIVE_ESTADOS")),
			DefaultRole:       viper.GetString("AUTH_DEFAULT_ROLE"),
		},
	}

	return config, nil
}

// ParseCodes splits a comma separated list, trimming blanks and upper-casing each code
func ParseCodes(raw string) []string {
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
