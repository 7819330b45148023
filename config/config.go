package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string
	LogLevel string
	Server   Server
	Database Database
	Auth     Auth
	Redis    Redis
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Auth struct {
	JWTSecret string
}

// Redis is optional; an empty Addr disables the content cache.
type Redis struct {
	Addr            string
	Password        string
	DB              int
	ContentCacheTTL time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("CONTENT_CACHE_TTL", "5m")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.AppEnv = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.ContentCacheTTL = viper.GetDuration("CONTENT_CACHE_TTL")

	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Every authenticated request will be rejected.")
	}

	log.Info().
		Str("app_env", config.AppEnv).
		Str("server_port", config.Server.Port).
		Str("database_host", config.Database.Host).
		Str("database_name", config.Database.Name).
		Bool("redis_enabled", config.Redis.Addr != "").
		Msg("Config loaded")
	return &config, nil
}
