package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	RabbitMQ RabbitMQConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Name            string `validate:"required"`
	Port            string `validate:"required"`
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration `validate:"gt=0"`
	Seed            bool
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required"`
	Name     string `validate:"required"`
	User     string `validate:"required"`
	Password string
	SSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns int32  `validate:"gte=1"`
}

// DSN builds a libpq keyword/value connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type JWTConfig struct {
	Secret        string        `validate:"required,min=16"`
	Expiry        time.Duration `validate:"gt=0"`
	RefreshWindow time.Duration `validate:"gte=0"`
}

type CORSConfig struct {
	Origin string `validate:"required"`
}

type RabbitMQConfig struct {
	URL      string
	Exchange string `validate:"required"`
}

type AuthConfig struct {
	AllowAdminRegistration bool
}

// LoadConfig reads .env (optional), the environment and command line flags.
func LoadConfig(args []string) (*Config, error) {
	v := viper.New()

	flags := pflag.NewFlagSet("event-booking", pflag.ContinueOnError)
	flags.String("config", ".env", "path to the env file")
	flags.Bool("seed", false, "insert demo users and events on startup")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if err := v.BindPFlag("SEED", flags.Lookup("seed")); err != nil {
		return nil, fmt.Errorf("bind seed flag: %w", err)
	}

	configFile, _ := flags.GetString("config")
	v.SetConfigFile(configFile)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "event-booking")
	v.SetDefault("PORT", "5000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "event_booking")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("JWT_EXPIRES_IN", "1h")
	v.SetDefault("JWT_REFRESH_WINDOW", "15m")
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("RABBITMQ_EXCHANGE", "events")
	v.SetDefault("ALLOW_ADMIN_REGISTRATION", false)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			Seed:            v.GetBool("SEED"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			Expiry:        v.GetDuration("JWT_EXPIRES_IN"),
			RefreshWindow: v.GetDuration("JWT_REFRESH_WINDOW"),
		},
		CORS: CORSConfig{
			Origin: v.GetString("CORS_ORIGIN"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
		Auth: AuthConfig{
			AllowAdminRegistration: v.GetBool("ALLOW_ADMIN_REGISTRATION"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the loaded values with the same validator used for requests.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				msgs[fe.Namespace()] = getSimpleErrorMessage(fe)
			}
			return fmt.Errorf("invalid config: %s", FormatValidationErrors(msgs))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
