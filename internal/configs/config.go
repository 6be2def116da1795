package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DBconfig struct {
	URL      string
	MaxConns int32
}

type RESTconfig struct {
	PORT          string
	AllowedOrigin string
}

type JwtConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

type UploadsConfig struct {
	Dir string
}

type AdminConfig struct {
	Email    string
	Password string
}

type SMTPConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DBconfig
	Rest         RESTconfig
	Jwt          JwtConfig
	Uploads      UploadsConfig
	Admin        AdminConfig
	SMTP         SMTPConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Отсутствие .env файла не ошибка: в контейнере переменные приходят извне.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "realnest-backend")

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	cfg.Database.MaxConns = int32(getEnvAsInt("DATABASE_MAX_CONNS", 10))

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.AllowedOrigin = getEnvAsString("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	cfg.Jwt.SecretKey = os.Getenv("JWT_SECRET")
	if cfg.Jwt.SecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	ttlHours := getEnvAsInt("JWT_TTL_HOURS", 24)
	cfg.Jwt.TokenTTL = time.Duration(ttlHours) * time.Hour

	cfg.Uploads.Dir = getEnvAsString("UPLOADS_DIR", "uploads")

	cfg.Admin.Email = getEnvAsString("ADMIN_EMAIL", "admin@realnest.kz")
	cfg.Admin.Password = getEnvAsString("ADMIN_PASSWORD", "admin123")

	cfg.SMTP.Enabled = getEnvAsBool("SMTP_ENABLED", false)
	if cfg.SMTP.Enabled {
		cfg.SMTP.Host = os.Getenv("SMTP_HOST")
		if cfg.SMTP.Host == "" {
			log.Println("WARNING: SMTP_ENABLED is true, but SMTP_HOST is not set. Disabling SMTP.")
			cfg.SMTP.Enabled = false
		}
		cfg.SMTP.Port = getEnvAsInt("SMTP_PORT", 587)
		cfg.SMTP.Username = os.Getenv("SMTP_USERNAME")
		cfg.SMTP.Password = os.Getenv("SMTP_PASSWORD")
		cfg.SMTP.From = getEnvAsString("SMTP_FROM", "noreply@realnest.kz")
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: environment variable %s is not an integer, using default %d", key, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: environment variable %s is not a boolean, using default %t", key, defaultValue)
		return defaultValue
	}
	return valueBool
}
