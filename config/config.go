package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	SQLite   SQLiteConfig
	Redis    RedisConfig
	Auth     AuthConfig
	WhatsApp WhatsAppConfig
	Cart     CartConfig
}

type ServerConfig struct {
	AppEnv       string
	HTTPPort     string
	ReadTimeout  int
	WriteTimeout int
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SQLiteConfig struct {
	Path         string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	SecretKey     string
	TokenTTL      int // seconds
	AdminEmail    string
	AdminPassword string
}

type WhatsAppConfig struct {
	BaseURL     string
	PhoneNumber string
}

type CartConfig struct {
	Dir        string
	SessionTTL int // seconds, honored by the redis backend only
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:       getEnv("APP_ENV", "development"),
			HTTPPort:     getEnv("HTTP_PORT", ":3006"),
			ReadTimeout:  getEnvInt("HTTP_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("HTTP_WRITE_TIMEOUT", 15),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		SQLite: SQLiteConfig{
			Path:         getEnv("SQLITE_PATH", "data/storefront.db"),
			MaxOpenConns: getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
			MaxIdleConns: getEnvInt("SQLITE_MAX_IDLE_CONNS", 1),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			SecretKey:     getEnv("JWT_SECRET_KEY", "your-secret-key-change-this-in-prod"),
			TokenTTL:      getEnvInt("JWT_TOKEN_TTL", 86400),
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@localhost"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		WhatsApp: WhatsAppConfig{
			BaseURL:     getEnv("WHATSAPP_BASE_URL", "https://wa.me"),
			PhoneNumber: getEnv("WHATSAPP_NUMBER", ""),
		},
		Cart: CartConfig{
			Dir:        getEnv("CART_DIR", "data/carts"),
			SessionTTL: getEnvInt("CART_SESSION_TTL", 2592000),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
