package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server Server `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB Configuration (attachment storage)
	MongoDB MongoDBConfig `json:"mongodb"`

	// NATS Configuration (change feed)
	NATS NATSConfig `json:"nats"`

	// Session Configuration (client session behavior)
	Session SessionConfig `json:"session"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// Server contains server-related configuration
type Server struct {
	Host             string `json:"host"`
	MediaServicePort string `json:"media_service_port"`
	MediaBaseURL     string `json:"media_base_url"`
	ReadTimeout      int    `json:"read_timeout"`
	WriteTimeout     int    `json:"write_timeout"`
	Environment      string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// MongoDBConfig contains MongoDB connection configuration (GridFS attachments)
type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// NATSConfig contains NATS connection configuration for the change feed
type NATSConfig struct {
	URL           string `json:"url"`
	SubjectPrefix string `json:"subject_prefix"`
}

// SessionConfig contains chat session behavior configuration
type SessionConfig struct {
	TypingTTLSeconds int   `json:"typing_ttl_seconds"` // typing indicator lifetime
	MaxUploadBytes   int64 `json:"max_upload_bytes"`   // attachment size cap
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, text
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

// LoadConfig builds a Config from environment variables with defaults
// suitable for local development. Mains call godotenv.Load first.
func LoadConfig() *Config {
	cfg := &Config{
		Server: Server{
			Host:             getEnv("SERVER_HOST", "localhost"),
			MediaServicePort: getEnv("MEDIA_SERVICE_PORT", "8080"),
			ReadTimeout:      getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:     getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:      getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "chatty"),
			Password:     getEnv("MYSQL_PASSWORD", "chatty123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "chatty"),
			MaxOpenConns: getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", "admin"),
			Password: getEnv("MONGO_PASSWORD", "admin123"),
			Database: getEnv("MONGO_DATABASE", "chatty"),
		},
		NATS: NATSConfig{
			URL:           getEnv("NATS_URL", "nats://localhost:4222"),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "chatty.changes"),
		},
		Session: SessionConfig{
			TypingTTLSeconds: getEnvInt("TYPING_TTL_SECONDS", 3),
			MaxUploadBytes:   getEnvInt64("MAX_UPLOAD_BYTES", 10*1024*1024),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "text"),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
		},
	}

	if cfg.Server.MediaBaseURL = os.Getenv("MEDIA_BASE_URL"); cfg.Server.MediaBaseURL == "" {
		cfg.Server.MediaBaseURL = fmt.Sprintf("http://%s:%s/media", cfg.Server.Host, cfg.Server.MediaServicePort)
	}

	return cfg
}

// DSN builds the MySQL connection string from the database configuration
func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// GetMongoURI builds the MongoDB connection string
func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
	)
}

// TypingTTL returns the typing indicator lifetime as a duration
func (cfg *Config) TypingTTL() time.Duration {
	return time.Duration(cfg.Session.TypingTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
