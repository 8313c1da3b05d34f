package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Dict    DictConfig
	Storage StorageConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string // "development" or "production"
}

// GameConfig holds game-related configuration
type GameConfig struct {
	MaxRounds      int
	RoundInterval  time.Duration
	MinPlayers     int
	RoomCodeLength int
}

// DictConfig holds dictionary lookup configuration
type DictConfig struct {
	BaseURL       string
	LookupTimeout time.Duration
}

// StorageConfig holds room snapshot storage configuration
type StorageConfig struct {
	Path string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3001"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),
		},
		Game: GameConfig{
			MaxRounds:      getEnvInt("MAX_ROUNDS", 10),
			RoundInterval:  time.Duration(getEnvInt("ROUND_INTERVAL_SECONDS", 30)) * time.Second,
			MinPlayers:     getEnvInt("MIN_PLAYERS", 2),
			RoomCodeLength: getEnvInt("ROOM_CODE_LENGTH", 6),
		},
		Dict: DictConfig{
			BaseURL:       getEnv("DICT_BASE_URL", "https://sozluk.gov.tr"),
			LookupTimeout: time.Duration(getEnvInt("DICT_TIMEOUT_SECONDS", 4)) * time.Second,
		},
		Storage: StorageConfig{
			Path: getEnv("DB_PATH", "./data/rooms.db"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
