package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBDialect  string // postgres, mysql or sqlite
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	AIApiURL  string // OpenAI-compatible chat completions endpoint
	AIApiKey  string
	AIModel   string
	AITimeout int // seconds

	SendGridKey string
	EmailSender string

	PathsDailyLimit int // default learning paths generated per user per day
	CardsDailyLimit int // default cards generated per user per day
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBDialect:  getEnv("DB_DIALECT", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "zero_ai"),
		DBPort:     getEnv("DB_PORT", "5432"),

		AIApiURL:  getEnv("AI_API_URL", "https://api.openai.com/v1/chat/completions"),
		AIApiKey:  getEnv("AI_API_KEY", ""),
		AIModel:   getEnv("AI_MODEL", "gpt-4o-mini"),
		AITimeout: getEnvInt("AI_TIMEOUT_SECONDS", 120),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "noreply@zero-ai.app"),

		PathsDailyLimit: getEnvInt("PATHS_DAILY_LIMIT", 5),
		CardsDailyLimit: getEnvInt("CARDS_DAILY_LIMIT", 20),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AIApiKey == "" {
		log.Println("Warning: AI_API_KEY not set. AI learning path generation will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
