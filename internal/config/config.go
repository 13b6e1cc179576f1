package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	JWTSecret      string
	SkipAuth       bool
	Environment    string
	AppId          string
	StorageBackend string // "memory" (default) or "mongo"
	MongoURI       string
	DBName         string
	OpenAIKey      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:           getEnv("PORT", "5000"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		SkipAuth:       getEnv("SKIP_AUTH", "false") == "true",
		Environment:    getEnv("ENVIRONMENT", "development"),
		AppId:          getEnv("APP_ID", "livpulse"),
		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "livpulse"),
		OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
