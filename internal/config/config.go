package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	LogLevel     string
	SQLitePath   string
	DatabaseURL  string
	JWTSecret    []byte
	KafkaAddress string
	ESURL        string
	ESUser       string
	ESPassword   string
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

func getenv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// Load reads .env when present, then the environment. Only JWT_SECRET is
// required; Kafka and Elasticsearch stay disabled when unset.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		Port:         getenv("SERVER_PORT", "8080"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		SQLitePath:   getenv("SQLITE_PATH", "storefront.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    []byte(must(os.Getenv("JWT_SECRET"), "JWT_SECRET")),
		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),
	}
}
