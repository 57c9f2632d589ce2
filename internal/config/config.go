package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	AppPort           string
	AppEnv            string
	PaystackBaseURL   string
	PaystackSecretKey string
	UseMockGateway    bool
}

const defaultPaystackBaseURL = "https://api.paystack.co"

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		AppPort:           os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		PaystackBaseURL:   os.Getenv("PAYSTACK_API_BASE_URL"),
		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		UseMockGateway:    os.Getenv("USE_MOCK_GATEWAY") == "true",
	}

	if cfg.PaystackBaseURL == "" {
		cfg.PaystackBaseURL = defaultPaystackBaseURL
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8000"
	}

	if cfg.PaystackSecretKey == "" && !cfg.UseMockGateway {
		log.Fatal("PAYSTACK_SECRET_KEY must be set unless USE_MOCK_GATEWAY=true")
	}

	return cfg
}
