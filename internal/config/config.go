package config

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "secret"

type Config struct {
	Port        string
	AppEnv      string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	JWTExpire   time.Duration
	FrontendURL string // comma separated CORS allowlist
	LogLevel    string

	GoogleClientID string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string

	AuthRateLimit  int
	AuthRateWindow time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "sorte")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRE_HOURS", 24)
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CLOUDINARY_UPLOAD_FOLDER", "sorte")
	v.SetDefault("AUTH_RATE_LIMIT", 20)
	v.SetDefault("AUTH_RATE_WINDOW", "1m")

	return &Config{
		Port:        v.GetString("PORT"),
		AppEnv:      v.GetString("APP_ENV"),
		MongoURI:    v.GetString("MONGO_URI"),
		MongoDB:     v.GetString("MONGO_DB"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTExpire:   time.Duration(v.GetInt("JWT_EXPIRE_HOURS")) * time.Hour,
		FrontendURL: v.GetString("FRONTEND_URL"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		GoogleClientID: v.GetString("GOOGLE_CLIENT_ID"),

		CloudinaryCloudName:    v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    v.GetString("CLOUDINARY_API_SECRET"),
		CloudinaryUploadFolder: v.GetString("CLOUDINARY_UPLOAD_FOLDER"),

		AuthRateLimit:  v.GetInt("AUTH_RATE_LIMIT"),
		AuthRateWindow: v.GetDuration("AUTH_RATE_WINDOW"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate rejects settings that are only acceptable during development.
func (c *Config) Validate() error {
	if c.IsProduction() && c.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWTExpire <= 0 {
		return errors.New("JWT_EXPIRE_HOURS must be positive")
	}
	return nil
}
