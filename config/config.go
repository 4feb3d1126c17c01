package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/cybercell/cybercrime-portal-api/models"
)

// Config holds the project config values
type Config struct {
	BaseURL        string
	Port           string
	Env            string
	JWTSecret      string
	SharedPassword string
	SessionStore   string
	URL            string
	DatabaseName   string
	RedisURL       string
	SendgridAPIKey string
	AckEmailFrom   string
}

// New sets up all config related services
func New() *Config {
	env := getEnv("APP_ENV", "local")

	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		BaseURL:        os.Getenv("BASE_URL"),
		Port:           getEnv("PORT", "8080"),
		Env:            env,
		JWTSecret:      getEnv("JWT_SECRET", "portal-dev-secret"),
		SharedPassword: getEnv("PORTAL_SHARED_PASSWORD", "password123"),
		SessionStore:   getEnv("SESSION_STORE", "memory"),
		URL:            os.Getenv("DB_URI"),
		DatabaseName:   os.Getenv("DB_NAME"),
		RedisURL:       os.Getenv("REDIS_URL"),
		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		AckEmailFrom:   os.Getenv("ACK_EMAIL_FROM"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// setLogger picks the zap logger for the given environment
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: message, Error: fmt.Sprint(err)}})
	w.Write(b)
}
