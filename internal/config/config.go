package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultJWTSecret is only suitable for local development.
const DefaultJWTSecret = "supersecretkey"

// Acknowledgement store backends.
const (
	AckStoreMemory = "memory"
	AckStoreMongo  = "mongo"
)

// Config holds the application configuration.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	JWTSecret      string
	TokenExpiry    time.Duration
	Location       *time.Location
	AllowedOrigins []string
	AckStore       string
	LogLevel       string
	NudgesEnabled  bool

	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPPassword string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, reading configuration from environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment only.
func FromEnv() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "wellness"),
		JWTSecret:      getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenExpiry:    72 * time.Hour,
		Location:       time.Local,
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		AckStore:       strings.ToLower(getEnv("REMINDER_ACK_STORE", AckStoreMemory)),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		NudgesEnabled:  true,

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPSender:   os.Getenv("SMTP_SENDER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}

	if v := os.Getenv("TOKEN_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			logrus.WithError(err).WithField("value", v).Warn("Invalid TOKEN_EXPIRY, using default")
		} else {
			cfg.TokenExpiry = d
		}
	}

	if v := os.Getenv("TIMEZONE"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			logrus.WithError(err).WithField("value", v).Warn("Invalid TIMEZONE, using local time")
		} else {
			cfg.Location = loc
		}
	}

	if v := os.Getenv("NUDGES_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			logrus.WithError(err).WithField("value", v).Warn("Invalid NUDGES_ENABLED, keeping nudges on")
		} else {
			cfg.NudgesEnabled = enabled
		}
	}

	if cfg.AckStore != AckStoreMongo {
		cfg.AckStore = AckStoreMemory
	}

	if cfg.UsingDefaultSecret() {
		logrus.Warn("JWT_SECRET is not set, tokens are signed with the public development secret")
	}

	return cfg
}

// SMTPConfigured reports whether nudges can also be emailed.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPSender != ""
}

// UsingDefaultSecret reports whether tokens are signed with DefaultJWTSecret.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
