package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Log holds the logging settings shared by every binary.
type Log struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Format     string `env:"LOG_FORMAT" envDefault:"text"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"14"`
}

type Restaurant struct {
	Log

	Port        string `env:"PORT" envDefault:"3333"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisAddr   string `env:"REDIS_ADDR"`
	KafkaBroker string `env:"KAFKA_BROKER"`
	AuditTopic  string `env:"KAFKA_AUDIT_TOPIC" envDefault:"restaurant-audit"`

	JWTPrivateKey string        `env:"JWT_PRIVATE_KEY_RESTAURANT,required"`
	JWTPublicKey  string        `env:"JWT_PUBLIC_KEY_RESTAURANT,required"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	AWSRegion          string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string        `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY"`
	AWSBucket          string        `env:"AWS_BUCKET" envDefault:"kuchi-images"`
	AWSEndpoint        string        `env:"AWS_ENDPOINT"`
	SignedURLTTL       time.Duration `env:"SIGNED_URL_TTL" envDefault:"1h"`

	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH"`

	MenuBaseURL string `env:"MENU_BASE_URL" envDefault:"http://localhost:3000/menu"`
}

// FederatedSignIn reports whether Firebase credentials were supplied.
func (c Restaurant) FederatedSignIn() bool {
	return c.FirebaseProjectID != "" && c.FirebaseCredentialsPath != ""
}

type Activity struct {
	Log

	RedisAddr   string        `env:"REDIS_ADDR,required"`
	KafkaBroker string        `env:"KAFKA_BROKER,required"`
	AuditTopic  string        `env:"KAFKA_AUDIT_TOPIC" envDefault:"restaurant-audit"`
	GroupID     string        `env:"KAFKA_GROUP_ID" envDefault:"activity-svc"`
	Retention   time.Duration `env:"ACTIVITY_RETENTION" envDefault:"720h"`
	RecentLimit int64         `env:"ACTIVITY_RECENT_LIMIT" envDefault:"50"`
}

// Load reads an optional env file (ENV_FILE, default .env) into the process
// environment and then parses dst.
func Load(dst any) error {
	file := os.Getenv("ENV_FILE")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", file, err)
	}
	if err := env.Parse(dst); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
