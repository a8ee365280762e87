package config

import (
	"os"
	"strconv"
)

type Config struct {
	Addr        string
	Env         string
	DatabaseURL string
	JWTSecret   string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
	EmailTo   string
}

func Load() Config {
	addr := os.Getenv("STOREFRONT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			smtpPort = p
		}
	}

	return Config{
		Addr:        addr,
		Env:         env,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SMTPHost:    smtpHost,
		SMTPPort:    smtpPort,
		EmailUser:   os.Getenv("EMAIL_USER"),
		EmailPass:   os.Getenv("EMAIL_PASS"),
		EmailTo:     os.Getenv("EMAIL_TO"),
	}
}

// IsProduction reports whether the app runs with production settings
// (secure cookies, real SMTP expected).
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
