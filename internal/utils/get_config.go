package utils

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT"`
	AppURL       string `yaml:"APP_URL"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`
	DBLogSQL   bool   `yaml:"DB_LOG_SQL"`

	// Session configuration
	SessionSecret     string `yaml:"SESSION_SECRET"`
	SessionCookieName string `yaml:"SESSION_COOKIE_NAME"`
	CookieSecure      bool   `yaml:"COOKIE_SECURE"`

	// Food images
	ImagesDir         string `yaml:"IMAGES_DIR"`
	UnsplashAccessKey string `yaml:"UNSPLASH_ACCESS_KEY"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	AdminEmail       string `yaml:"ADMIN_EMAIL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	MetricsEnabled bool `yaml:"METRICS_ENABLED"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:           "3000",
		AppURL:            "http://localhost:3000",
		RateLimitMax:      20,
		DBDriver:          "sqlite",
		DBPath:            "yemek_platformu.db",
		DBPort:            "5432",
		SessionSecret:     "change-me",
		SessionCookieName: "yemek_session",
		ImagesDir:         "./images",
		SMTPPort:          "587",
	}
}

// LoadConfig reads the yaml file at path (a missing file is not an error) and then
// applies environment overrides for every key.
func LoadConfig(path string) Config {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("config file %s not read, using defaults and environment: %v", path, err)
	} else if err := yaml.Unmarshal(file, &cfg); err != nil {
		log.Errorf("error parsing YAML file %s: %v", path, err)
	}

	cfg.applyEnv()
	config = cfg
	return cfg
}

func (c *Config) stringFields() map[string]*string {
	return map[string]*string{
		"APP_PORT":            &c.AppPort,
		"APP_URL":             &c.AppURL,
		"DB_DRIVER":           &c.DBDriver,
		"DB_USER":             &c.DBUser,
		"DB_NAME":             &c.DBName,
		"DB_PASSWORD":         &c.DBPassword,
		"DB_PORT":             &c.DBPort,
		"DB_HOST":             &c.DBHost,
		"DB_PATH":             &c.DBPath,
		"SESSION_SECRET":      &c.SessionSecret,
		"SESSION_COOKIE_NAME": &c.SessionCookieName,
		"IMAGES_DIR":          &c.ImagesDir,
		"UNSPLASH_ACCESS_KEY": &c.UnsplashAccessKey,
		"SMTP_HOST":           &c.SMTPHost,
		"SMTP_PORT":           &c.SMTPPort,
		"SMTP_SENDER_NAME":    &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":     &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":  &c.SMTPAuthPassword,
		"ADMIN_EMAIL":         &c.AdminEmail,
		"AWS_S3_BUCKET":       &c.AWSS3Bucket,
		"AWS_S3_REGION":       &c.AWSS3Region,
		"AWS_ACCESS_KEY":      &c.AWSAccessKey,
		"AWS_SECRET_KEY":      &c.AWSSecretKey,
	}
}

func (c *Config) boolFields() map[string]*bool {
	return map[string]*bool{
		"DB_LOG_SQL":      &c.DBLogSQL,
		"COOKIE_SECURE":   &c.CookieSecure,
		"METRICS_ENABLED": &c.MetricsEnabled,
	}
}

func (c *Config) applyEnv() {
	for key, field := range c.stringFields() {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}
	for key, field := range c.boolFields() {
		if v, ok := os.LookupEnv(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				log.Warnf("ignoring %s=%q: %v", key, v, err)
				continue
			}
			*field = b
		}
	}
	if v, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Warnf("ignoring RATE_LIMIT_MAX=%q: %v", v, err)
			return
		}
		c.RateLimitMax = n
	}
}

// GetConfig returns the value of key from the most recently loaded configuration.
func GetConfig(key string) string {
	cfg := config
	if field, ok := cfg.stringFields()[key]; ok {
		return *field
	}
	if field, ok := cfg.boolFields()[key]; ok {
		return strconv.FormatBool(*field)
	}
	if key == "RATE_LIMIT_MAX" {
		return strconv.Itoa(cfg.RateLimitMax)
	}
	return ""
}
