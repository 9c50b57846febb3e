package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		// Driver selects the gorm dialect: postgres, mysql or sqlite.
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		// TTL is the access-token lifetime in minutes.
		TTL int `yaml:"ttl"`
	} `yaml:"jwt"`

	Storage struct {
		// BasePath is the root of the image tree; category directories
		// (food, drink, logo, background, profile_image) live under it.
		BasePath string `yaml:"base_path"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"storage"`

	Upload struct {
		// MaxSize is the per-file upload limit in bytes.
		MaxSize int64 `yaml:"max_size"`
	} `yaml:"upload"`

	// PublicBaseURL is used in outbound mail (verification links).
	PublicBaseURL string `yaml:"public_base_url"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds a config from environment
// variables when DATABASE_URL is set (the test path).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.Driver = envOr("DATABASE_DRIVER", "postgres")
	cfg.Database.DSN = dbURL
	cfg.Server.Env = envOr("SERVER_ENV", "development")
	cfg.Server.Port, _ = strconv.Atoi(envOr("SERVER_PORT", "8000"))
	cfg.JWT.Secret = envOr("JWT_SECRET", "test-secret")
	cfg.JWT.TTL = 60

	cfg.Email.FromEmail = "no-reply@niddle.test"
	cfg.Email.FromName = "Niddle"

	cfg.Storage.BasePath = "./static/images"
	cfg.Storage.BaseURL = "/api/v1/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./static/images"
	}
	if cfg.Upload.MaxSize <= 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://127.0.0.1:8000"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetConfig returns the loaded config, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
