package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverNone     = "none"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSheets   = "sheets"
)

type Config struct {
	Server struct {
		Port    int    `yaml:"port"`
		BaseURL string `yaml:"baseURL"`
	} `yaml:"server"`

	OpenAI struct {
		APIKey         string `yaml:"apiKey"`
		Model          string `yaml:"model"`
		MaxTokens      int    `yaml:"maxTokens"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"openai"`

	Store struct {
		Driver string `yaml:"driver"` // none | mysql | postgres | sheets

		Database struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			Name     string `yaml:"name"`
			SSLMode  string `yaml:"sslMode"`
		} `yaml:"database"`

		Sheets struct {
			SpreadsheetID   string `yaml:"spreadsheetId"`
			SheetName       string `yaml:"sheetName"`
			CredentialsFile string `yaml:"credentialsFile"`
		} `yaml:"sheets"`
	} `yaml:"store"`

	Minio struct {
		Enabled    bool   `yaml:"enabled"`
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`
}

// Load reads the yaml config and applies env overrides for secrets. API keys
// are never hard-coded; OPENAI_API_KEY always wins over the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverNone
	}
	if cfg.OpenAI.MaxTokens == 0 {
		cfg.OpenAI.MaxTokens = 1000
	}
	if cfg.OpenAI.TimeoutSeconds == 0 {
		cfg.OpenAI.TimeoutSeconds = 60
	}
	if cfg.RateLimit.Capacity == 0 {
		cfg.RateLimit.Capacity = 10
	}
	if cfg.RateLimit.RefillRate == 0 {
		cfg.RateLimit.RefillRate = 1
	}

	switch cfg.Store.Driver {
	case DriverNone, DriverMySQL, DriverPostgres, DriverSheets:
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}

	return &cfg, nil
}

// MySQLDSN builds the DSN for the MySQL record store.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Store.Database.User,
		c.Store.Database.Password,
		c.Store.Database.Host,
		c.Store.Database.Port,
		c.Store.Database.Name,
	)
}

// PostgresDSN builds the DSN for the Postgres record store.
func (c *Config) PostgresDSN() string {
	sslMode := c.Store.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Store.Database.Host,
		c.Store.Database.Port,
		c.Store.Database.User,
		c.Store.Database.Password,
		c.Store.Database.Name,
		sslMode,
	)
}
