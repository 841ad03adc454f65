package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // computed after load
	} `yaml:"server"`
	ML struct {
		BaseURL          string `yaml:"base_url"`
		TriageTimeoutSec int    `yaml:"triage_timeout_sec"` // classification call timeout
		MatchTimeoutSec  int    `yaml:"match_timeout_sec"`  // ranking call timeout, scales with candidate volume
		HealthTimeoutSec int    `yaml:"health_timeout_sec"`
		TopK             int    `yaml:"top_k"` // max ranked mentors per request
	} `yaml:"ml"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"` // computed after load
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // minutes
	} `yaml:"database"`
	Scheduler struct {
		HealthCheckIntervalSec int `yaml:"health_check_interval_sec"` // ML watchdog interval
	} `yaml:"scheduler"`
}

func Load() *Config {
	// Load .env first; missing file is fine, system env still applies.
	_ = godotenv.Load()

	var cfg Config

	if data, err := os.ReadFile("config.yaml"); err == nil {
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")

		cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

		// Secrets come from the environment, never from config.yaml.
		if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
			cfg.DB.Username = envUsername
		}
		if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
			cfg.DB.Password = envPassword
		}
		if envURL := os.Getenv("ML_SERVICE_URL"); envURL != "" {
			cfg.ML.BaseURL = envURL
		}

		applyDefaults(&cfg)

		if cfg.DB.DSN == "" {
			if cfg.DB.Charset == "" {
				cfg.DB.Charset = "utf8mb4"
			}
			cfg.DB.DSN = buildDSN(&cfg)
		}

		return &cfg
	}

	return loadFromEnv()
}

// loadFromEnv builds a minimal configuration when config.yaml is absent.
func loadFromEnv() *Config {
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	} else if cfg.DB.Host != "" {
		cfg.DB.DSN = buildDSN(&cfg)
	}

	if url := os.Getenv("ML_SERVICE_URL"); url != "" {
		cfg.ML.BaseURL = url
	}

	applyDefaults(&cfg)

	log.Println("Configuration loaded from environment variables, some settings may be missing")
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.ML.BaseURL == "" {
		cfg.ML.BaseURL = "http://localhost:8000"
	}
	if cfg.ML.TriageTimeoutSec <= 0 {
		cfg.ML.TriageTimeoutSec = 5
	}
	if cfg.ML.MatchTimeoutSec <= 0 {
		cfg.ML.MatchTimeoutSec = 10
	}
	if cfg.ML.HealthTimeoutSec <= 0 {
		cfg.ML.HealthTimeoutSec = 3
	}
	if cfg.ML.TopK <= 0 {
		cfg.ML.TopK = 5
	}
	if cfg.Scheduler.HealthCheckIntervalSec <= 0 {
		cfg.Scheduler.HealthCheckIntervalSec = 60
	}
}

func buildDSN(cfg *Config) string {
	parseTime := ""
	if cfg.DB.ParseTime {
		parseTime = "&parseTime=true"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Database,
		cfg.DB.Charset,
		parseTime)
}
