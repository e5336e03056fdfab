package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"prod"`
	ErrorLogPath string `yaml:"error_log_path" env:"ERROR_LOG_PATH" env-default:"errors.log"`
	HTTPServer   `yaml:"http_server"`
	CORS         CORS     `yaml:"cors"`
	Embed        Embed    `yaml:"embed"`
	Sessions     Sessions `yaml:"sessions"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}

// Embed describes the iframe snippet handed to host pages.
type Embed struct {
	Origin         string   `yaml:"origin" env:"EMBED_ORIGIN" env-default:"https://teacher-salary-wine.vercel.app"`
	Height         int      `yaml:"height" env-default:"650"`
	Title          string   `yaml:"title" env-default:"Widget tính lương giáo viên"`
	FrameAncestors []string `yaml:"frame_ancestors" env:"EMBED_FRAME_ANCESTORS" env-separator:","`
}

type Sessions struct {
	IdleTTL   time.Duration `yaml:"idle_ttl" env:"SESSION_IDLE_TTL" env-default:"30m"`
	PurgeSpec string        `yaml:"purge_spec" env:"SESSION_PURGE_SPEC" env-default:"@every 5m"`
}

// MustConfig loads .env (if any), then the YAML file at CONFIG_PATH with
// environment overrides. Any error is fatal.
func MustConfig() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads the config file at path. A missing file is not an error: the
// environment and the defaults are used instead.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
