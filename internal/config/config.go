package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Postgres   Postgres   `yaml:"postgres"`
	Minio      Minio      `yaml:"minio"`
	Static     Static     `yaml:"static"`
}

type HTTPServer struct {
	Host        string        `yaml:"host" env:"HOST" env-default:""`
	Port        string        `yaml:"port" env:"PORT" env-default:"3000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func (h HTTPServer) Address() string {
	return net.JoinHostPort(h.Host, h.Port)
}

type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	DataFile   string `yaml:"data_file" env:"DATA_FILE" env-default:"data.json"`
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"tracker.db"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB"`
}

type Minio struct {
	Enabled   bool   `yaml:"enabled" env:"MINIO_ENABLED"`
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT" env-default:"minio:9000"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL"`
	Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"tracker-snapshots"`
	Object    string `yaml:"object" env:"MINIO_OBJECT" env-default:"data.json"`
}

type Static struct {
	Dir string `yaml:"dir" env:"STATIC_DIR" env-default:"frontend"`
}

// Load reads the YAML file at path, if any, then applies the environment.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	switch cfg.Storage.Driver {
	case DriverFile, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Can not load config: %s", err)
	}
	return cfg
}
