package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	DBDriver string // sqlite, mysql, postgres or memory
	DBDSN    string // file path for sqlite, driver DSN otherwise

	// Course service
	CourseServiceURL   string        // e.g. "http://localhost:2020"
	CourseCheckTimeout time.Duration // bound on one existence lookup

	// Optional Redis cache for course lookups; empty address disables it.
	RedisAddr      string
	RedisPassword  string
	CourseCacheTTL time.Duration

	// ListEmptyAsNotFound answers 404 instead of 200 [] for empty lists.
	ListEmptyAsNotFound bool
}

// fileConfig mirrors the optional YAML file named by CONFIG_FILE.
// Environment variables override anything set here.
type fileConfig struct {
	Server struct {
		Address         string `yaml:"address"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`
	CourseService struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"course_service"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"redis"`
	ListEmptyAsNotFound *bool `yaml:"list_empty_as_not_found"`
}

// Load reads .env (if present), the optional YAML file and the
// environment. Invalid values stop the process.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the current environment without touching
// .env files.
func FromEnv() (*Config, error) {
	var file fileConfig
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	listEmptyDefault := true
	if file.ListEmptyAsNotFound != nil {
		listEmptyDefault = *file.ListEmptyAsNotFound
	}

	p := parser{}
	cfg := &Config{
		ServerAddress:       getenvDefault("SERVER_ADDRESS", or(file.Server.Address, ":3000")),
		ShutdownTimeout:     p.duration("SHUTDOWN_TIMEOUT", or(file.Server.ShutdownTimeout, "10s")),
		DBDriver:            getenvDefault("DB_DRIVER", or(file.Database.Driver, "sqlite")),
		DBDSN:               getenvDefault("DB_DSN", or(file.Database.DSN, "questions.db")),
		CourseServiceURL:    getenvDefault("COURSE_SERVICE_URL", or(file.CourseService.URL, "http://localhost:2020")),
		CourseCheckTimeout:  p.duration("COURSE_CHECK_TIMEOUT", or(file.CourseService.Timeout, "5s")),
		RedisAddr:           getenvDefault("REDIS_ADDR", file.Redis.Addr),
		RedisPassword:       getenvDefault("REDIS_PASSWORD", file.Redis.Password),
		CourseCacheTTL:      p.duration("COURSE_CACHE_TTL", or(file.Redis.CacheTTL, "1m")),
		ListEmptyAsNotFound: p.boolean("LIST_EMPTY_AS_NOT_FOUND", listEmptyDefault),
	}
	if p.err != nil {
		return nil, p.err
	}

	switch cfg.DBDriver {
	case "sqlite", "mysql", "postgres", "memory":
	default:
		return nil, fmt.Errorf("DB_DRIVER=%q is not one of sqlite, mysql, postgres, memory", cfg.DBDriver)
	}
	if cfg.CourseCheckTimeout <= 0 {
		return nil, fmt.Errorf("COURSE_CHECK_TIMEOUT must be positive, got %s", cfg.CourseCheckTimeout)
	}

	return cfg, nil
}

// parser keeps the first conversion error so FromEnv can report it once.
type parser struct {
	err error
}

func (p *parser) duration(k, fallback string) time.Duration {
	v := getenvDefault(k, fallback)
	d, err := time.ParseDuration(v)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s=%q is not a valid duration: %w", k, v, err)
	}
	return d
}

func (p *parser) boolean(k string, fallback bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s=%q is not a valid boolean: %w", k, v, err)
	}
	return b
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
