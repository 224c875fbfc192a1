package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
	// RO rejects every non-GET request.
	Mode string
	// Browser origins allowed by CORS; empty disables it.
	AllowOrigins []string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	Prefix   string
	TTL      time.Duration
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Catalog struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

// Ratings provider is optional: an empty APIKey disables it.
type Ratings struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Session struct {
	TTL         time.Duration
	PoolSize    int
	PageCeiling int
}

type MovieCache struct {
	Freshness time.Duration
}

type Auth struct {
	Secret    string
	AdminCode string
	TokenTTL  time.Duration
}

type RabbitMQ struct {
	URL         string
	Queue       string
	DialTimeout time.Duration
}

type Config struct {
	HTTP       HTTPServer
	Redis      RedisCache
	Postgres   Postgres
	Catalog    Catalog
	Ratings    Ratings
	Session    Session
	MovieCache MovieCache
	Auth       Auth
	RabbitMQ   RabbitMQ
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()
	log.Printf("%s backend config : %+v\n", logtag, cfg.redacted())
	return cfg
}

// FromEnv builds the config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		HTTP:       *newHTTP(),
		Redis:      *newRedis(),
		Postgres:   *newPostgres(),
		Catalog:    *newCatalog(),
		Ratings:    *newRatings(),
		Session:    *newSession(),
		MovieCache: *newMovieCache(),
		Auth:       *newAuth(),
		RabbitMQ:   *newRabbitMQ(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:         getenv("HTTP_PORT", "8080"),
		Host:         getenv("HTTP_HOST", "localhost"),
		Mode:         getenv("HTTP_MODE", "RW"),
		AllowOrigins: getlist("HTTP_CORS_ORIGINS", "*"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
		Prefix:   getenv("REDIS_CATALOG_PREFIX", "catalog"),
		TTL:      getduration("REDIS_CATALOG_TTL", time.Hour),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "test"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		BaseURL:     getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		AccessToken: getenv("TMDB_API_READ_ACCESS_TOKEN", ""),
		Timeout:     getduration("TMDB_TIMEOUT", 10*time.Second),
	}
}

func newRatings() *Ratings {
	return &Ratings{
		BaseURL: getenv("OMDB_BASE_URL", "https://www.omdbapi.com"),
		APIKey:  getenv("OMDB_API_KEY", ""),
		Timeout: getduration("OMDB_TIMEOUT", 5*time.Second),
	}
}

func newSession() *Session {
	return &Session{
		TTL:         getduration("SESSION_TTL", 2*time.Hour),
		PoolSize:    getint("SESSION_POOL_SIZE", 50),
		PageCeiling: getint("SESSION_POOL_PAGE_CEILING", 10),
	}
}

func newMovieCache() *MovieCache {
	return &MovieCache{
		Freshness: getduration("MOVIE_CACHE_FRESHNESS", 24*time.Hour),
	}
}

func newAuth() *Auth {
	return &Auth{
		Secret:    getenv("AUTH_SECRET", "shared"),
		AdminCode: getenv("ADMIN_SECRET", "shared"),
		TokenTTL:  getduration("AUTH_TOKEN_TTL", 24*time.Hour),
	}
}

func newRabbitMQ() *RabbitMQ {
	return &RabbitMQ{
		URL:         getenv("RABBITMQ_URL", ""),
		Queue:       getenv("RABBITMQ_MATCH_QUEUE", "session.matched"),
		DialTimeout: getduration("RABBITMQ_DIAL_TIMEOUT", 3*time.Second),
	}
}

func (c Config) redacted() Config {
	const hidden = "***"
	if c.Postgres.Password != "" {
		c.Postgres.Password = hidden
	}
	if c.Redis.Password != "" {
		c.Redis.Password = hidden
	}
	if c.Catalog.AccessToken != "" {
		c.Catalog.AccessToken = hidden
	}
	if c.Ratings.APIKey != "" {
		c.Ratings.APIKey = hidden
	}
	c.Auth.Secret = hidden
	c.Auth.AdminCode = hidden
	return c
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s is set\n", logtag, key)
	return val
}

func getlist(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getenv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getint(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		fmt.Printf("%s %s = %q is not a positive int. Using default value %d\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		fmt.Printf("%s %s = %q is not a duration. Using default value %s\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}
