package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host          string
	Port          int
	AllowOrigins  []string
	LogLevel      string
	LogFile       string
	MaxUploadMB   int
	SessionTTLMin int
	CatalogPath   string // optional: preload a shared catalog at startup
}

func Load() Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	ttl, _ := strconv.Atoi(getenv("SESSION_TTL_MIN", "240"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:          getenv("HOST", "127.0.0.1"),
		Port:          port,
		AllowOrigins:  origins,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFile:       getenv("LOG_FILE", "logs/replenish-service.log"),
		MaxUploadMB:   mb,
		SessionTTLMin: ttl,
		CatalogPath:   getenv("CATALOG_PATH", ""),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
