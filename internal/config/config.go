package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// ListModePartial reports a row for every document and annotates the ones that failed.
	ListModePartial = "partial"
	// ListModeStrict fails the whole listing on the first document that cannot be read.
	ListModeStrict = "strict"
)

// StorageConfig holds the on-disk locations used by the service.
type StorageConfig struct {
	DocumentsDir string
	MapsDir      string
	PublicDir    string
}

// ListingConfig controls how the document listing fans out.
type ListingConfig struct {
	Mode        string
	Concurrency int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	Timezone    string
	BodyLimitMB int
	Storage     StorageConfig
	Listing     ListingConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:        getEnv("PORT", "3000"),
		Timezone:    getEnv("APP_TIMEZONE", "Local"),
		BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 32),
		Storage: StorageConfig{
			DocumentsDir: getEnv("DOCUMENTS_DIR", "files"),
			MapsDir:      getEnv("MAPS_DIR", "maps"),
			PublicDir:    getEnv("PUBLIC_DIR", "public"),
		},
		Listing: ListingConfig{
			Mode:        parseListMode(getEnv("LIST_MODE", ListModePartial)),
			Concurrency: getEnvInt("LIST_CONCURRENCY", 0),
		},
	}
}

// Location resolves the configured time zone, falling back to the host zone.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// BodyLimit returns the HTTP body limit in bytes.
func (c *AppConfig) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 32 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

func parseListMode(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), ListModeStrict) {
		return ListModeStrict
	}
	return ListModePartial
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
