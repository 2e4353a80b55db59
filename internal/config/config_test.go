package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DOCUMENTS_DIR", "/srv/docs")
	t.Setenv("LIST_MODE", "STRICT")
	t.Setenv("LIST_CONCURRENCY", "4")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/docs", cfg.Storage.DocumentsDir)
	assert.Equal(t, "maps", cfg.Storage.MapsDir)
	assert.Equal(t, ListModeStrict, cfg.Listing.Mode)
	assert.Equal(t, 4, cfg.Listing.Concurrency)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DOCUMENTS_DIR", "MAPS_DIR", "PUBLIC_DIR", "LIST_MODE", "LIST_CONCURRENCY", "BODY_LIMIT_MB"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "files", cfg.Storage.DocumentsDir)
	assert.Equal(t, "maps", cfg.Storage.MapsDir)
	assert.Equal(t, "public", cfg.Storage.PublicDir)
	assert.Equal(t, ListModePartial, cfg.Listing.Mode)
	assert.Equal(t, 0, cfg.Listing.Concurrency)
	assert.Equal(t, 32*1024*1024, cfg.BodyLimit())
}

func TestParseListMode(t *testing.T) {
	assert.Equal(t, ListModeStrict, parseListMode("strict"))
	assert.Equal(t, ListModeStrict, parseListMode(" Strict "))
	assert.Equal(t, ListModePartial, parseListMode("partial"))
	assert.Equal(t, ListModePartial, parseListMode("bogus"))
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.Local, (&AppConfig{Timezone: "Local"}).Location())
	assert.Equal(t, time.Local, (&AppConfig{Timezone: "Not/AZone"}).Location())
	assert.Equal(t, "UTC", (&AppConfig{Timezone: "UTC"}).Location().String())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
