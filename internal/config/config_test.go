package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmatos/gamewatch/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                ":8080",
		DocPath:             "data/games.json",
		LogLevel:            "INFO",
		ListRefreshSeconds:  30,
		DetailRefreshMillis: 250,
		SuggestedLimit:      6,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_NoDocumentSource(t *testing.T) {
	cfg := validConfig()
	cfg.DocPath = ""
	cfg.DocURL = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DOC_PATH or DOC_URL")
}

func TestValidate_URLOnlyIsFine(t *testing.T) {
	cfg := validConfig()
	cfg.DocPath = ""
	cfg.DocURL = "https://example.com/games.json"

	assert.NoError(t, cfg.Validate())
}

func TestValidate_RefreshIntervals(t *testing.T) {
	cfg := validConfig()
	cfg.ListRefreshSeconds = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.DetailRefreshMillis = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_SuggestedLimit(t *testing.T) {
	cfg := validConfig()
	cfg.SuggestedLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data/games.json", cfg.DocPath)
	assert.Equal(t, 30, cfg.ListRefreshSeconds)
	assert.Equal(t, 250, cfg.DetailRefreshMillis)
	assert.Equal(t, 6, cfg.SuggestedLimit)
}
