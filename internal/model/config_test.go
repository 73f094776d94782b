package model_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmai/taskboard/internal/model"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Auth.LoginDelayMs)
	assert.Equal(t, 2000, cfg.Auth.RegisterDelayMs)
	assert.Equal(t, 2000, cfg.Auth.ResetDelayMs)
	assert.Equal(t, "default", cfg.Display.Theme)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &model.AppConfig{
		DataDir: "/tmp/taskboard-test",
		Auth: model.AuthConfig{
			LoginDelayMs:    10,
			RegisterDelayMs: 20,
			ResetDelayMs:    30,
		},
		Display: model.DisplayConfig{Theme: "dark"},
	}

	require.NoError(t, model.SaveConfig(path, cfg))

	loaded, err := model.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/taskboard-test", loaded.DataDir)
	assert.Equal(t, 10, loaded.Auth.LoginDelayMs)
	assert.Equal(t, 20, loaded.Auth.RegisterDelayMs)
	assert.Equal(t, 30, loaded.Auth.ResetDelayMs)
	assert.Equal(t, "dark", loaded.Display.Theme)
}
