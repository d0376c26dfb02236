package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portanav/internal/config"
)

func TestCaptionsFor_ConfigOverridesLocale(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "de"
	cfg.Display.DefaultTitle = "HackRF"

	c, cat, err := captionsFor(cfg)
	require.NoError(t, err)
	assert.True(t, cat.Supported())
	assert.Equal(t, "HackRF", c.DefaultTitle)
	assert.Equal(t, "[Foto]", c.Camera)
	assert.Equal(t, "[Ruhe]", c.Sleep)
	assert.Equal(t, " < ", c.BackEnabled)
}

func TestCaptionsFor_BadLocale(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "not a locale!"
	_, _, err := captionsFor(cfg)
	assert.Error(t, err)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	for _, k := range []string{"PORTANAV_LOCALE", "PORTANAV_MAX_DEPTH", "PORTANAV_SNAPSHOT_DIR", "PORTANAV_LOG_FILE", "PORTANAV_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfgFile = filepath.Join(t.TempDir(), "missing.toml")
	t.Cleanup(func() { cfgFile = "" })

	require.NoError(t, rootCmd.Flags().Set("max-depth", "5"))
	require.NoError(t, rootCmd.Flags().Set("locale", "de"))

	cfg, path, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, cfgFile, path)
	assert.Equal(t, 5, cfg.Navigation.MaxDepth)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "SCR_????", cfg.Snapshot.Pattern)

	require.NoError(t, rootCmd.Flags().Set("max-depth", "1"))
	_, _, err = loadConfig(rootCmd)
	assert.Error(t, err, "depth below two fails validation")
}

func TestReloadedCaptions_KeepLocaleFlag(t *testing.T) {
	require.NoError(t, rootCmd.Flags().Set("locale", "de"))

	// The file has no locale, so a bare reload would fall back to English.
	reread := config.Default()
	reread.Display.DefaultTitle = "HackRF"

	c, err := reloadedCaptions(rootCmd, reread)
	require.NoError(t, err)
	assert.Equal(t, "[Foto]", c.Camera)
	assert.Equal(t, "HackRF", c.DefaultTitle)
}
