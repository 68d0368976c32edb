package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("PREP_HTTP_ADDR", ":9999")
	t.Setenv("PREP_TOKEN_VALIDITY", "2h")
	t.Setenv("PREP_MAX_IMAGE_SIZE", "2048")

	cfg := defaults()
	parseEnv(cfg)

	want := defaults()
	want.HTTPAddr = ":9999"
	want.TokenValidityDuration = 2 * time.Hour
	want.MaxImageSize = 2048
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PREP_S3_REGION=eu-north-1\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { os.Unsetenv("PREP_S3_REGION") })

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, "eu-north-1", cfg.S3Region)
}

func TestParseEnv_Malformed(t *testing.T) {
	t.Setenv("PREP_SHUTDOWN_TIMEOUT", "soon")

	cfg := defaults()
	assert.Panics(t, func() { parseEnv(cfg) })
}
