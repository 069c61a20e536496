package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "test", `
env:
  env: test
  serviceName: portal
  log:
    level: debug
http:
  port: 8080
upstreams:
  identity:
    baseUrl: http://identity.local/api
    timeout: 5s
  billing:
    baseUrl: http://billing.local/api
  vpn:
    baseUrl: http://vpn.local/api
`)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "portal", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "http://identity.local/api", cfg.Upstreams.Identity.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upstreams.Identity.Timeout)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "test", `
upstreams:
  identity:
    baseUrl: http://identity.local/api
`)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	t.Setenv("UPSTREAMS_IDENTITY_BASEURL", "http://override.local/api")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	assert.Equal(t, "http://override.local/api", cfg.Upstreams.Identity.BaseURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = LoadWithEnv[Config]("nope")
	assert.Error(t, err)
}
